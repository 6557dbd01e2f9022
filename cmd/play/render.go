package main

import (
	"fmt"
	"regexp"
	"strings"

	"chatpoker/pkg/deck"
	"chatpoker/pkg/playable"
	"chatpoker/pkg/playable/poker/texasholdem"

	"github.com/charmbracelet/lipgloss"
)

var amountPattern = regexp.MustCompile(`\$\{(\d+)\}`)

var (
	redCardStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	blackCardStyle = lipgloss.NewStyle().Bold(true)
	actorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	ruleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// painter styles text for a terminal, or leaves it alone when output is not interactive
type painter bool

func (p painter) paint(style lipgloss.Style, s string) string {
	if !p {
		return s
	}

	return style.Render(s)
}

func (p painter) card(card *deck.Card) string {
	if card.Suit == deck.Hearts || card.Suit == deck.Diamonds {
		return p.paint(redCardStyle, card.String())
	}

	return p.paint(blackCardStyle, card.String())
}

func (p painter) cards(cards []*deck.Card) string {
	s := make([]string, len(cards))
	for i, card := range cards {
		s[i] = p.card(card)
	}

	return strings.Join(s, " ")
}

// renderLogMessage turns a table log message into a line of text
// "{}" is replaced with the seat's name and "${N}" with "$N".
func (p painter) renderLogMessage(msg *playable.LogMessage, names map[int64]string) string {
	text := msg.Message
	if len(msg.SeatIDs) > 0 {
		who := make([]string, len(msg.SeatIDs))
		for i, id := range msg.SeatIDs {
			who[i] = seatName(id, names)
		}

		text = strings.ReplaceAll(text, "{}", strings.Join(who, ", "))
	}

	text = amountPattern.ReplaceAllString(text, "$$$1")

	if len(msg.Cards) > 0 {
		text += ": " + p.cards(msg.Cards)
	}

	return text
}

func seatName(id int64, names map[int64]string) string {
	if name, ok := names[id]; ok {
		return name
	}

	return fmt.Sprintf("seat %d", id)
}

func renderActions(actions []*texasholdem.ActionOption) string {
	labels := make([]string, len(actions))
	for i, opt := range actions {
		labels[i] = opt.Label
	}

	return strings.Join(labels, " | ")
}

func (p painter) separator(width int) string {
	if width > 80 {
		width = 80
	}

	return p.paint(ruleStyle, strings.Repeat("-", width))
}
