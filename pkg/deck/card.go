package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// Suits lists every suit in deck-building order
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Glyph returns the symbol used when rendering the suit
func (s Suit) Glyph() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	}

	panic(fmt.Sprintf("unknown suit: %q", string(s)))
}

// Card is an individual playing card
// Cards are compared by value; the zero value is not a valid card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// MinRank and MaxRank bound the ranks in a standard deck
const (
	MinRank = 2
	MaxRank = Ace
)

// RankString returns the rank token, i.e., "10" or "Q"
func RankString(rank int) string {
	switch rank {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}

	return strconv.Itoa(rank)
}

// String renders the card as rank token followed by the suit glyph, i.e., "10♥"
func (c *Card) String() string {
	return RankString(c.Rank) + c.Suit.Glyph()
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs]
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	return &Card{
		Rank: rank,
		Suit: suit,
	}
}

// CardsFromString returns a slice of cards from a comma separated list, i.e., "14h,13h,12h"
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(strings.TrimSpace(card))
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to its short form (14c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	return strconv.Itoa(card.Rank) + strings.ToLower(string(card.Suit)[:1])
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
