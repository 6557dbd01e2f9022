package deck

import "strings"

// Hand represents a collection of cards
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// String renders the cards space separated, i.e., "A♥ K♥"
func (h Hand) String() string {
	s := make([]string, len(h))
	for i, card := range h {
		s[i] = card.String()
	}

	return strings.Join(s, " ")
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

// SortByRank sorts cards high to low
type SortByRank Hand

func (s SortByRank) Len() int {
	return len(s)
}

func (s SortByRank) Less(i, j int) bool {
	if s[i].Rank != s[j].Rank {
		return s[i].Rank > s[j].Rank
	}

	return s[i].Suit < s[j].Suit
}

func (s SortByRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
