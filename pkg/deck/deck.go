package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"chatpoker/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Size is the number of cards in a full deck
const Size = 52

// Deck represents a playing deck
// The top of the deck is Cards[0]
type Deck struct {
	Cards []*Card `json:"-"`
	rng   rng.Generator
}

// NewWithGenerator returns a full deck shuffled by the provided generator
// A nil generator shuffles with rng.Default.
func NewWithGenerator(gen rng.Generator) *Deck {
	d := &Deck{rng: gen}
	d.Reset()

	return d
}

// SetSeed switches the deck to a deterministic generator and reshuffles
// This should only be used by tests
func (d *Deck) SetSeed(seed int64) {
	d.rng = rng.Seeded(seed)
	d.Reset()
}

// Reset rebuilds all 52 cards and shuffles them. Previously drawn cards are discarded.
func (d *Deck) Reset() {
	d.buildDeck()
	d.Shuffle()
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, Size)
	for _, suit := range Suits {
		for rank := MinRank; rank <= MaxRank; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle performs a Fisher-Yates shuffle of the remaining cards
func (d *Deck) Shuffle() {
	if d.rng == nil {
		d.rng = rng.Default
	}

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
