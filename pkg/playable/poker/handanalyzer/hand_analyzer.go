package handanalyzer

import (
	"errors"
	"fmt"
	"math/bits"
	"sort"

	"chatpoker/pkg/deck"
)

// handSize is the number of cards that make up a poker hand
const handSize = 5

// maxCards is two hole cards plus five community cards
const maxCards = 7

// ErrNotEnoughCards is returned when fewer than five cards are evaluated
var ErrNotEnoughCards = errors.New("at least five cards are required")

// ErrTooManyCards is returned when more than seven cards are evaluated
var ErrTooManyCards = errors.New("no more than seven cards can be evaluated")

// Ranking is the best five-card hand that could be made from a set of cards
//
// High, Low, and Kickers hold the tie-break ranks for the category:
//   - straight, straight flush, royal flush: High is the top card of the run (5 for a wheel)
//   - four of a kind: High is the quad rank, Kickers holds the fifth card
//   - full house: High is the trip rank, Low is the pair rank
//   - flush, high card: High is the top card, Kickers holds all five ranks descending
//   - three of a kind: High is the trip rank, Kickers holds the other two ranks descending
//   - two pair: High and Low are the pairs, Kickers holds the fifth card
//   - pair: High is the pair rank, Kickers holds the other three ranks descending
type Ranking struct {
	Hand    Hand      `json:"hand"`
	Cards   deck.Hand `json:"cards"`
	High    int       `json:"high"`
	Low     int       `json:"low,omitempty"`
	Kickers []int     `json:"kickers,omitempty"`
}

// String renders the category followed by the chosen cards, i.e., "Pair (K♠ K♥ 9♦ 4♣ 2♥)"
func (r *Ranking) String() string {
	return fmt.Sprintf("%s (%s)", r.Hand, r.Cards)
}

// Evaluate returns the best five-card ranking reachable from cards
// Between five and seven cards may be provided.
func Evaluate(cards []*deck.Card) (*Ranking, error) {
	n := len(cards)
	if n < handSize {
		return nil, ErrNotEnoughCards
	}

	if n > maxCards {
		return nil, ErrTooManyCards
	}

	var best *Ranking
	subset := make(deck.Hand, 0, handSize)
	for mask := uint(0); mask < 1<<uint(n); mask++ {
		if bits.OnesCount(mask) != handSize {
			continue
		}

		subset = subset[:0]
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				subset = append(subset, cards[i])
			}
		}

		r := rankFive(subset)
		if best == nil || Compare(r, best) > 0 {
			best = r
		}
	}

	return best, nil
}

// MustEvaluate is like Evaluate, but panics on error
// This should only be used by tests
func MustEvaluate(cards []*deck.Card) *Ranking {
	r, err := Evaluate(cards)
	if err != nil {
		panic(err)
	}

	return r
}

// Compare returns a negative number if a is weaker than b, zero if they tie,
// and a positive number if a beats b
func Compare(a, b *Ranking) int {
	if a.Hand != b.Hand {
		return int(a.Hand) - int(b.Hand)
	}

	switch a.Hand {
	case Straight, StraightFlush, RoyalFlush:
		return a.High - b.High
	case FourOfAKind:
		if c := a.High - b.High; c != 0 {
			return c
		}

		return compareRanks(a.Kickers, b.Kickers)
	case FullHouse:
		if c := a.High - b.High; c != 0 {
			return c
		}

		return a.Low - b.Low
	case Flush, HighCard:
		return compareRanks(a.Kickers, b.Kickers)
	case ThreeOfAKind, OnePair:
		if c := a.High - b.High; c != 0 {
			return c
		}

		return compareRanks(a.Kickers, b.Kickers)
	case TwoPair:
		if c := a.High - b.High; c != 0 {
			return c
		}

		if c := a.Low - b.Low; c != 0 {
			return c
		}

		return compareRanks(a.Kickers, b.Kickers)
	}

	panic(fmt.Sprintf("unknown hand: %d", a.Hand))
}

// compareRanks compares two descending rank lists element by element
func compareRanks(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] - b[i]
		}
	}

	return len(a) - len(b)
}

// rankGroup is every card of one rank within a five-card hand
type rankGroup struct {
	rank  int
	cards deck.Hand
}

// groupByRank returns the rank groups ordered by size, then by rank, largest first
func groupByRank(cards deck.Hand) []rankGroup {
	groups := make([]rankGroup, 0, handSize)
	index := make(map[int]int, handSize)
	for _, card := range cards {
		i, ok := index[card.Rank]
		if !ok {
			i = len(groups)
			index[card.Rank] = i
			groups = append(groups, rankGroup{rank: card.Rank})
		}

		groups[i].cards = append(groups[i].cards, card)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if len(groups[i].cards) != len(groups[j].cards) {
			return len(groups[i].cards) > len(groups[j].cards)
		}

		return groups[i].rank > groups[j].rank
	})

	return groups
}

// rankFive classifies exactly five cards
func rankFive(five deck.Hand) *Ranking {
	sorted := five.Clone()
	sort.Sort(deck.SortByRank(sorted))

	groups := groupByRank(sorted)

	ordered := make(deck.Hand, 0, handSize)
	ranks := make([]int, 0, len(groups))
	for _, g := range groups {
		ordered = append(ordered, g.cards...)
		ranks = append(ranks, g.rank)
	}

	flush := isFlush(sorted)
	straightHigh := 0
	if len(groups) == handSize {
		straightHigh = straightHighCard(sorted)
		if straightHigh == 5 && sorted[0].Rank == deck.Ace {
			// the ace plays low in a wheel
			ordered = append(sorted[1:].Clone(), sorted[0])
		}
	}

	r := &Ranking{Cards: ordered}
	switch {
	case flush && straightHigh == deck.Ace:
		r.Hand = RoyalFlush
		r.High = straightHigh
	case flush && straightHigh > 0:
		r.Hand = StraightFlush
		r.High = straightHigh
	case len(groups[0].cards) == 4:
		r.Hand = FourOfAKind
		r.High = ranks[0]
		r.Kickers = ranks[1:]
	case len(groups[0].cards) == 3 && len(groups[1].cards) == 2:
		r.Hand = FullHouse
		r.High = ranks[0]
		r.Low = ranks[1]
	case flush:
		r.Hand = Flush
		r.High = ranks[0]
		r.Kickers = ranks
	case straightHigh > 0:
		r.Hand = Straight
		r.High = straightHigh
	case len(groups[0].cards) == 3:
		r.Hand = ThreeOfAKind
		r.High = ranks[0]
		r.Kickers = ranks[1:]
	case len(groups[0].cards) == 2 && len(groups[1].cards) == 2:
		r.Hand = TwoPair
		r.High = ranks[0]
		r.Low = ranks[1]
		r.Kickers = ranks[2:]
	case len(groups[0].cards) == 2:
		r.Hand = OnePair
		r.High = ranks[0]
		r.Kickers = ranks[1:]
	default:
		r.Hand = HighCard
		r.High = ranks[0]
		r.Kickers = ranks
	}

	return r
}

func isFlush(cards deck.Hand) bool {
	for _, card := range cards[1:] {
		if card.Suit != cards[0].Suit {
			return false
		}
	}

	return true
}

// straightHighCard returns the high card of the run, or 0 if the cards are not a straight
// cards must be five distinct ranks sorted high to low
func straightHighCard(cards deck.Hand) int {
	if cards[0].Rank-cards[4].Rank == handSize-1 {
		return cards[0].Rank
	}

	if cards[0].Rank == deck.Ace && cards[1].Rank == 5 && cards[4].Rank == 2 {
		return 5
	}

	return 0
}
