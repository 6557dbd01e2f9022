package texasholdem

import (
	"errors"

	"chatpoker/pkg/deck"
	"chatpoker/pkg/playable/poker/handanalyzer"
)

// BettingAccount is the part of a seat that moves chips
type BettingAccount interface {
	ID() int64
	Chips() int
	CurrentBet() int
	TotalBet() int
	Bet(amount int) int
	Fold()
	IsFolded() bool
	IsAllIn() bool
	HasActed() bool
}

// HandHolder is anything that holds cards and can be evaluated at showdown
type HandHolder interface {
	ID() int64
	HoleCards() deck.Hand
	BestHand(community []*deck.Card) (*handanalyzer.Ranking, error)
}

var errNoHoleCards = errors.New("no hole cards")

// Seat is a player sitting at the table
type Seat struct {
	id    int64
	name  string
	chips int

	// currentBet is what was committed this betting round
	currentBet int

	// totalBet is what was committed since the hand began
	totalBet int

	holeCards deck.Hand

	hasActed bool
	isFolded bool
	isAllIn  bool
}

// NewSeat returns a seat with a stack of chips
func NewSeat(id int64, name string, chips int) *Seat {
	return &Seat{
		id:        id,
		name:      name,
		chips:     chips,
		holeCards: make(deck.Hand, 0, 2),
	}
}

// ID returns the seat ID
func (s *Seat) ID() int64 {
	return s.id
}

// Name returns the display name
func (s *Seat) Name() string {
	return s.name
}

// Chips returns the chips left in front of the seat
func (s *Seat) Chips() int {
	return s.chips
}

// CurrentBet returns what the seat committed this betting round
func (s *Seat) CurrentBet() int {
	return s.currentBet
}

// TotalBet returns what the seat committed this hand
func (s *Seat) TotalBet() int {
	return s.totalBet
}

// HoleCards returns the seat's private cards
func (s *Seat) HoleCards() deck.Hand {
	return s.holeCards
}

// HasActed returns true if the seat acted since the bet last changed
func (s *Seat) HasActed() bool {
	return s.hasActed
}

// IsFolded returns true if the seat folded this hand
func (s *Seat) IsFolded() bool {
	return s.isFolded
}

// IsAllIn returns true if the seat has no chips left to bet this hand
func (s *Seat) IsAllIn() bool {
	return s.isAllIn
}

// Bet commits up to amount chips and returns what was actually committed
// A bet larger than the stack puts the seat all-in.
func (s *Seat) Bet(amount int) int {
	if amount < 0 {
		amount = 0
	}

	if amount > s.chips {
		amount = s.chips
	}

	s.chips -= amount
	s.currentBet += amount
	s.totalBet += amount
	s.hasActed = true
	if s.chips == 0 {
		s.isAllIn = true
	}

	return amount
}

// Fold takes the seat out of the hand
func (s *Seat) Fold() {
	s.isFolded = true
	s.hasActed = true
}

// ResetForNewStreet clears what is tracked per betting round
func (s *Seat) ResetForNewStreet() {
	s.currentBet = 0
	s.hasActed = false
}

// ResetForNewHand clears everything but the chips
func (s *Seat) ResetForNewHand() {
	s.ResetForNewStreet()
	s.holeCards = make(deck.Hand, 0, 2)
	s.totalBet = 0
	s.isFolded = false
	s.isAllIn = false
}

// BestHand returns the best hand the seat can make with the community cards
func (s *Seat) BestHand(community []*deck.Card) (*handanalyzer.Ranking, error) {
	return bestHand(s.holeCards, community)
}

func (s *Seat) dealCard(card *deck.Card) {
	s.holeCards.AddCard(card)
}

func (s *Seat) addChips(amount int) {
	s.chips += amount
}

// sitOut keeps a seat that joined mid-hand out of the hand in progress
func (s *Seat) sitOut() {
	s.isFolded = true
	s.hasActed = true
}

// View returns a read-only copy of the seat
// Hole cards are only included if reveal is true.
func (s *Seat) View(reveal bool) *SeatView {
	v := &SeatView{
		SeatID:     s.id,
		Name:       s.name,
		Chips:      s.chips,
		CurrentBet: s.currentBet,
		TotalBet:   s.totalBet,
		HasActed:   s.hasActed,
		Folded:     s.isFolded,
		AllIn:      s.isAllIn,
	}

	if reveal {
		v.Cards = s.holeCards.Clone()
	}

	return v
}

// SeatView is a snapshot of a seat for spectators and status output
type SeatView struct {
	SeatID     int64     `json:"id"`
	Name       string    `json:"name"`
	Chips      int       `json:"chips"`
	CurrentBet int       `json:"currentBet"`
	TotalBet   int       `json:"totalBetThisHand"`
	HasActed   bool      `json:"hasActed"`
	Folded     bool      `json:"folded"`
	AllIn      bool      `json:"allIn"`
	Cards      deck.Hand `json:"cards,omitempty"`
}

// ID returns the seat ID
func (v *SeatView) ID() int64 {
	return v.SeatID
}

// HoleCards returns the revealed hole cards, if any
func (v *SeatView) HoleCards() deck.Hand {
	return v.Cards
}

// BestHand returns the best hand the revealed cards make with the community cards
func (v *SeatView) BestHand(community []*deck.Card) (*handanalyzer.Ranking, error) {
	return bestHand(v.Cards, community)
}

func bestHand(hole deck.Hand, community []*deck.Card) (*handanalyzer.Ranking, error) {
	if len(hole) == 0 {
		return nil, errNoHoleCards
	}

	cards := make([]*deck.Card, 0, len(hole)+len(community))
	cards = append(cards, hole...)
	cards = append(cards, community...)

	return handanalyzer.Evaluate(cards)
}
