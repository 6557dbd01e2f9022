package texasholdem

import (
	"fmt"

	"chatpoker/pkg/deck"
	"chatpoker/pkg/playable"
	"chatpoker/pkg/playable/poker/potmanager"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var _ BettingAccount = &Seat{}
var _ HandHolder = &Seat{}
var _ HandHolder = &SeatView{}
var _ potmanager.Participant = &Seat{}

// Table is a single game of no-limit Texas Hold'em played hand after hand
//
// A Table is not safe for concurrent use. Callers must make sure only one
// operation runs against a table at a time.
type Table struct {
	id      string
	logger  logrus.FieldLogger
	options Options
	deck    *deck.Deck

	seats     map[int64]*Seat
	seatOrder []int64

	// departed are seats that left in the middle of a hand
	// what they bet stays in the pot
	departed []*Seat

	phase        Phase
	pot          int
	currentBet   int
	community    deck.Hand
	dealerIndex  int
	actorIndex   int
	bettingRound int
	sidePots     potmanager.Pots

	handID     string
	handNumber int
	results    []*Result
	logs       []*playable.LogMessage
}

// NewTable returns an empty table
func NewTable(logger logrus.FieldLogger, id string, opts Options) (*Table, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	return &Table{
		id:        id,
		logger:    logger.WithField("table", id),
		options:   opts,
		deck:      deck.NewWithGenerator(opts.Shuffler),
		seats:     make(map[int64]*Seat),
		seatOrder: make([]int64, 0, opts.MaxSeats),
		phase:     PhaseWaiting,
		community: make(deck.Hand, 0, 5),
		logs:      make([]*playable.LogMessage, 0),
	}, nil
}

// ID returns the table ID
func (t *Table) ID() string {
	return t.id
}

// Options returns the options the table was created with
func (t *Table) Options() Options {
	return t.options
}

// Phase returns the current phase
func (t *Table) Phase() Phase {
	return t.phase
}

// Pot returns the chips bet this hand that have not been paid out
func (t *Table) Pot() int {
	return t.pot
}

// CurrentBet returns the bet every seat must match this betting round
func (t *Table) CurrentBet() int {
	return t.currentBet
}

// Community returns the community cards
func (t *Table) Community() deck.Hand {
	return t.community
}

// BettingRound returns how many streets were dealt after the preflop betting round
func (t *Table) BettingRound() int {
	return t.bettingRound
}

// SidePots returns the pots built when the last hand was settled
func (t *Table) SidePots() potmanager.Pots {
	return t.sidePots
}

// Results returns the payouts of the last settled hand
func (t *Table) Results() []*Result {
	return t.results
}

// SeatCount returns how many seats are at the table
func (t *Table) SeatCount() int {
	return len(t.seatOrder)
}

// AddSeat sits a new player at the table
// A seat that joins during a hand sits out until the next one.
func (t *Table) AddSeat(id int64, name string) error {
	if _, ok := t.seats[id]; ok {
		return ErrSeatTaken
	}

	if len(t.seatOrder) >= t.options.MaxSeats {
		return ErrTableFull
	}

	seat := NewSeat(id, name, t.options.StartingChips)
	if t.phase != PhaseWaiting {
		seat.sitOut()
		t.log(id, "{} sits down and will play the next hand")
	} else {
		t.log(id, "{} sits down with ${%d}", seat.chips)
	}

	t.seats[id] = seat
	t.seatOrder = append(t.seatOrder, id)

	t.logger.WithFields(logrus.Fields{
		"seat":  id,
		"seats": len(t.seatOrder),
	}).Info("seat added")

	return nil
}

// RemoveSeat takes a seat away from the table
// If a hand is in progress, whatever the seat bet stays in the pot.
func (t *Table) RemoveSeat(id int64) error {
	seat, ok := t.seats[id]
	if !ok {
		return ErrSeatNotFound
	}

	index := t.seatIndex(id)
	inHand := t.phase != PhaseWaiting

	delete(t.seats, id)
	t.seatOrder = append(t.seatOrder[:index], t.seatOrder[index+1:]...)

	if inHand {
		seat.Fold()
		t.departed = append(t.departed, seat)
	}

	n := len(t.seatOrder)
	if index < t.dealerIndex {
		t.dealerIndex--
	}

	if n == 0 || t.dealerIndex >= n {
		t.dealerIndex = 0
	}

	switch {
	case n == 0:
		t.actorIndex = 0
	case index < t.actorIndex:
		t.actorIndex--
	case index == t.actorIndex:
		// the turn moves on to the next seat still in the hand
		t.actorIndex = (index - 1 + n) % n
		if t.phase.IsActionable() {
			if err := t.AdvanceTurn(); err != nil {
				t.handLogger().WithError(err).WithField("seat", id).Warn("could not pass the turn on")
			}
		} else {
			t.actorIndex = index % n
		}
	}

	t.log(id, "{} leaves the table")
	t.logger.WithFields(logrus.Fields{
		"seat":   id,
		"inHand": inHand,
		"seats":  n,
	}).Info("seat removed")

	return nil
}

// StartHand shuffles, deals two cards to every seat and posts the blinds
func (t *Table) StartHand() error {
	if t.phase != PhaseWaiting {
		return ErrHandInProgress
	}

	if len(t.seatOrder) < 2 {
		return ErrNotEnoughSeats
	}

	t.deck.Reset()
	t.community = make(deck.Hand, 0, 5)
	t.pot = 0
	t.currentBet = 0
	t.bettingRound = 0
	t.sidePots = nil
	t.results = nil
	t.departed = nil

	for _, seat := range t.orderedSeats() {
		seat.ResetForNewHand()
	}

	for i := 0; i < 2; i++ {
		for _, seat := range t.orderedSeats() {
			card, err := t.deck.Draw()
			if err != nil {
				for _, s := range t.orderedSeats() {
					s.ResetForNewHand()
				}

				return fmt.Errorf("could not deal hole cards: %w", err)
			}

			seat.dealCard(card)
		}
	}

	t.handID = uuid.New().String()
	t.handNumber++
	t.phase = PhasePreflop

	n := len(t.seatOrder)
	small := t.seatAt(t.dealerIndex + 1)
	big := t.seatAt(t.dealerIndex + 2)

	t.pot += small.Bet(t.options.SmallBlind)
	t.pot += big.Bet(t.options.BigBlind)
	t.currentBet = t.options.BigBlind
	t.actorIndex = (t.dealerIndex + 3) % n

	t.handLogger().WithFields(logrus.Fields{
		"seats":      n,
		"smallBlind": small.id,
		"bigBlind":   big.id,
	}).Info("hand started")

	t.log(0, "hand #%d begins", t.handNumber)
	t.log(small.id, "{} posts the small blind of ${%d}", small.currentBet)
	t.log(big.id, "{} posts the big blind of ${%d}", big.currentBet)

	return nil
}

// CurrentActor returns the seat whose turn it is
// The second value is false if no betting round is in progress.
func (t *Table) CurrentActor() (int64, bool) {
	if !t.phase.IsActionable() || len(t.seatOrder) == 0 {
		return 0, false
	}

	return t.seatOrder[t.actorIndex], true
}

// Seat returns a read-only view of a seat, including its hole cards
func (t *Table) Seat(id int64) (*SeatView, error) {
	seat, ok := t.seats[id]
	if !ok {
		return nil, ErrSeatNotFound
	}

	return seat.View(true), nil
}

// Seats returns a read-only view of every seat in seat order
// Hole cards are hidden.
func (t *Table) Seats() []*SeatView {
	views := make([]*SeatView, len(t.seatOrder))
	for i, seat := range t.orderedSeats() {
		views[i] = seat.View(false)
	}

	return views
}

// BustedSeats returns the seats that have no chips left
// Only meaningful between hands.
func (t *Table) BustedSeats() []int64 {
	busted := make([]int64, 0)
	for _, seat := range t.orderedSeats() {
		if seat.chips == 0 {
			busted = append(busted, seat.id)
		}
	}

	return busted
}

func (t *Table) handLogger() logrus.FieldLogger {
	return t.logger.WithFields(logrus.Fields{
		"hand":  t.handID,
		"phase": t.phase.String(),
	})
}

func (t *Table) orderedSeats() []*Seat {
	seats := make([]*Seat, len(t.seatOrder))
	for i, id := range t.seatOrder {
		seats[i] = t.seats[id]
	}

	return seats
}

func (t *Table) seatAt(index int) *Seat {
	return t.seats[t.seatOrder[index%len(t.seatOrder)]]
}

func (t *Table) seatIndex(id int64) int {
	for i, seatID := range t.seatOrder {
		if seatID == id {
			return i
		}
	}

	return -1
}

// activeSeats returns the seats that have not folded, in seat order
func (t *Table) activeSeats() []*Seat {
	active := make([]*Seat, 0, len(t.seatOrder))
	for _, seat := range t.orderedSeats() {
		if !seat.isFolded {
			active = append(active, seat)
		}
	}

	return active
}
