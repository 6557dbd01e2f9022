package texasholdem

import (
	"fmt"

	"chatpoker/pkg/deck"
	"chatpoker/pkg/playable/poker/action"
	"chatpoker/pkg/playable/poker/potmanager"
)

// Status is a short summary of the table
type Status struct {
	Phase        Phase  `json:"phase"`
	Pot          int    `json:"pot"`
	CurrentBet   int    `json:"currentBet"`
	Community    string `json:"community"`
	ActiveSeats  int    `json:"activeSeats"`
	CurrentActor string `json:"currentActor,omitempty"`
	HandNumber   int    `json:"handNumber"`
}

// Status returns a short summary of the table
func (t *Table) Status() *Status {
	s := &Status{
		Phase:       t.phase,
		Pot:         t.pot,
		CurrentBet:  t.currentBet,
		Community:   t.community.String(),
		ActiveSeats: len(t.activeSeats()),
		HandNumber:  t.handNumber,
	}

	if id, ok := t.CurrentActor(); ok {
		s.CurrentActor = t.seats[id].name
	}

	return s
}

// String renders the status for a chat message
func (s *Status) String() string {
	community := s.Community
	if community == "" {
		community = "-"
	}

	str := fmt.Sprintf("Phase: %s\nPot: %d\nCurrent bet: %d\nBoard: %s\nActive seats: %d",
		s.Phase, s.Pot, s.CurrentBet, community, s.ActiveSeats)
	if s.CurrentActor != "" {
		str += "\nTo act: " + s.CurrentActor
	}

	return str
}

// ActionOption is an action the seat on turn can choose, with the amount to send along
type ActionOption struct {
	Action action.Action `json:"action"`
	Amount int           `json:"amount"`
	Label  string        `json:"label"`
}

// ActionsForSeat returns the choices for the seat on turn
// Any other seat gets nil.
func (t *Table) ActionsForSeat(id int64) []*ActionOption {
	if actor, ok := t.CurrentActor(); !ok || actor != id || t.IsRoundComplete() {
		return nil
	}

	seat := t.seats[id]
	if seat.isFolded {
		return nil
	}

	options := []*ActionOption{{Action: action.Fold, Label: "Fold"}}

	owed := t.currentBet - seat.currentBet
	if owed <= 0 {
		options = append(options, &ActionOption{Action: action.Check, Label: "Check"})
	} else {
		call := owed
		if call > seat.chips {
			call = seat.chips
		}

		options = append(options, &ActionOption{
			Action: action.Call,
			Amount: call,
			Label:  fmt.Sprintf("Call %d", call),
		})
	}

	if seat.chips <= owed {
		return options
	}

	allIn := seat.chips + seat.currentBet

	minRaise := t.currentBet * 2
	if r := t.currentBet + t.options.BigBlind; r > minRaise {
		minRaise = r
	}

	if minRaise < allIn {
		options = append(options, &ActionOption{
			Action: action.Raise,
			Amount: minRaise,
			Label:  fmt.Sprintf("Raise to %d", minRaise),
		})
	}

	potRaise := t.pot + t.currentBet
	if potRaise > minRaise && potRaise < allIn {
		options = append(options, &ActionOption{
			Action: action.Raise,
			Amount: potRaise,
			Label:  fmt.Sprintf("Pot (%d)", potRaise),
		})
	}

	if allIn > t.currentBet {
		options = append(options, &ActionOption{
			Action: action.Raise,
			Amount: allIn,
			Label:  fmt.Sprintf("All-in (%d)", allIn),
		})
	}

	return options
}

// State is everything anyone at the table can see
type State struct {
	ID           string          `json:"id"`
	Phase        Phase           `json:"phase"`
	HandNumber   int             `json:"handNumber"`
	Pot          int             `json:"pot"`
	CurrentBet   int             `json:"currentBet"`
	Community    deck.Hand       `json:"community"`
	Seats        []*SeatView     `json:"seats"`
	Dealer       int64           `json:"dealer"`
	CurrentActor int64           `json:"currentActor"`
	SidePots     potmanager.Pots `json:"sidePots"`
	Results      []*Result       `json:"results"`
}

// SeatState is the table state as seen by one seat
type SeatState struct {
	Seat    *SeatView       `json:"seat"`
	Actions []*ActionOption `json:"actions"`
	Table   *State          `json:"table"`
}

// State returns the public state of the table
func (t *Table) State() *State {
	var dealer int64
	if len(t.seatOrder) > 0 {
		dealer = t.seatOrder[t.dealerIndex]
	}

	actor, _ := t.CurrentActor()

	return &State{
		ID:           t.id,
		Phase:        t.phase,
		HandNumber:   t.handNumber,
		Pot:          t.pot,
		CurrentBet:   t.currentBet,
		Community:    t.community.Clone(),
		Seats:        t.Seats(),
		Dealer:       dealer,
		CurrentActor: actor,
		SidePots:     t.sidePots,
		Results:      t.results,
	}
}

// SeatState returns the state of the table as seen by a seat
func (t *Table) SeatState(id int64) (*SeatState, error) {
	view, err := t.Seat(id)
	if err != nil {
		return nil, err
	}

	return &SeatState{
		Seat:    view,
		Actions: t.ActionsForSeat(id),
		Table:   t.State(),
	}, nil
}
