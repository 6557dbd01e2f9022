package texasholdem

import (
	"fmt"

	"chatpoker/pkg/deck"
	"chatpoker/pkg/playable/poker/action"

	"github.com/sirupsen/logrus"
)

// ApplyAction performs an action for the seat on turn
// Nothing changes if the action is rejected.
func (t *Table) ApplyAction(id int64, act action.Action, amount int) error {
	if !t.phase.IsActionable() {
		return ErrNotActionable
	}

	seat, ok := t.seats[id]
	if !ok {
		return ErrSeatNotFound
	}

	if seat.isFolded {
		return ErrSeatFolded
	}

	if t.IsRoundComplete() {
		return ErrRoundComplete
	}

	if actor, _ := t.CurrentActor(); actor != id {
		return ErrNotYourTurn
	}

	var logAmount int
	switch act {
	case action.Fold:
		seat.Fold()
	case action.Check:
		if seat.currentBet != t.currentBet {
			return ErrCannotCheck
		}

		seat.hasActed = true
	case action.Call:
		logAmount = seat.Bet(t.currentBet - seat.currentBet)
		t.pot += logAmount
	case action.Raise:
		if seat.isAllIn {
			return ErrSeatAllIn
		}

		newBet := amount
		if double := t.currentBet * 2; double > newBet {
			newBet = double
		}

		if newBet <= t.currentBet {
			return ErrRaiseTooSmall
		}

		t.pot += seat.Bet(newBet - seat.currentBet)
		t.currentBet = newBet
		logAmount = seat.currentBet
	default:
		return ActionError(fmt.Sprintf("you cannot %s", string(act)))
	}

	t.handLogger().WithFields(logrus.Fields{
		"seat":   id,
		"action": string(act),
		"amount": logAmount,
		"pot":    t.pot,
	}).Debug("action applied")

	t.log(id, "{} %s", act.LogMessage(logAmount))
	if seat.isAllIn && act != action.Fold {
		t.log(id, "{} is all-in")
	}

	return nil
}

// IsRoundComplete returns true if at most one seat is left in the hand, or if every
// seat still in the hand has acted and either matched the current bet or is all-in
func (t *Table) IsRoundComplete() bool {
	active := t.activeSeats()
	if len(active) <= 1 {
		return true
	}

	for _, seat := range active {
		if !seat.hasActed {
			return false
		}

		if seat.currentBet != t.currentBet && !seat.isAllIn {
			return false
		}
	}

	return true
}

// AdvanceTurn passes the turn to the next seat that has not folded
func (t *Table) AdvanceTurn() error {
	if !t.phase.IsActionable() {
		return ErrNotActionable
	}

	next, err := t.nextActiveIndex(t.actorIndex)
	if err != nil {
		return err
	}

	t.actorIndex = next
	return nil
}

// nextActiveIndex returns the first seat after from that has not folded
// from itself is considered last.
func (t *Table) nextActiveIndex(from int) (int, error) {
	n := len(t.seatOrder)
	for i := 1; i <= n; i++ {
		index := (from + i) % n
		if !t.seats[t.seatOrder[index]].isFolded {
			return index, nil
		}
	}

	return 0, ErrNoActiveSeats
}

// AdvanceStreet deals the next street once the betting round is over
// From the river, the table moves to the showdown.
func (t *Table) AdvanceStreet() error {
	if !t.phase.IsActionable() {
		return ErrNotActionable
	}

	if !t.IsRoundComplete() {
		return ErrRoundIncomplete
	}

	if len(t.activeSeats()) <= 1 {
		return ErrOneSeatLeft
	}

	next := t.phase + 1
	dealt := make(deck.Hand, 0, 3)
	for i := 0; i < next.communityCardsDealt(); i++ {
		card, err := t.deck.Draw()
		if err != nil {
			return fmt.Errorf("could not deal the %s: %w", next, err)
		}

		dealt = append(dealt, card)
	}

	t.community = append(t.community, dealt...)
	t.phase = next
	t.currentBet = 0
	t.bettingRound++
	for _, seat := range t.orderedSeats() {
		seat.ResetForNewStreet()
	}

	if index, err := t.nextActiveIndex(t.dealerIndex); err == nil {
		t.actorIndex = index
	}

	t.handLogger().WithField("community", t.community.String()).Debug("street dealt")

	if len(dealt) > 0 {
		t.logCards(0, dealt, "the %s is dealt", next)
	} else {
		t.log(0, "showdown")
	}

	return nil
}
