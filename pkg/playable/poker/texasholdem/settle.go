package texasholdem

import (
	"fmt"

	"chatpoker/pkg/deck"
	"chatpoker/pkg/playable/poker/potmanager"

	"github.com/sirupsen/logrus"
)

// reasons a pot was won
const (
	ReasonUncontested = "uncontested"
	ReasonShowdown    = "showdown"
)

// Result is the payout of a single pot
type Result struct {
	Winners         []int64         `json:"winners"`
	Amount          int             `json:"amount"`
	PotLabel        string          `json:"potLabel"`
	WinningHand     string          `json:"winningHand,omitempty"`
	AmountPerWinner int             `json:"amountPerWinner"`
	Reason          string          `json:"reason"`
	Showdown        []*ShowdownHand `json:"showdown,omitempty"`
}

// ShowdownHand is what a seat revealed when competing for a pot
type ShowdownHand struct {
	SeatID int64     `json:"seatId"`
	Name   string    `json:"name"`
	Cards  deck.Hand `json:"cards"`
	Hand   string    `json:"hand"`
}

// CanSettle returns true at the showdown, or once a single seat is left in the hand
func (t *Table) CanSettle() bool {
	if t.phase == PhaseShowdown {
		return true
	}

	return t.phase.IsActionable() && len(t.activeSeats()) <= 1
}

// SettleHand pays out the main pot and every side pot, then waits for the next hand
func (t *Table) SettleHand() ([]*Result, error) {
	if !t.CanSettle() {
		return nil, ErrCannotSettle
	}

	if len(t.activeSeats()) == 0 {
		t.Abort()
		return []*Result{}, nil
	}

	participants := make([]potmanager.Participant, 0, len(t.seatOrder)+len(t.departed))
	for _, seat := range t.orderedSeats() {
		participants = append(participants, seat)
	}

	for _, seat := range t.departed {
		participants = append(participants, seat)
	}

	pots := potmanager.BuildPots(participants)

	results := make([]*Result, 0, len(pots))
	for _, pot := range pots {
		result, err := t.settlePot(pot)
		if err != nil {
			return nil, err
		}

		results = append(results, result)
	}

	// a seat that was all-in and won something is back in action
	for _, seat := range t.orderedSeats() {
		if seat.chips > 0 {
			seat.isAllIn = false
		}
	}

	t.handLogger().WithFields(logrus.Fields{
		"pot":  t.pot,
		"pots": len(pots),
	}).Info("hand settled")

	t.sidePots = pots
	t.results = results
	t.pot = 0
	t.phase = PhaseWaiting
	t.departed = nil

	return results, nil
}

func (t *Table) settlePot(pot *potmanager.Pot) (*Result, error) {
	result := &Result{
		Amount:   pot.Amount,
		PotLabel: pot.Label(),
		Reason:   ReasonUncontested,
	}

	winners := pot.Eligible
	if len(pot.Eligible) > 1 {
		result.Reason = ReasonShowdown
		result.Showdown = make([]*ShowdownHand, 0, len(pot.Eligible))

		wm := potmanager.NewWinManager()
		for _, pt := range pot.Eligible {
			seat := t.seats[pt.ID()]
			ranking, err := seat.BestHand(t.community)
			if err != nil {
				return nil, fmt.Errorf("could not evaluate seat %d: %w", seat.id, err)
			}

			wm.AddParticipant(seat, ranking)
			result.Showdown = append(result.Showdown, &ShowdownHand{
				SeatID: seat.id,
				Name:   seat.name,
				Cards:  seat.holeCards.Clone(),
				Hand:   ranking.String(),
			})
		}

		winners = wm.Winners()
		result.WinningHand = wm.Best().String()
	}

	shares := potmanager.Split(pot.Amount, winners)
	result.Winners = make([]int64, len(winners))
	for i, pt := range winners {
		seat := t.seats[pt.ID()]
		seat.addChips(shares[seat.id])
		result.Winners[i] = seat.id

		if result.Reason == ReasonShowdown {
			t.logCards(seat.id, seat.holeCards, "{} wins ${%d} from the %s pot with %s", shares[seat.id], result.PotLabel, result.WinningHand)
		} else {
			t.log(seat.id, "{} wins ${%d} from the %s pot", shares[seat.id], result.PotLabel)
		}
	}

	if len(winners) > 0 {
		result.AmountPerWinner = pot.Amount / len(winners)
	}

	return result, nil
}

// Abort ends the hand without a winner and gives every seat back what it bet
// Chips bet by seats that already left are shared by the seats still in the hand.
func (t *Table) Abort() {
	dead := 0
	for _, seat := range t.departed {
		dead += seat.totalBet
	}

	recipients := t.activeSeats()
	if len(recipients) == 0 {
		recipients = t.orderedSeats()
	}

	for _, seat := range t.orderedSeats() {
		seat.addChips(seat.totalBet)
	}

	if dead > 0 && len(recipients) > 0 {
		participants := make([]potmanager.Participant, len(recipients))
		for i, seat := range recipients {
			participants[i] = seat
		}

		shares := potmanager.Split(dead, participants)
		for _, seat := range recipients {
			seat.addChips(shares[seat.id])
			t.log(seat.id, "{} receives ${%d} left behind by departed seats", shares[seat.id])
		}
	}

	for _, seat := range t.orderedSeats() {
		seat.ResetForNewHand()
	}

	t.handLogger().WithFields(logrus.Fields{
		"pot":  t.pot,
		"dead": dead,
	}).Warn("hand aborted")
	t.log(0, "the hand was cancelled and all bets were returned")

	t.pot = 0
	t.currentBet = 0
	t.community = make(deck.Hand, 0, 5)
	t.sidePots = nil
	t.results = nil
	t.departed = nil
	t.phase = PhaseWaiting
}
