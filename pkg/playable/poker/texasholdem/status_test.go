package texasholdem

import (
	"encoding/json"
	"testing"

	"chatpoker/pkg/playable/poker/action"
	"chatpoker/pkg/snapshot"

	"github.com/stretchr/testify/assert"
)

func TestTable_ActionsForSeat(t *testing.T) {
	a := assert.New(t)
	table := newTestTable(t, 3)

	a.Nil(table.ActionsForSeat(1))
	a.NoError(table.StartHand())

	a.Nil(table.ActionsForSeat(2))
	a.Nil(table.ActionsForSeat(99))

	a.Equal([]*ActionOption{
		{Action: action.Fold, Label: "Fold"},
		{Action: action.Call, Amount: 20, Label: "Call 20"},
		{Action: action.Raise, Amount: 40, Label: "Raise to 40"},
		{Action: action.Raise, Amount: 50, Label: "Pot (50)"},
		{Action: action.Raise, Amount: 1000, Label: "All-in (1000)"},
	}, table.ActionsForSeat(1))
	snapshot.Validate(t, "preflop-actions", table.ActionsForSeat(1))

	act(t, table, 1, action.Call, 0)
	a.NoError(table.AdvanceTurn())
	act(t, table, 2, action.Call, 0)
	a.NoError(table.AdvanceStreet())

	// nothing to call, so the seat can check and the minimum raise is the big blind
	a.Equal([]*ActionOption{
		{Action: action.Fold, Label: "Fold"},
		{Action: action.Check, Label: "Check"},
		{Action: action.Raise, Amount: 20, Label: "Raise to 20"},
		{Action: action.Raise, Amount: 60, Label: "Pot (60)"},
		{Action: action.Raise, Amount: 980, Label: "All-in (980)"},
	}, table.ActionsForSeat(2))
}

func TestTable_ActionsForSeat_shortStack(t *testing.T) {
	a := assert.New(t)
	table := newTestTable(t, 3)
	a.NoError(table.StartHand())

	table.seats[1].chips = 15
	a.Equal([]*ActionOption{
		{Action: action.Fold, Label: "Fold"},
		{Action: action.Call, Amount: 15, Label: "Call 15"},
	}, table.ActionsForSeat(1))

	table.seats[1].chips = 30
	a.Equal([]*ActionOption{
		{Action: action.Fold, Label: "Fold"},
		{Action: action.Call, Amount: 20, Label: "Call 20"},
		{Action: action.Raise, Amount: 30, Label: "All-in (30)"},
	}, table.ActionsForSeat(1))
}

func TestTable_Status(t *testing.T) {
	a := assert.New(t)
	table := newTestTable(t, 3)

	s := table.Status()
	a.Equal(PhaseWaiting, s.Phase)
	a.Equal(3, s.ActiveSeats)
	a.Equal("", s.CurrentActor)
	a.Equal("Phase: waiting\nPot: 0\nCurrent bet: 0\nBoard: -\nActive seats: 3", s.String())

	a.NoError(table.StartHand())
	s = table.Status()
	a.Equal(PhasePreflop, s.Phase)
	a.Equal(30, s.Pot)
	a.Equal(20, s.CurrentBet)
	a.Equal("player-1", s.CurrentActor)
	a.Equal(1, s.HandNumber)
	a.Equal("Phase: preflop\nPot: 30\nCurrent bet: 20\nBoard: -\nActive seats: 3\nTo act: player-1", s.String())

	act(t, table, 1, action.Call, 0)
	a.NoError(table.AdvanceTurn())
	act(t, table, 2, action.Call, 0)
	a.NoError(table.AdvanceStreet())
	a.Equal(table.Community().String(), table.Status().Community)
	a.NotEmpty(table.Status().Community)
}

func TestTable_State(t *testing.T) {
	a := assert.New(t)
	table := newTestTable(t, 2)
	a.NoError(table.StartHand())

	state := table.State()
	a.Equal("test", state.ID)
	a.Equal(int64(1), state.Dealer)
	a.Equal(int64(2), state.CurrentActor)
	a.Equal(2, len(state.Seats))
	for _, seat := range state.Seats {
		a.Nil(seat.Cards, "hole cards are hidden")
	}

	b, err := json.Marshal(state)
	a.NoError(err)
	a.Contains(string(b), `"phase":{"id":1,"name":"preflop"}`)

	ss, err := table.SeatState(2)
	a.NoError(err)
	a.Equal(2, len(ss.Seat.Cards))
	a.NotEmpty(ss.Actions)

	ss, err = table.SeatState(1)
	a.NoError(err)
	a.Nil(ss.Actions)

	_, err = table.SeatState(3)
	a.Equal(ErrSeatNotFound, err)
}

func TestTable_Summary(t *testing.T) {
	a := assert.New(t)
	table := newTestTable(t, 2)
	a.NoError(table.StartHand())
	act(t, table, 2, action.Fold, 0)

	_, err := table.SettleHand()
	a.NoError(err)

	summary := table.Summary()
	a.Equal(2, len(summary.Seats))
	a.Equal(2, len(summary.Seats[0].Cards))
	a.Equal(1, len(summary.Results))
}
