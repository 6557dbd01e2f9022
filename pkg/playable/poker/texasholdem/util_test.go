package texasholdem

import (
	"fmt"
	"testing"

	"chatpoker/pkg/playable/poker/action"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(t *testing.T, seats int) *Table {
	t.Helper()

	table, err := NewTable(logrus.StandardLogger(), "test", DefaultOptions())
	require.NoError(t, err)

	table.deck.SetSeed(1)
	for i := 1; i <= seats; i++ {
		require.NoError(t, table.AddSeat(int64(i), fmt.Sprintf("player-%d", i)))
	}

	return table
}

// chipsInPlay is every chip in front of a seat plus the pot
func chipsInPlay(table *Table) int {
	total := table.pot
	for _, seat := range table.seats {
		total += seat.chips
	}

	return total
}

func assertActor(t *testing.T, table *Table, id int64) {
	t.Helper()

	actor, ok := table.CurrentActor()
	assert.True(t, ok, "expected a seat on turn")
	assert.Equal(t, id, actor, "seat on turn")
}

func act(t *testing.T, table *Table, id int64, a action.Action, amount int) {
	t.Helper()

	require.NoError(t, table.ApplyAction(id, a, amount))
}
