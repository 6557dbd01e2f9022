package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"chatpoker/pkg/deck"
	"chatpoker/pkg/playable"
	"chatpoker/pkg/playable/poker/action"
	"chatpoker/pkg/playable/poker/texasholdem"
	"chatpoker/pkg/room"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestConsole(t *testing.T) (*console, *bytes.Buffer) {
	t.Helper()

	pitBoss := room.NewPitBoss(logrus.StandardLogger(), texasholdem.DefaultOptions())
	t.Cleanup(pitBoss.Close)

	dealer, err := pitBoss.Dealer("console")
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	buf := &bytes.Buffer{}
	return newConsole(dealer, buf), buf
}

func TestConsole_hand(t *testing.T) {
	a := assert.New(t)
	c, buf := newTestConsole(t)

	c.run(context.Background(), strings.NewReader("join alice\njoin bob\nstart\ncards\nfold\nstatus\nquit\njoin never\n"))

	out := buf.String()
	a.Contains(out, "alice sits down with $1000")
	a.Contains(out, "bob posts the small blind of $10")
	a.Contains(out, "bob to act: Fold | Call 10")
	a.Contains(out, "bob holds ")
	a.Contains(out, "alice wins $30 from the main pot")
	a.Contains(out, "Phase: waiting")
	a.NotContains(out, "never")
	a.Equal(map[int64]string{1: "alice", 2: "bob"}, c.names)
}

func TestConsole_errors(t *testing.T) {
	a := assert.New(t)
	c, buf := newTestConsole(t)

	a.True(c.handle(context.Background(), "start"))
	a.Contains(buf.String(), "error: at least two seats are needed to start a hand")

	buf.Reset()
	a.True(c.handle(context.Background(), "dance"))
	a.Contains(buf.String(), "unknown command: dance")

	buf.Reset()
	a.True(c.handle(context.Background(), "raise lots"))
	a.Contains(buf.String(), "the amount must be a number")

	buf.Reset()
	a.True(c.handle(context.Background(), "leave"))
	a.Contains(buf.String(), "usage: leave <seat>")

	buf.Reset()
	a.True(c.handle(context.Background(), "cards"))
	a.Contains(buf.String(), "nobody is on turn")

	a.True(c.handle(context.Background(), ""))
	a.False(c.handle(context.Background(), "exit"))
}

func Test_renderLogMessage(t *testing.T) {
	a := assert.New(t)
	names := map[int64]string{1: "alice"}

	plain := painter(false)

	msg := playable.SimpleLogMessage(1, "{} %s", action.Raise.LogMessage(40))
	a.Equal("alice raised to $40", plain.renderLogMessage(msg, names))

	msg = playable.SimpleLogMessage(2, "{} leaves the table")
	a.Equal("seat 2 leaves the table", plain.renderLogMessage(msg, names))

	msg = playable.CardsLogMessage(0, deck.CardsFromString("14s,13s,12s"), "the flop is dealt")
	a.Equal("the flop is dealt: A♠ K♠ Q♠", plain.renderLogMessage(msg, names))

	// styling keeps the text
	a.Contains(painter(true).renderLogMessage(msg, names), "the flop is dealt: ")
}

func Test_separator(t *testing.T) {
	assert.Equal(t, "---", painter(false).separator(3))
	assert.Equal(t, 80, len(painter(false).separator(200)))
}

func Test_renderActions(t *testing.T) {
	assert.Equal(t, "Fold | Check", renderActions([]*texasholdem.ActionOption{
		{Action: action.Fold, Label: "Fold"},
		{Action: action.Check, Label: "Check"},
	}))
}
