package action

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	a := assert.New(t)

	for _, s := range []string{"fold", "check", "call", "raise"} {
		act, err := FromString(s)
		a.NoError(err)
		a.Equal(Action(s), act)
		a.True(act.IsValid())
	}

	act, err := FromString(" Raise ")
	a.NoError(err)
	a.Equal(Raise, act)

	act, err = FromString("bet")
	a.EqualError(err, "unknown action for identifier: bet")
	a.Equal(Action(""), act)
	a.False(Action("bet").IsValid())
}

func TestAction_JSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal(Call)
	a.NoError(err)
	a.JSONEq(`{"id":"call","name":"Call"}`, string(b))

	var act Action
	a.NoError(json.Unmarshal([]byte(`"fold"`), &act))
	a.Equal(Fold, act)

	a.Error(json.Unmarshal([]byte(`"discard"`), &act))
}

func TestAction_LogMessage(t *testing.T) {
	a := assert.New(t)
	a.Equal("folded", Fold.LogMessage(0))
	a.Equal("checked", Check.LogMessage(0))
	a.Equal("called ${25}", Call.LogMessage(25))
	a.Equal("raised to ${50}", Raise.LogMessage(50))
	a.Panics(func() {
		_ = Action("bet").String()
	})
}
