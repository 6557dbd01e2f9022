package texasholdem

import "encoding/json"

// Phase is where the table is in the life of a hand
type Phase int

// constants for Phase
const (
	PhaseWaiting Phase = iota
	PhasePreflop
	PhaseFlop
	PhaseTurn
	PhaseRiver
	PhaseShowdown
)

// IsActionable returns true if seats can act in this phase
func (p Phase) IsActionable() bool {
	return p >= PhasePreflop && p <= PhaseRiver
}

// communityCardsDealt is how many community cards are dealt when entering a phase
func (p Phase) communityCardsDealt() int {
	switch p {
	case PhaseFlop:
		return 3
	case PhaseTurn, PhaseRiver:
		return 1
	}

	return 0
}

func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhasePreflop:
		return "preflop"
	case PhaseFlop:
		return "flop"
	case PhaseTurn:
		return "turn"
	case PhaseRiver:
		return "river"
	case PhaseShowdown:
		return "showdown"
	}

	return ""
}

// MarshalJSON encodes JSON
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(p),
		Name: p.String(),
	})
}
