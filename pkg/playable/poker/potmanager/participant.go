package potmanager

// Participant is anyone who contributed chips to the pot this hand
type Participant interface {
	ID() int64
	TotalBet() int
	IsFolded() bool
}
