package texasholdem

import "errors"

// ActionError is an error caused by a seat or caller asking for something the rules do not allow
// The message is safe to show to players.
type ActionError string

func (a ActionError) Error() string {
	return string(a)
}

// rejected requests
var (
	ErrSeatTaken       = ActionError("you already have a seat at this table")
	ErrTableFull       = ActionError("the table is full")
	ErrNotEnoughSeats  = ActionError("at least two seats are needed to start a hand")
	ErrNotActionable   = ActionError("there is no betting round in progress")
	ErrRoundComplete   = ActionError("the betting round is over")
	ErrSeatFolded      = ActionError("you have already folded")
	ErrNotYourTurn     = ActionError("it is not your turn")
	ErrCannotCheck     = ActionError("you cannot check when there is a bet to call")
	ErrRaiseTooSmall   = ActionError("a raise must be greater than the current bet")
	ErrSeatAllIn       = ActionError("you are already all-in")
	ErrHandInProgress  = ActionError("a hand is already in progress")
	ErrRoundIncomplete = ActionError("the betting round is not over yet")
	ErrOneSeatLeft     = ActionError("only one seat is left in the hand")
)

// ErrSeatNotFound is returned when a seat ID is not at the table
var ErrSeatNotFound = errors.New("seat not found")

// ErrNoActiveSeats is returned when every seat has folded and nobody can take the turn
var ErrNoActiveSeats = errors.New("no active seats remain")

// ErrCannotSettle is returned when the hand is not ready to be settled
var ErrCannotSettle = errors.New("hand cannot be settled yet")
