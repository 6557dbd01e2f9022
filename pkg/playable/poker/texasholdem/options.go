package texasholdem

import (
	"errors"
	"fmt"

	"chatpoker/internal/rng"
	"chatpoker/pkg/deck"
)

// maxSeatsLimit is the most seats a single deck can deal a full hand to
const maxSeatsLimit = (deck.Size - 5) / 2

// Options configures a table
type Options struct {
	SmallBlind    int `json:"smallBlind"`
	BigBlind      int `json:"bigBlind"`
	StartingChips int `json:"startingChips"`
	MaxSeats      int `json:"maxSeats"`

	// Shuffler shuffles the deck before every hand, rng.Default if nil
	Shuffler rng.Generator `json:"-"`
}

// DefaultOptions returns the default options for a table
func DefaultOptions() Options {
	return Options{
		SmallBlind:    10,
		BigBlind:      20,
		StartingChips: 1000,
		MaxSeats:      6,
	}
}

func validateOptions(opts Options) error {
	if opts.SmallBlind <= 0 {
		return errors.New("small blind must be > 0")
	}

	if opts.BigBlind < opts.SmallBlind {
		return errors.New("big blind must be >= the small blind")
	}

	if opts.StartingChips < opts.BigBlind {
		return errors.New("starting chips must cover the big blind")
	}

	if opts.MaxSeats < 2 || opts.MaxSeats > maxSeatsLimit {
		return fmt.Errorf("max seats must be between 2 and %d", maxSeatsLimit)
	}

	return nil
}
