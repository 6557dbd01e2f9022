package util

import (
	"fmt"
	"math/rand"
	"time"
)

var adjectives = []string{
	"Lucky", "Sneaky", "Quiet", "Loose", "Tight", "Patient", "Reckless", "Grinning", "Stone-faced", "Cool",
	"Red", "Blue", "Green", "Golden", "Silver", "Fuzzy", "Smiling", "Tall", "Grand", "Ultimate", "Prime",
	"Bluffing", "Calling", "Folding", "Raising", "Shoving", "Slowrolling", "Sandbagging",
}

var nicknames = []string{
	"Shark", "Fish", "Whale", "Donkey", "Rock", "Maniac", "Grinder", "Nit", "Calling Station", "Cowboy",
	"Lady", "Ace", "Dealer", "Button", "Kicker", "River Rat", "Gambler", "Hustler",
}

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

// GetRandomName returns a random name by combining an adjective with a poker nickname
// It is used for players who join without giving a name.
func GetRandomName() string {
	return fmt.Sprintf("%s %s", adjectives[random.Intn(len(adjectives))], nicknames[random.Intn(len(nicknames))])
}
