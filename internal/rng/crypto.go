package rng

import (
	"crypto/rand"
	"math/big"
)

// Default is the generator decks use unless told otherwise
var Default Generator = Crypto{}

// Crypto draws from crypto/rand so every shuffle permutation is equally likely
type Crypto struct{}

// Intn returns a random number in [0, n)
func (c Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
