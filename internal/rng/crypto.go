package rng

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Crypto draws from crypto/rand
// It is the generator used to shuffle decks on live tables
type Crypto struct{}

// Intn returns a number in [0, n)
func (Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Errorf("crypto/rand failed: %w", err))
	}

	return int(b.Int64())
}
