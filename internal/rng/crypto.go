package rng

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Crypto draws uniform numbers from a cryptographic source
// rand.Int rejects out-of-range samples, so a Fisher-Yates shuffle driven by Crypto has no modulo bias.
type Crypto struct {
	// Source defaults to crypto/rand.Reader
	Source io.Reader
}

// Intn returns a random number from 0 <= x < n
// It panics if n <= 0 or the source fails, the same as math/rand.
func (c Crypto) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("invalid argument to Intn: %d", n))
	}

	src := c.Source
	if src == nil {
		src = rand.Reader
	}

	v, err := rand.Int(src, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Errorf("could not read random source: %w", err))
	}

	return int(v.Int64())
}
