package random

import (
	"crypto/rand"
	"math/big"
)

// Random provides random value generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// Digits generates a random numeric string of the given length,
	// used for minting snowflake-style identifiers in the local gateway
	Digits(length int) string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a cryptographically random int in [0, n)
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	result, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failure is not recoverable here; 0 keeps callers total
		return 0
	}
	return int(result.Int64())
}

// Digits generates a random numeric string of the given length
func (r *CryptoRandom) Digits(length int) string {
	if length <= 0 {
		return ""
	}
	const digits = "0123456789"
	out := make([]byte, length)
	// Avoid a leading zero so minted IDs look like platform snowflakes
	out[0] = digits[1+r.Intn(9)]
	for i := 1; i < length; i++ {
		out[i] = digits[r.Intn(len(digits))]
	}
	return string(out)
}
