package otp

import (
	"crypto/rand"
	"math/big"
)

// New generates a 4-digit verification code in the range 1000-9999 inclusive.
// Codes never start with 0, so the cleared value 0 can never collide with a
// live code.
func New() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()) + 1000, nil
}
