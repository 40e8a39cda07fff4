package zkp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const alphanumericAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandBelow returns a value drawn uniformly at random from [0, max) using a
// cryptographically strong system RNG. max must be strictly positive.
func RandBelow(max *big.Int) (*big.Int, error) {
	if max == nil || max.Sign() <= 0 {
		return nil, fmt.Errorf("zkp: max must be > 0")
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return nil, fmt.Errorf("zkp: failed to generate random value: %w", err)
	}
	return n, nil
}

// RandAlphanumeric returns a string of n characters drawn uniformly from
// the alphanumeric alphabet using the same CSPRNG as RandBelow. It is used
// to mint auth_id and session_id handles.
func RandAlphanumeric(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("zkp: n must be > 0")
	}
	alphabetSize := big.NewInt(int64(len(alphanumericAlphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("zkp: failed to generate random character: %w", err)
		}
		out[i] = alphanumericAlphabet[idx.Int64()]
	}
	return string(out), nil
}
