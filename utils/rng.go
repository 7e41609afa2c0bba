package utils

import "math/rand/v2"

// NewRNG returns a deterministic generator for the given seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
