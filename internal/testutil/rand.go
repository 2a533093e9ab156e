package testutil

import "math/rand/v2"

// FixedSeed is the seed used by tests that need reproducible invalid values.
const FixedSeed uint64 = 42

// NewRand returns a PCG-backed source seeded with seed.
//
// The same seed always yields the same sequence, so a test built on it
// produces identical invalid values across runs.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
