package aco

import "math/rand"

// golden is 2^64/φ, the SplitMix64 increment.
const golden uint64 = 0x9e3779b97f4a7c15

// newRand returns the colony stream for seed. Seed 0 selects seed 1, so the
// zero value of Options is reproducible too.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}

// antRand splits ant k's private stream off the colony stream, consuming one
// colony draw. math/rand.Rand is not safe for concurrent use, so each ant
// must own one.
func antRand(colony *rand.Rand, k int) *rand.Rand {
	mixed := splitmix64(uint64(colony.Int63()) ^ (uint64(k) * golden))
	return rand.New(rand.NewSource(int64(mixed)))
}

func splitmix64(x uint64) uint64 {
	x += golden
	x = (x ^ x>>30) * 0xbf58476d1ce4e5b9
	x = (x ^ x>>27) * 0x94d049bb133111eb
	return x ^ x>>31
}
