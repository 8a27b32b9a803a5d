package genetic

import "math/rand"

// Every engine owns one *rand.Rand built here; nothing reads the global
// source or the clock. A *rand.Rand must not be shared between engines
// that run concurrently: give each its own stream with DeriveSeed.

// fallbackSeed replaces a zero Config.Seed.
const fallbackSeed int64 = 1

// golden is the SplitMix64 increment.
const golden uint64 = 0x9e3779b97f4a7c15

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = fallbackSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed returns the seed of stream number stream under parent.
// Benchmark iterations and sweep points use it to get distinct streams
// that replay identically for the same parent.
func DeriveSeed(parent int64, stream uint64) int64 {
	return int64(splitmix64(uint64(parent) ^ (stream + golden)))
}

// splitmix64 is one SplitMix64 step on state z.
func splitmix64(z uint64) uint64 {
	z += golden
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return z ^ (z >> 31)
}

// shuffleInPlace permutes a uniformly (Fisher-Yates).
func shuffleInPlace(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// distinctPair picks i != j from [0, n). For n < 2 it returns (0, 0).
func distinctPair(n int, rng *rand.Rand) (int, int) {
	if n < 2 {
		return 0, 0
	}
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}

	return i, j
}
