package service

import (
	"esports-companion/internal/config"
	"math/rand/v2"
	"time"
)

// RandomSource is the draw used by the boxscore generator. *rand.Rand
// satisfies it; tests inject fixed sequences.
type RandomSource interface {
	IntN(n int) int
}

// NewRandomSource seeds a PCG generator from RANDOM_SEED, or from the clock
// when no seed is configured.
func NewRandomSource(cfg *config.Config) RandomSource {
	seed := cfg.RandomSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// between draws uniformly from [lo, hi).
func between(rng RandomSource, lo, hi int) int {
	return lo + rng.IntN(hi-lo)
}
