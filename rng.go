package vbdm

import (
	"math"
	"math/rand"

	mrg63k3a "github.com/maseology/pnrg/MRG63k3a"
)

// NewRNG returns a seeded MRG63k3a stream. Give every concurrent unit of
// work (a place, a sample realization) its own stream so a fixed seed yields
// identical outcomes regardless of scheduling.
func NewRNG(seed int64) *rand.Rand {
	rng := rand.New(mrg63k3a.New())
	rng.Seed(seed)
	return rng
}

// stochRound converts an expected count to an integer without bias: round up
// with probability equal to the fractional remainder. Always consumes one
// draw.
func stochRound(rng *rand.Rand, e float64) int {
	n := int(math.Floor(e))
	if rng.Float64() < e-float64(n) {
		n++
	}
	return n
}

// fyShuffle randomizes xs in place (Fisher-Yates), one draw per swap.
func fyShuffle(rng *rand.Rand, xs []int) {
	for i := len(xs) - 1; i > 0; i-- {
		j := int(rng.Float64() * float64(i+1))
		xs[i], xs[j] = xs[j], xs[i]
	}
}
