package vbdm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProbInfectionBounds(t *testing.T) {
	effs := []float64{0., .01, .25, .5, .99, 1.}
	bites := []float64{0., .001, .01, .5, 1., 10., 1000.}
	for _, e := range effs {
		for _, b := range bites {
			pr := probInfection(e, b)
			assert.GreaterOrEqual(t, pr, 0., "eff %f bites %f", e, b)
			assert.LessOrEqual(t, pr, 1., "eff %f bites %f", e, b)
		}
	}
}

// the mean of the stochastically rounded count converges to the expectation
// (in contrast to the truncation applied to vector counts)
func TestStochRoundUnbiased(t *testing.T) {
	rng := NewRNG(1984)
	const e, ntrials = 3.442386, 20000
	sum := 0
	for k := 0; k < ntrials; k++ {
		n := stochRound(rng, e)
		assert.True(t, n == 3 || n == 4)
		sum += n
	}
	assert.InDelta(t, e, float64(sum)/ntrials, .02)
}

func TestStochRoundExact(t *testing.T) {
	rng := NewRNG(1)
	for k := 0; k < 100; k++ {
		assert.Equal(t, 5, stochRound(rng, 5.))
		assert.Equal(t, 0, stochRound(rng, 0.))
	}
}

// every index lands in every position with equal long-run frequency
func TestFYShuffleUniform(t *testing.T) {
	rng := NewRNG(7)
	const n, ntrials = 5, 50000
	var freq [n][n]int
	for k := 0; k < ntrials; k++ {
		xs := []int{0, 1, 2, 3, 4}
		fyShuffle(rng, xs)
		for pos, v := range xs {
			freq[v][pos]++
		}
	}
	for v := 0; v < n; v++ {
		for pos := 0; pos < n; pos++ {
			assert.InDelta(t, 1./n, float64(freq[v][pos])/ntrials, .015,
				"index %d at position %d", v, pos)
		}
	}
}

func TestNewRNGReproducible(t *testing.T) {
	a, b := NewRNG(123), NewRNG(123)
	for k := 0; k < 1000; k++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}
