package nn

import (
	"math"
	"math/rand"
)

// XavierBound returns the half-width of the uniform range used to
// initialize a neuron with fanIn inputs: sqrt(6 / (fanIn + 1)).
// The +1 is the neuron's single output (fan-out).
func XavierBound(fanIn int) float64 {
	return math.Sqrt(6.0 / float64(fanIn+1))
}

// Xavier fills dst with values drawn from U(-bound, bound) where
// bound = XavierBound(fanIn).
func Xavier(rng *rand.Rand, fanIn int, dst []float64) {
	bound := XavierBound(fanIn)
	for i := range dst {
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		dst[i] = (rng.Float64()*2.0 - 1.0) * bound
	}
}

// newRand builds the generator used for weight initialization.
func newRand(opts Options) *rand.Rand {
	if opts.Rand != nil {
		return opts.Rand
	}
	//nolint:gosec // Seeded on purpose so runs are reproducible
	return rand.New(rand.NewSource(opts.Seed))
}
