package nn

import (
	"math/rand"

	"github.com/dcunhrya/karpathy-micrograd/internal/autodiff"
)

// Uniform creates n leaves with values drawn from U(low, high).
//
// The random source is passed in explicitly so that the same seed always
// produces the same network.
func Uniform(rng *rand.Rand, n int, low, high float64) []*autodiff.Value {
	out := make([]*autodiff.Value, n)
	for i := range out {
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		out[i] = autodiff.New(low + rng.Float64()*(high-low))
	}
	return out
}
