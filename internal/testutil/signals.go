package testutil

import "math/rand"

// RandomPositions generates n deterministic sample positions uniformly
// distributed over [-span/2, span/2).
func RandomPositions(seed int64, span float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64() - 0.5) * span
	}
	return out
}

// RandomWeights generates n deterministic complex weights with real and
// imaginary parts uniformly distributed over [-0.5, 0.5).
func RandomWeights(seed int64, n int) []complex128 {
	out := make([]complex128, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = complex(rng.Float64()-0.5, rng.Float64()-0.5)
	}
	return out
}

// UnitWeights returns n weights equal to 1.
func UnitWeights(n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
