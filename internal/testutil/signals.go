// Package testutil provides deterministic signal generators and tolerance
// helpers for kernel tests.
package testutil

import "math/rand"

// PhaseRamp returns length phases sweeping [start, start+periods) linearly.
func PhaseRamp(start, periods float64, length int) []float32 {
	out := make([]float32, length)
	for i := range out {
		out[i] = float32(start + periods*float64(i)/float64(length))
	}
	return out
}

// RandomPhases returns deterministic pseudo-random phases uniform in
// [-spread/2, spread/2).
func RandomPhases(seed int64, spread float64, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32((rng.Float64() - 0.5) * spread)
	}
	return out
}
