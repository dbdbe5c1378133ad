package generic

import "math"

// Sin1 approximates sin(2*pi*x) for each element of src using the
// piecewise-quadratic formula x'*(8 - 16*|x'|), where x' is the phase
// reduced to (-0.5, 0.5].
//
// Phase reduction subtracts the nearest integer, rounding halves to even.
// This matches the MXCSR default used by the SSE2 kernel's packed
// conversion, keeping both implementations on the same rounding rule.
// This is the pure Go fallback and the correctness reference for all
// specialized kernels.
func Sin1(dst, src []float32) {
	for i, x := range src {
		x -= float32(math.RoundToEven(float64(x)))
		dst[i] = x * (8 - 16*abs32(x))
	}
}

// abs32 clears the sign bit, mirroring the vector and-mask idiom.
func abs32(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}
