//go:build amd64 && !purego

package sse2

// Sin1 computes the quadratic sine approximation over the batch using SSE2
// packed arithmetic, four lanes per step. The packed int conversion rounds
// half to even (MXCSR default), the same rule as the generic kernel.
//
// The batch length is a multiple of the quantum; the ops front enforces
// the contract.
func Sin1(dst, src []float32) {
	if len(dst) == 0 {
		return
	}
	sin1SSE2(dst, src)
}

// Assembly implementation in sin1_amd64.s.

//go:noescape
func sin1SSE2(dst, src []float32)
