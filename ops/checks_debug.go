//go:build debugchecks

package ops

import "unsafe"

// assertBatch enforces the batch contract. Violations are programmer
// errors in the calling program, not runtime conditions, so the checks
// exist only under the debugchecks build tag.
func assertBatch(dst, src []float32) {
	if len(dst) != len(src) {
		panic("ops: batch length mismatch")
	}
	if len(dst)%Quantum != 0 {
		panic("ops: batch length not a multiple of Quantum")
	}
	if len(dst) == 0 {
		return
	}

	d := uintptr(unsafe.Pointer(&dst[0]))
	s := uintptr(unsafe.Pointer(&src[0]))
	if d == s {
		// Fully in-place is part of the contract.
		return
	}

	size := uintptr(len(dst)) * unsafe.Sizeof(dst[0])
	if d < s+size && s < d+size {
		panic("ops: batch buffers partially overlap")
	}
}
