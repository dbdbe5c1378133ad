package ops

import (
	"sync"

	"github.com/risooonho/ultrafxr/internal/cpu"
	"github.com/risooonho/ultrafxr/ops/internal/arch/registry"
)

// Quantum is the minimum number of samples a kernel processes as an
// atomic, vector-aligned unit. Batch lengths must be exact multiples.
const Quantum = 4

var (
	sin1Impl         registry.BlockFn
	selectedName     string
	dispatchInitOnce sync.Once
)

// Sin1 approximates sin(2*pi*src[i]) for every element of the batch and
// writes the result to dst. The input is measured in periods: one unit of
// phase is one full cycle, so the function is periodic in steps of 1.
//
// The approximation is piecewise quadratic with unit peak amplitude and a
// worst-case deviation of about 0.056 from the exact sine. Inputs of
// magnitude 2^31 or more are outside the supported domain.
//
// Preconditions (assertion-checked only under the debugchecks build tag):
// len(dst) == len(src), the length is a multiple of Quantum, and the
// slices do not partially overlap. dst and src may be the same slice;
// the operator is in-place safe. Zero allocations.
func Sin1(dst, src []float32) {
	dispatchInitOnce.Do(initKernels)
	assertBatch(dst, src)
	sin1Impl(dst, src)
}

// SelectedKernel returns the name of the kernel set chosen for this
// process ("sse2", "generic", ...). Intended for diagnostics.
func SelectedKernel() string {
	dispatchInitOnce.Do(initKernels)
	return selectedName
}

func initKernels() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("ops: no kernel registered (missing generic fallback?)")
	}

	if entry.Sin1 == nil {
		panic("ops: selected kernel set " + entry.Name + " missing Sin1")
	}

	sin1Impl = entry.Sin1
	selectedName = entry.Name
}
