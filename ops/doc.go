// Package ops provides the numeric operator kernels executed by compiled
// synthesis programs.
//
// Every operator processes fixed-size batches of 32-bit float samples.
// Batch lengths must be a multiple of Quantum, and the output buffer must
// not partially overlap the input (passing the same slice for both is
// allowed where an operator documents in-place safety). Kernels never
// allocate, never block, and keep no state, so concurrent calls on
// disjoint buffers need no synchronization.
//
// Each operator has a pure Go kernel and may have SIMD kernels for
// specific instruction sets. The best kernel supported by the running CPU
// is resolved once, on first use, and cached as a function pointer; the
// per-call path carries no capability branches. The purego build tag
// excludes all SIMD kernels, and the debugchecks build tag enables
// precondition assertions that are compiled out of normal builds.
//
// All kernels of an operator follow one rounding rule in phase reduction:
// round half to even. Divergence here would break cross-kernel numeric
// equivalence, so any new kernel must keep it.
package ops
