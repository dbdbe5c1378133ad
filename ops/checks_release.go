//go:build !debugchecks

package ops

// assertBatch is a no-op in normal builds; the batch contract is a
// precondition, not a runtime check. See checks_debug.go.
func assertBatch(dst, src []float32) {}
