//go:build amd64 && !purego

package sse2

import (
	"github.com/risooonho/ultrafxr/internal/cpu"
	"github.com/risooonho/ultrafxr/ops/internal/arch/registry"
)

// init registers the SSE2 kernels. SSE2 is part of the amd64 baseline, so
// on amd64 this entry is selected unless ForceGeneric or the purego build
// tag rules it out.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		Sin1:      Sin1,
	})
}
