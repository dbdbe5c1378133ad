package generic

import (
	"github.com/risooonho/ultrafxr/internal/cpu"
	"github.com/risooonho/ultrafxr/ops/internal/arch/registry"
)

// init registers the pure Go kernels. These are the baseline fallback,
// selected when no SIMD alternative applies or when ForceGeneric is set.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Sin1:      Sin1,
	})
}
