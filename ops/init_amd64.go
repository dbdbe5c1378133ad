//go:build amd64 && !purego

package ops

// Blank imports trigger the init() registration of the kernel sets
// available on amd64 builds.

import (
	_ "github.com/risooonho/ultrafxr/ops/internal/arch/amd64/sse2"
	_ "github.com/risooonho/ultrafxr/ops/internal/arch/generic"
)
