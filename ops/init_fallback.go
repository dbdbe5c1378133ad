//go:build !amd64 || purego

package ops

// Only the pure Go kernels are available on this configuration.

import (
	_ "github.com/risooonho/ultrafxr/ops/internal/arch/generic"
)
