package ops

import (
	"github.com/risooonho/ultrafxr/internal/cpu"
	"github.com/risooonho/ultrafxr/ops/internal/arch/registry"
)

// KernelInfo describes one registered kernel set. Diagnostics only; the
// executing program never branches on it.
type KernelInfo struct {
	Name     string
	Level    cpu.SIMDLevel
	Priority int
	Selected bool
}

// Kernels returns the registered kernel sets in priority order, marking
// the one selected for this process.
func Kernels() []KernelInfo {
	selected := SelectedKernel()

	entries := registry.Global.ListEntries()
	infos := make([]KernelInfo, 0, len(entries))
	for _, e := range entries {
		infos = append(infos, KernelInfo{
			Name:     e.Name,
			Level:    e.SIMDLevel,
			Priority: e.Priority,
			Selected: e.Name == selected,
		})
	}
	return infos
}
