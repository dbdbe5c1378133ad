//go:build amd64 && !purego

package ops

import (
	"sync"
	"testing"

	"github.com/risooonho/ultrafxr/internal/cpu"
	"github.com/risooonho/ultrafxr/ops/internal/arch/registry"
)

func resetDispatchForTest() {
	sin1Impl = nil
	selectedName = ""
	dispatchInitOnce = sync.Once{}
}

func TestDispatch_AMD64Modes(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		wantImpl string
	}{
		{
			name: "generic-forced",
			features: cpu.Features{
				ForceGeneric: true,
				Architecture: "amd64",
			},
			wantImpl: "generic",
		},
		{
			name: "sse2",
			features: cpu.Features{
				HasSSE2:      true,
				Architecture: "amd64",
			},
			wantImpl: "sse2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tt.features)
			defer cpu.ResetDetection()

			resetDispatchForTest()
			defer resetDispatchForTest()

			if got := SelectedKernel(); got != tt.wantImpl {
				t.Errorf("SelectedKernel() = %q, want %q", got, tt.wantImpl)
			}

			// The selected kernel set must produce correct output.
			src := []float32{0.0, 0.25, 0.5, -0.25}
			dst := make([]float32, len(src))
			Sin1(dst, src)
			want := []float32{0.0, 1.0, 0.0, -1.0}
			for i := range want {
				diff := dst[i] - want[i]
				if diff < -1e-6 || diff > 1e-6 {
					t.Errorf("index %d: Sin1 = %v, want %v", i, dst[i], want[i])
				}
			}
		})
	}
}

func TestRegistryHasAMD64Entries(t *testing.T) {
	entries := registry.Global.ListEntries()
	if len(entries) == 0 {
		t.Fatal("no kernel sets registered - init() functions not running")
	}

	names := make(map[string]bool)
	for _, e := range entries {
		names[e.Name] = true
		if e.Sin1 == nil {
			t.Errorf("kernel set %q missing Sin1", e.Name)
		}
	}

	if !names["generic"] {
		t.Error("generic kernel set not registered")
	}
	if !names["sse2"] {
		t.Error("sse2 kernel set not registered")
	}
}
