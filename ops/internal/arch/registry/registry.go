// Package registry manages the kernel implementations available for each
// operator.
//
// Architecture-specific packages register their kernels from init()
// functions. The ops package resolves the highest-priority entry supported
// by the detected CPU features exactly once, so the per-call cost of an
// operator is a plain function-pointer call with no capability branching.
package registry

import (
	"sync"

	"github.com/risooonho/ultrafxr/internal/cpu"
)

// BlockFn processes one batch: dst[i] receives the operator applied to
// src[i]. Lengths are equal, a multiple of the operator quantum, and the
// slices do not alias.
type BlockFn func(dst, src []float32)

// OpEntry is one registered kernel implementation set.
//
// Only the operators a level actually implements need to be populated;
// the generic entry must populate all of them.
type OpEntry struct {
	// Name is a human-readable identifier ("generic", "sse2").
	Name string

	// SIMDLevel is the instruction-set extension the kernels require.
	SIMDLevel cpu.SIMDLevel

	// Priority orders selection when several entries are compatible.
	// Higher wins. Generic is 0, SSE2 10, AVX2 20.
	Priority int

	// Sin1 is the periodic quadratic sine approximation kernel.
	Sin1 BlockFn
}

// OpRegistry stores the available kernel entries.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry. Called from arch package init()
// functions; all registrations complete before the first Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry supported by features, or nil
// if nothing is registered (which cannot happen while the generic package
// is linked in).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

func (r *OpRegistry) sortByPriority() {
	// Insertion sort; the registry holds a handful of entries.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries for tests and the
// kernelinfo command.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
