// Package cpu provides CPU feature detection for operator kernel selection.
//
// The kernel registry uses the detected features to pick exactly one
// implementation of each operator for the running process. Detection happens
// once, on the first query, and the result is cached; after that the selected
// kernels never change, so the hot path carries no capability branches.
package cpu

import (
	"sync"
)

// SIMDLevel identifies the instruction-set extension a kernel requires.
type SIMDLevel int

const (
	// SIMDNone indicates a pure Go kernel with no SIMD requirement.
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86-64 SSE2 (part of the amd64 baseline).
	SIMDSSE2

	// SIMDAVX2 indicates x86-64 AVX2.
	SIMDAVX2

	// SIMDNEON indicates ARM Advanced SIMD (NEON).
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX2:
		return "AVX2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes the capabilities relevant to kernel selection.
type Features struct {
	HasSSE2 bool // x86-64 SSE2 (always true on amd64)
	HasAVX2 bool // x86-64 AVX2
	HasNEON bool // ARM Advanced SIMD

	// ForceGeneric disables all specialized kernels (testing/debugging).
	ForceGeneric bool

	// Architecture is runtime.GOARCH at detection time.
	Architecture string
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	// forcedFeatures overrides hardware detection. Tests only.
	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
// The first call performs detection; subsequent calls return the cached
// result. Safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// SetForcedFeatures overrides hardware detection with the given features.
// Intended for tests that exercise specific dispatch outcomes.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// Intended for tests.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports reports whether features satisfy the given SIMD level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
