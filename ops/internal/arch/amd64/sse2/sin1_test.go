//go:build amd64 && !purego

package sse2

import (
	"math"
	"math/rand"
	"testing"

	"github.com/risooonho/ultrafxr/ops/internal/arch/generic"
)

func TestSin1_KnownValues(t *testing.T) {
	src := []float32{0.0, 0.25, 0.5, -0.25}
	want := []float32{0.0, 1.0, 0.0, -1.0}

	dst := make([]float32, len(src))
	Sin1(dst, src)

	const eps = 1e-6
	for i := range want {
		if diff := math.Abs(float64(dst[i] - want[i])); diff > eps {
			t.Errorf("Sin1(%v) = %v, want %v", src[i], dst[i], want[i])
		}
	}
}

func TestSin1_MatchesGeneric(t *testing.T) {
	const (
		n   = 4096
		eps = 1e-6
	)

	rng := rand.New(rand.NewSource(1))
	src := make([]float32, n)
	for i := range src {
		// Several periods on both sides of zero.
		src[i] = (rng.Float32() - 0.5) * 64
	}

	got := make([]float32, n)
	want := make([]float32, n)
	Sin1(got, src)
	generic.Sin1(want, src)

	for i := range src {
		diff := math.Abs(float64(got[i]) - float64(want[i]))
		if diff > eps {
			t.Fatalf("index %d: input %v: sse2 %v, generic %v (diff %v)",
				i, src[i], got[i], want[i], diff)
		}
	}
}

func TestSin1_QuantumAlignedLengths(t *testing.T) {
	for _, n := range []int{0, 4, 8, 64, 1020} {
		src := make([]float32, n)
		for i := range src {
			src[i] = float32(i)*0.37 - 3
		}

		got := make([]float32, n)
		want := make([]float32, n)
		Sin1(got, src)
		generic.Sin1(want, src)

		for i := range src {
			if diff := math.Abs(float64(got[i]) - float64(want[i])); diff > 1e-6 {
				t.Fatalf("n=%d index %d: sse2 %v, generic %v", n, i, got[i], want[i])
			}
		}
	}
}
