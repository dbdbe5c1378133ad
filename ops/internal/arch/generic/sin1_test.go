package generic

import (
	"math"
	"testing"
)

func TestSin1_KnownValues(t *testing.T) {
	src := []float32{0.0, 0.25, 0.5, -0.25}
	want := []float32{0.0, 1.0, 0.0, -1.0}

	dst := make([]float32, len(src))
	Sin1(dst, src)

	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("Sin1(%v) = %v, want %v", src[i], dst[i], want[i])
		}
	}
}

func TestSin1_PhaseReductionRoundsHalfToEven(t *testing.T) {
	// 0.5 reduces to 0.5 (round to 0), 1.5 reduces to -0.5 (round to 2).
	// Both land on a fold zero, so the output is 0 either way, but the
	// reduced phases must follow nearest-even.
	src := []float32{0.5, 1.5, 2.5, -0.5}
	dst := make([]float32, len(src))
	Sin1(dst, src)

	for i, v := range dst {
		if v != 0 {
			t.Errorf("Sin1(%v) = %v, want 0 at fold boundary", src[i], v)
		}
	}
}

func TestSin1_ApproximatesSine(t *testing.T) {
	const n = 1024
	src := make([]float32, n)
	for i := range src {
		src[i] = float32(i)/n - 0.5
	}

	dst := make([]float32, n)
	Sin1(dst, src)

	maxErr := 0.0
	for i := range dst {
		err := math.Abs(float64(dst[i]) - math.Sin(2*math.Pi*float64(src[i])))
		if err > maxErr {
			maxErr = err
		}
	}

	// The quadratic approximation deviates from sin by about 0.056 at worst.
	if maxErr > 0.06 {
		t.Errorf("max deviation from sin = %v, want <= 0.06", maxErr)
	}
	if maxErr < 0.03 {
		t.Errorf("max deviation from sin = %v, suspiciously small for this approximation", maxErr)
	}
}

func TestAbs32(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{1.5, 1.5},
		{-1.5, 1.5},
		{0, 0},
		{float32(math.Copysign(0, -1)), 0},
	}
	for _, tt := range tests {
		if got := abs32(tt.in); got != tt.want {
			t.Errorf("abs32(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
