// Package purity quantifies the spectral quality of the quadratic sine
// approximation.
//
// The kernel's waveform is analyzed over exactly one period, so every
// harmonic lands on an FFT bin and no window is needed. The parabolic
// arch of the approximation carries only odd harmonics, falling off as
// 1/n^3; THD comes out near 3.8%.
package purity

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/risooonho/ultrafxr/ops"
)

// Config holds analysis parameters.
type Config struct {
	// Samples is the number of points per period and the FFT size.
	// Must be a power of two and a multiple of ops.Quantum.
	Samples int

	// MaxHarmonics is the highest harmonic order to report. Defaults to 15.
	MaxHarmonics int
}

// Result holds the spectral and time-domain quality metrics.
type Result struct {
	// Fundamental is the amplitude at the fundamental frequency, assuming
	// an unnormalized forward transform.
	Fundamental float64

	// Harmonics holds amplitudes of harmonic orders 2..MaxHarmonics,
	// indexed by order-2.
	Harmonics []float64

	// THD is total harmonic distortion as a ratio, and THDdB the same in
	// decibels.
	THD   float64
	THDdB float64

	// MaxAbsError and RMSError measure time-domain deviation from the
	// exact sine over one period.
	MaxAbsError float64
	RMSError    float64
}

// Analyze runs the sine kernel over one period and measures it.
func Analyze(cfg Config) (Result, error) {
	n := cfg.Samples
	if n < 2*ops.Quantum || n&(n-1) != 0 {
		return Result{}, fmt.Errorf("purity: samples must be a power of two >= %d: %d", 2*ops.Quantum, n)
	}
	if n%ops.Quantum != 0 {
		return Result{}, fmt.Errorf("purity: samples must be a multiple of the quantum %d: %d", ops.Quantum, n)
	}

	maxHarmonics := cfg.MaxHarmonics
	if maxHarmonics <= 0 {
		maxHarmonics = 15
	}
	if maxHarmonics >= n/2 {
		maxHarmonics = n/2 - 1
	}

	phases := make([]float32, n)
	for i := range phases {
		phases[i] = float32(i) / float32(n)
	}

	wave := make([]float32, n)
	ops.Sin1(wave, phases)

	// Time-domain deviation from the exact sine.
	var maxErr, sumSq float64
	for i := range wave {
		err := float64(wave[i]) - math.Sin(2*math.Pi*float64(phases[i]))
		if a := math.Abs(err); a > maxErr {
			maxErr = a
		}
		sumSq += err * err
	}

	inData := make([]complex128, n)
	for i, v := range wave {
		inData[i] = complex(float64(v), 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Result{}, fmt.Errorf("purity: fft plan: %w", err)
	}

	spectrum := make([]complex128, n)
	if err := plan.Forward(spectrum, inData); err != nil {
		return Result{}, fmt.Errorf("purity: fft forward: %w", err)
	}

	// Squared magnitudes of the non-negative-frequency bins.
	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(spectrum[i])
		im[i] = imag(spectrum[i])
	}

	magSq := make([]float64, bins)
	vecmath.Power(magSq, re, im)

	// Single-sided amplitudes.
	amps := make([]float64, bins)
	for i := range amps {
		amps[i] = mathSqrt(magSq[i])
	}
	vecmath.ScaleBlock(amps, amps, 2/float64(n))

	res := Result{
		Fundamental: amps[1],
		Harmonics:   make([]float64, 0, maxHarmonics-1),
		MaxAbsError: maxErr,
		RMSError:    mathSqrt(sumSq / float64(n)),
	}

	var harmSq float64
	for k := 2; k <= maxHarmonics; k++ {
		res.Harmonics = append(res.Harmonics, amps[k])
		harmSq += amps[k] * amps[k]
	}

	if res.Fundamental > 0 {
		res.THD = mathSqrt(harmSq) / res.Fundamental
	}
	if res.THD > 0 {
		res.THDdB = 20 * mathLog10(res.THD)
	} else {
		res.THDdB = math.Inf(-1)
	}

	return res, nil
}
