// Command kernelinfo prints the operator kernel sets available in this
// build and which one capability selection picked for the current CPU.
//
// Usage:
//
//	kernelinfo [flags]
//
// Examples:
//
//	kernelinfo
//	kernelinfo -purity
//	kernelinfo -purity -fft 4096
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/risooonho/ultrafxr/internal/cpu"
	"github.com/risooonho/ultrafxr/measure/purity"
	"github.com/risooonho/ultrafxr/ops"
)

func main() {
	showPurity := flag.Bool("purity", false, "also run spectral quality analysis of the sine kernel")
	fftSize := flag.Int("fft", 1024, "FFT size for -purity (power of two)")
	flag.Parse()

	features := cpu.DetectFeatures()

	fmt.Printf("architecture: %s\n", features.Architecture)
	fmt.Printf("features:     SSE2=%v AVX2=%v NEON=%v\n", features.HasSSE2, features.HasAVX2, features.HasNEON)
	fmt.Printf("quantum:      %d samples\n\n", ops.Quantum)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KERNEL SET\tLEVEL\tPRIORITY\tSELECTED")
	for _, k := range ops.Kernels() {
		mark := ""
		if k.Selected {
			mark = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", k.Name, k.Level, k.Priority, mark)
	}
	w.Flush()

	if !*showPurity {
		return
	}

	res, err := purity.Analyze(purity.Config{Samples: *fftSize})
	if err != nil {
		fmt.Fprintln(os.Stderr, "kernelinfo:", err)
		os.Exit(1)
	}

	fmt.Printf("\nsine kernel quality (%d-point period):\n", *fftSize)
	fmt.Printf("  THD:           %.4f (%.1f dB)\n", res.THD, res.THDdB)
	fmt.Printf("  max abs error: %.4f\n", res.MaxAbsError)
	fmt.Printf("  rms error:     %.4f\n", res.RMSError)
}
