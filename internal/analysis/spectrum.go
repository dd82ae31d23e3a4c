package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitudes of the positive-frequency bins,
// zero-padding the input to the next power of two first.
func PowerSpectrum(data []float64) []float64 {
	n := 1
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, data)

	bins := fft.FFTReal(padded)
	ps := make([]float64, len(bins)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(bins[i])
	}
	return ps
}

// DominantPeriod picks the strongest line in a power spectrum computed
// from samples with the given spacing and converts it to a period in
// years. Bin zero carries the mean and is skipped. Returns 0 when the
// spectrum is flat.
func DominantPeriod(ps []float64, spacing float64) float64 {
	maxIdx := 0
	maxPower := 0.0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}
	if maxIdx == 0 {
		return 0
	}
	n := 2 * len(ps)
	return float64(n) * spacing / float64(maxIdx)
}
