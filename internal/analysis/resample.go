package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/stat"
)

// Resample interpolates an unevenly sampled series onto a uniform grid
// of n points spanning the same interval. Times must be strictly
// increasing. Returns the series and the grid spacing.
func Resample(times, values []float64, n int) ([]float64, float64, error) {
	if len(times) != len(values) {
		return nil, 0, fmt.Errorf("length mismatch: %d times, %d values", len(times), len(values))
	}
	if len(times) < 2 || n < 2 {
		return nil, 0, fmt.Errorf("need at least 2 samples, got %d in and %d out", len(times), n)
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(times, values); err != nil {
		return nil, 0, err
	}

	t0 := times[0]
	t1 := times[len(times)-1]
	spacing := (t1 - t0) / float64(n-1)

	out := make([]float64, n)
	for i := range out {
		x := t0 + float64(i)*spacing
		if x > t1 {
			x = t1
		}
		out[i] = pl.Predict(x)
	}
	return out, spacing, nil
}

// Detrend subtracts the least-squares line from a uniformly spaced
// series, leaving the oscillations around the trend.
func Detrend(values []float64, spacing float64) []float64 {
	xs := make([]float64, len(values))
	for i := range xs {
		xs[i] = float64(i) * spacing
	}

	alpha, beta := stat.LinearRegression(xs, values, nil, false)

	out := make([]float64, len(values))
	for i := range values {
		out[i] = values[i] - (alpha + beta*xs[i])
	}
	return out
}
