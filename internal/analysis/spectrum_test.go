package analysis

import (
	"math"
	"testing"
)

func TestPowerSpectrumConstant(t *testing.T) {
	ps := PowerSpectrum([]float64{1, 1, 1, 1})

	if len(ps) != 2 {
		t.Fatalf("expected 2 bins, got %d", len(ps))
	}
	if math.Abs(ps[0]-4.0) > 1e-9 {
		t.Errorf("DC bin should carry the sum, got %f", ps[0])
	}
	if ps[1] > 1e-9 {
		t.Errorf("constant input should have no oscillation, got %f", ps[1])
	}
}

func TestPowerSpectrumPadsToPowerOfTwo(t *testing.T) {
	ps := PowerSpectrum(make([]float64, 6))
	if len(ps) != 4 {
		t.Errorf("6 samples should pad to 8, giving 4 bins, got %d", len(ps))
	}
}

func TestPowerSpectrumSinePeak(t *testing.T) {
	n := 256
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * float64(i) / 16.0)
	}

	ps := PowerSpectrum(data)

	peak := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > ps[peak] {
			peak = i
		}
	}
	if peak != 16 {
		t.Errorf("expected peak at bin 16, got %d", peak)
	}
}

func TestDominantPeriod(t *testing.T) {
	// 32 full 11-year cycles across 1024 uniform samples
	n := 1024
	spacing := 11.0 / 32.0
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * float64(i) * spacing / 11.0)
	}

	period := DominantPeriod(PowerSpectrum(data), spacing)
	if math.Abs(period-11.0) > 1e-6 {
		t.Errorf("expected an 11 year period, got %f", period)
	}
}

func TestDominantPeriodFlat(t *testing.T) {
	if got := DominantPeriod([]float64{5, 0, 0, 0}, 1.0); got != 0 {
		t.Errorf("flat spectrum should report 0, got %f", got)
	}
}
