package ebm

import (
	"math"
	"testing"
)

func TestStateArithmetic(t *testing.T) {
	a := State{Atmosphere: 290, Ocean: 288}
	b := State{Atmosphere: 1, Ocean: -2}

	sum := a.Add(b)
	if sum.Atmosphere != 291 || sum.Ocean != 286 {
		t.Errorf("Add: got %+v", sum)
	}

	diff := a.Sub(b)
	if diff.Atmosphere != 289 || diff.Ocean != 290 {
		t.Errorf("Sub: got %+v", diff)
	}

	scaled := b.Scale(0.5)
	if scaled.Atmosphere != 0.5 || scaled.Ocean != -1 {
		t.Errorf("Scale: got %+v", scaled)
	}
}

func TestStateGradient(t *testing.T) {
	s := State{Atmosphere: 289.5, Ocean: 288.25}
	if got := s.Gradient(); got != 1.25 {
		t.Errorf("expected gradient 1.25, got %f", got)
	}
}

func TestStateIsValid(t *testing.T) {
	if !(State{288, 288}).IsValid() {
		t.Error("finite state reported invalid")
	}
	if (State{math.NaN(), 288}).IsValid() {
		t.Error("NaN atmosphere reported valid")
	}
	if (State{288, math.Inf(1)}).IsValid() {
		t.Error("Inf ocean reported valid")
	}
}

func TestStateMaxAbs(t *testing.T) {
	s := State{Atmosphere: -300, Ocean: 120}
	if got := s.MaxAbs(); got != 300 {
		t.Errorf("expected 300, got %f", got)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.End <= cfg.Start {
		t.Error("default span should be increasing")
	}
	if cfg.Dt <= 0 {
		t.Error("default dt should be positive")
	}
	if !cfg.Adaptive {
		t.Error("default config should be adaptive")
	}
	if cfg.Tolerance <= 0 {
		t.Error("default tolerance should be positive")
	}
	if cfg.MinDt <= 0 || cfg.MinDt >= cfg.Dt {
		t.Errorf("default min dt out of range: %g", cfg.MinDt)
	}
}
