package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/climsim/internal/ebm"
)

func TestFehlberg_Accuracy(t *testing.T) {
	integ := NewFehlberg()
	sys := &relaxation{tau: 1.0}

	s0 := ebm.State{Atmosphere: 300.0, Ocean: 285.0}
	s := s0
	dt := 0.01

	for i := 0; i < 100; i++ {
		s = integ.Step(sys, s, float64(i)*dt, dt)
	}

	want := sys.exact(s0, 1.0)
	if math.Abs(s.Atmosphere-want.Atmosphere) > 1e-9 {
		t.Errorf("atmosphere error too large: got %.12f, expected %.12f", s.Atmosphere, want.Atmosphere)
	}
	if math.Abs(s.Ocean-want.Ocean) > 1e-9 {
		t.Errorf("ocean error too large: got %.12f, expected %.12f", s.Ocean, want.Ocean)
	}
}

func TestFehlberg_AttemptStep(t *testing.T) {
	integ := NewFehlberg()
	sys := &relaxation{tau: 1.0}
	s0 := ebm.State{Atmosphere: 300.0, Ocean: 285.0}

	next, errEst := integ.AttemptStep(sys, s0, 0, 0.5)

	if !next.IsValid() {
		t.Error("AttemptStep produced invalid state")
	}
	if errEst <= 0 || math.IsNaN(errEst) || math.IsInf(errEst, 0) {
		t.Errorf("AttemptStep returned bad error estimate: %g", errEst)
	}

	_, errSmall := integ.AttemptStep(sys, s0, 0, 0.25)
	if errSmall >= errEst {
		t.Errorf("halving dt should shrink the estimate: %g vs %g", errSmall, errEst)
	}
}

func TestFehlberg_StageTimes(t *testing.T) {
	integ := NewFehlberg()
	sys := &forced{}

	s := ebm.State{Atmosphere: 0, Ocean: 288.0}
	dt := 0.1

	for i := 0; i < 5; i++ {
		s = integ.Step(sys, s, float64(i)*dt, dt)
	}

	if math.Abs(s.Atmosphere-math.Sin(0.5)) > 1e-7 {
		t.Errorf("expected %.10f, got %.10f", math.Sin(0.5), s.Atmosphere)
	}
}
