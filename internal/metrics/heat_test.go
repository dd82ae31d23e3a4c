package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/climsim/internal/ebm"
)

func TestHeatContent(t *testing.T) {
	base := ebm.State{Atmosphere: 288.0, Ocean: 288.0}
	m := NewHeatContent(1e8, 1e10, base)

	m.Observe(ebm.State{Atmosphere: 289.0, Ocean: 288.5}, 1)

	want := 1e8*1.0 + 1e10*0.5
	if math.Abs(m.Value()-want) > 1 {
		t.Errorf("expected heat content %g, got %g", want, m.Value())
	}
}

func TestHeatContentTracksLatest(t *testing.T) {
	base := ebm.State{Atmosphere: 288.0, Ocean: 288.0}
	m := NewHeatContent(1e8, 1e10, base)

	m.Observe(ebm.State{Atmosphere: 290.0, Ocean: 289.0}, 1)
	m.Observe(base, 2)

	if m.Value() != 0 {
		t.Errorf("expected zero at baseline, got %g", m.Value())
	}
}

func TestHeatContentReset(t *testing.T) {
	base := ebm.State{Atmosphere: 288.0, Ocean: 288.0}
	m := NewHeatContent(1e8, 1e10, base)
	m.Observe(ebm.State{Atmosphere: 289.0, Ocean: 289.0}, 1)

	m.Reset()
	if m.Value() != 0 {
		t.Errorf("expected zero after reset, got %g", m.Value())
	}
}
