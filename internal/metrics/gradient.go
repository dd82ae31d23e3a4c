package metrics

import (
	"math"

	"github.com/san-kum/climsim/internal/ebm"
)

// MaxGradient tracks the largest air-sea temperature disequilibrium.
type MaxGradient struct {
	name string
	max  float64
}

func NewMaxGradient() *MaxGradient {
	return &MaxGradient{name: "max_gradient"}
}

func (m *MaxGradient) Name() string { return m.name }

func (m *MaxGradient) Observe(s ebm.State, t float64) {
	if g := math.Abs(s.Gradient()); g > m.max {
		m.max = g
	}
}

func (m *MaxGradient) Value() float64 {
	return m.max
}

func (m *MaxGradient) Reset() {
	m.max = 0
}
