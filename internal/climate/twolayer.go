package climate

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/climsim/internal/ebm"
)

// TwoLayer couples the atmosphere/mixed-layer box to the deep ocean.
// It implements [ebm.System] and [ebm.Configurable].
type TwoLayer struct {
	params Params
	rng    *rand.Rand
}

// NewTwoLayer builds a model around the given parameters. rng feeds the
// stochastic forcing term; nil disables noise entirely.
func NewTwoLayer(p Params, rng *rand.Rand) *TwoLayer {
	return &TwoLayer{params: p, rng: rng}
}

func (m *TwoLayer) Params() Params { return m.params }

func (m *TwoLayer) DefaultState() ebm.State {
	return ebm.State{Atmosphere: ReferenceTemp, Ocean: ReferenceTemp}
}

// Derive computes the temperature tendencies in K/year. Every call
// consumes one noise draw when noise is enabled, so identical inputs do
// not repeat unless the caller threads a seeded generator and the
// solver's evaluation order is deterministic.
func (m *TwoLayer) Derive(s ebm.State, t float64) ebm.State {
	p := m.params

	asr := p.ASR(s.Atmosphere, t)
	forcing := p.DeterministicForcing(t) + m.noise()
	olr := p.OLR(s.Atmosphere)

	exchange := p.K * (s.Atmosphere - s.Ocean)

	return ebm.State{
		Atmosphere: (asr+forcing-olr)/p.Ca - exchange/p.Ca,
		Ocean:      exchange / p.Co,
	}
}

func (m *TwoLayer) noise() float64 {
	if m.rng == nil || m.params.NoiseAmp == 0 {
		return 0
	}
	return m.params.NoiseAmp * m.rng.NormFloat64()
}

// Fluxes is the deterministic energy-budget breakdown at one point,
// used for reporting. No noise draw happens here.
type Fluxes struct {
	ASR      float64
	OLR      float64
	Ramp     float64
	Volcanic float64
	Solar    float64
	Exchange float64
}

func (m *TwoLayer) Fluxes(s ebm.State, t float64) Fluxes {
	p := m.params
	return Fluxes{
		ASR:      p.ASR(s.Atmosphere, t),
		OLR:      p.OLR(s.Atmosphere),
		Ramp:     p.RampForcing(t),
		Volcanic: p.VolcanicForcing(t),
		Solar:    SolarCycleForcing(t),
		Exchange: p.K * (s.Atmosphere - s.Ocean),
	}
}

func (m *TwoLayer) GetParams() map[string]float64 {
	p := m.params
	return map[string]float64{
		"s0":        p.S0,
		"ca":        p.Ca,
		"co":        p.Co,
		"a":         p.A,
		"b0":        p.B0,
		"fmax":      p.Fmax,
		"k":         p.K,
		"albedo_fb": p.AlbedoFeedback,
		"vapor_fb":  p.VaporFeedback,
		"cloud_fb":  p.CloudFeedback,
		"noise":     p.NoiseAmp,
	}
}

func (m *TwoLayer) SetParam(n string, v float64) error {
	switch n {
	case "s0":
		m.params.S0 = v
	case "ca":
		m.params.Ca = v
	case "co":
		m.params.Co = v
	case "a":
		m.params.A = v
	case "b0":
		m.params.B0 = v
	case "fmax":
		m.params.Fmax = v
	case "k":
		m.params.K = v
	case "albedo_fb":
		m.params.AlbedoFeedback = v
	case "vapor_fb":
		m.params.VaporFeedback = v
	case "cloud_fb":
		m.params.CloudFeedback = v
	case "noise":
		m.params.NoiseAmp = v
	default:
		return fmt.Errorf("unknown parameter: %s", n)
	}
	return nil
}
