package climate

// ReferenceTemp is the preindustrial surface temperature (K) around
// which the feedback linearizations are anchored.
const ReferenceTemp = 288.0

// Params holds the physical constants for one model run. Fixed once
// the run starts; solvers never mutate it.
type Params struct {
	S0   float64 // solar constant, W/m^2
	Ca   float64 // atmosphere + mixed layer heat capacity, J/(m^2 K)
	Co   float64 // deep ocean heat capacity, J/(m^2 K)
	A    float64 // OLR intercept, W/m^2
	B0   float64 // OLR slope at the reference temperature, W/(m^2 K)
	Fmax float64 // greenhouse ramp plateau, W/m^2
	K    float64 // air-sea exchange coefficient, W/(m^2 K)

	AlbedoFeedback float64 // albedo change per K of warming
	VaporFeedback  float64 // OLR slope reduction per K of warming
	CloudFeedback  float64 // OLR intercept shift per K of warming, W/(m^2 K)
	NoiseAmp       float64 // weather noise amplitude, W/m^2

	Eruptions []Eruption
}

func DefaultParams() Params {
	return Params{
		S0:   1361.0,
		Ca:   1e8,
		Co:   1e10,
		A:    -337.825,
		B0:   2.0,
		Fmax: 3.7,
		K:    1e7,

		AlbedoFeedback: 0.01,
		VaporFeedback:  0.01,
		CloudFeedback:  0.5,
		NoiseAmp:       0.3,

		Eruptions: DefaultEruptions(),
	}
}

// ECS returns the equilibrium climate sensitivity in K per forcing
// doubling: the steady-state warming once the full ramp plateau is
// balanced by the longwave response.
func (p Params) ECS() float64 {
	return p.Fmax / p.B0
}
