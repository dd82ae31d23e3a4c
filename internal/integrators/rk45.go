package integrators

import (
	"math"

	"github.com/san-kum/climsim/internal/ebm"
)

// Dormand-Prince coefficients (RK45)
var (
	a2 = 1.0 / 5.0
	a3 = 3.0 / 10.0
	a4 = 4.0 / 5.0
	a5 = 8.0 / 9.0

	b21 = 1.0 / 5.0
	b31 = 3.0 / 40.0
	b32 = 9.0 / 40.0
	b41 = 44.0 / 45.0
	b42 = -56.0 / 15.0
	b43 = 32.0 / 9.0
	b51 = 19372.0 / 6561.0
	b52 = -25360.0 / 2187.0
	b53 = 64448.0 / 6561.0
	b54 = -212.0 / 729.0
	b61 = 9017.0 / 3168.0
	b62 = -355.0 / 33.0
	b63 = 46732.0 / 5247.0
	b64 = 49.0 / 176.0
	b65 = -5103.0 / 18656.0

	c1 = 35.0 / 384.0
	c3 = 500.0 / 1113.0
	c4 = 125.0 / 192.0
	c5 = -2187.0 / 6784.0
	c6 = 11.0 / 84.0

	dc1 = c1 - 5179.0/57600.0
	dc3 = c3 - 7571.0/16695.0
	dc4 = c4 - 393.0/640.0
	dc5 = c5 - -92097.0/339200.0
	dc6 = c6 - 187.0/2100.0
	dc7 = -1.0 / 40.0
)

type RK45 struct{}

func NewRK45() *RK45 {
	return &RK45{}
}

func (r *RK45) Info() ebm.Info {
	return ebm.Info{Name: "rk45", Order: 5, Stages: 7}
}

func (r *RK45) Step(sys ebm.System, s ebm.State, t, dt float64) ebm.State {
	next, _ := r.AttemptStep(sys, s, t, dt)
	return next
}

// AttemptStep advances one trial step and reports the normalized local
// error estimate. The caller decides acceptance against its tolerance.
func (r *RK45) AttemptStep(sys ebm.System, s ebm.State, t, dt float64) (ebm.State, float64) {
	k1 := sys.Derive(s, t)

	x2 := s.Add(k1.Scale(dt * b21))
	k2 := sys.Derive(x2, t+a2*dt)

	x3 := s.Add(k1.Scale(b31).Add(k2.Scale(b32)).Scale(dt))
	k3 := sys.Derive(x3, t+a3*dt)

	x4 := s.Add(k1.Scale(b41).Add(k2.Scale(b42)).Add(k3.Scale(b43)).Scale(dt))
	k4 := sys.Derive(x4, t+a4*dt)

	x5 := s.Add(k1.Scale(b51).Add(k2.Scale(b52)).Add(k3.Scale(b53)).Add(k4.Scale(b54)).Scale(dt))
	k5 := sys.Derive(x5, t+a5*dt)

	x6 := s.Add(k1.Scale(b61).Add(k2.Scale(b62)).Add(k3.Scale(b63)).Add(k4.Scale(b64)).Add(k5.Scale(b65)).Scale(dt))
	k6 := sys.Derive(x6, t+dt)

	next := s.Add(k1.Scale(c1).Add(k3.Scale(c3)).Add(k4.Scale(c4)).Add(k5.Scale(c5)).Add(k6.Scale(c6)).Scale(dt))

	k7 := sys.Derive(next, t+dt)

	errEst := k1.Scale(dc1).Add(k3.Scale(dc3)).Add(k4.Scale(dc4)).Add(k5.Scale(dc5)).Add(k6.Scale(dc6)).Add(k7.Scale(dc7)).Scale(dt)

	return next, errorNorm(s, k1, errEst, dt)
}

// errorNorm scales the raw error estimate per component against the
// state magnitude and the first-stage slope, then takes the worst ratio.
func errorNorm(s, k1, errEst ebm.State, dt float64) float64 {
	scaleA := math.Abs(s.Atmosphere) + math.Abs(dt*k1.Atmosphere) + 1e-10
	scaleO := math.Abs(s.Ocean) + math.Abs(dt*k1.Ocean) + 1e-10
	return math.Max(math.Abs(errEst.Atmosphere)/scaleA, math.Abs(errEst.Ocean)/scaleO)
}
