package integrators

import "github.com/san-kum/climsim/internal/ebm"

// Fehlberg coefficients (RKF45)
var (
	fa2 = 1.0 / 4.0
	fa3 = 3.0 / 8.0
	fa4 = 12.0 / 13.0
	fa6 = 1.0 / 2.0

	fb21 = 1.0 / 4.0
	fb31 = 3.0 / 32.0
	fb32 = 9.0 / 32.0
	fb41 = 1932.0 / 2197.0
	fb42 = -7200.0 / 2197.0
	fb43 = 7296.0 / 2197.0
	fb51 = 439.0 / 216.0
	fb52 = -8.0
	fb53 = 3680.0 / 513.0
	fb54 = -845.0 / 4104.0
	fb61 = -8.0 / 27.0
	fb62 = 2.0
	fb63 = -3544.0 / 2565.0
	fb64 = 1859.0 / 4104.0
	fb65 = -11.0 / 40.0

	fc1 = 16.0 / 135.0
	fc3 = 6656.0 / 12825.0
	fc4 = 28561.0 / 56430.0
	fc5 = -9.0 / 50.0
	fc6 = 2.0 / 55.0

	fe1 = 1.0 / 360.0
	fe3 = -128.0 / 4275.0
	fe4 = -2197.0 / 75240.0
	fe5 = 1.0 / 50.0
	fe6 = 2.0 / 55.0
)

// Fehlberg is the classic RKF45 pair. One fewer stage per attempt than
// Dormand-Prince, at the cost of a slightly weaker error estimate.
type Fehlberg struct{}

func NewFehlberg() *Fehlberg {
	return &Fehlberg{}
}

func (f *Fehlberg) Info() ebm.Info {
	return ebm.Info{Name: "rkf45", Order: 5, Stages: 6}
}

func (f *Fehlberg) Step(sys ebm.System, s ebm.State, t, dt float64) ebm.State {
	next, _ := f.AttemptStep(sys, s, t, dt)
	return next
}

func (f *Fehlberg) AttemptStep(sys ebm.System, s ebm.State, t, dt float64) (ebm.State, float64) {
	k1 := sys.Derive(s, t)

	x2 := s.Add(k1.Scale(dt * fb21))
	k2 := sys.Derive(x2, t+fa2*dt)

	x3 := s.Add(k1.Scale(fb31).Add(k2.Scale(fb32)).Scale(dt))
	k3 := sys.Derive(x3, t+fa3*dt)

	x4 := s.Add(k1.Scale(fb41).Add(k2.Scale(fb42)).Add(k3.Scale(fb43)).Scale(dt))
	k4 := sys.Derive(x4, t+fa4*dt)

	x5 := s.Add(k1.Scale(fb51).Add(k2.Scale(fb52)).Add(k3.Scale(fb53)).Add(k4.Scale(fb54)).Scale(dt))
	k5 := sys.Derive(x5, t+dt)

	x6 := s.Add(k1.Scale(fb61).Add(k2.Scale(fb62)).Add(k3.Scale(fb63)).Add(k4.Scale(fb64)).Add(k5.Scale(fb65)).Scale(dt))
	k6 := sys.Derive(x6, t+fa6*dt)

	next := s.Add(k1.Scale(fc1).Add(k3.Scale(fc3)).Add(k4.Scale(fc4)).Add(k5.Scale(fc5)).Add(k6.Scale(fc6)).Scale(dt))

	errEst := k1.Scale(fe1).Add(k3.Scale(fe3)).Add(k4.Scale(fe4)).Add(k5.Scale(fe5)).Add(k6.Scale(fe6)).Scale(dt)

	return next, errorNorm(s, k1, errEst, dt)
}
