package integrators

import "github.com/san-kum/climsim/internal/ebm"

type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Info() ebm.Info {
	return ebm.Info{Name: "rk4", Order: 4, Stages: 4}
}

func (r *RK4) Step(sys ebm.System, s ebm.State, t, dt float64) ebm.State {
	k1 := sys.Derive(s, t)
	k2 := sys.Derive(s.Add(k1.Scale(dt*0.5)), t+dt*0.5)
	k3 := sys.Derive(s.Add(k2.Scale(dt*0.5)), t+dt*0.5)
	k4 := sys.Derive(s.Add(k3.Scale(dt)), t+dt)

	incr := k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4)
	return s.Add(incr.Scale(dt / 6.0))
}
