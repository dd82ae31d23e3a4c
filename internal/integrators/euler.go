package integrators

import "github.com/san-kum/climsim/internal/ebm"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Info() ebm.Info {
	return ebm.Info{Name: "euler", Order: 1, Stages: 1}
}

func (e *Euler) Step(sys ebm.System, s ebm.State, t, dt float64) ebm.State {
	return s.Add(sys.Derive(s, t).Scale(dt))
}
