package integrators

import (
	"fmt"
	"sort"

	"github.com/san-kum/climsim/internal/ebm"
)

var factories = map[string]func() ebm.Stepper{
	"euler": func() ebm.Stepper { return NewEuler() },
	"rk4":   func() ebm.Stepper { return NewRK4() },
	"rk45":  func() ebm.Stepper { return NewRK45() },
	"rkf45": func() ebm.Stepper { return NewFehlberg() },
}

// New returns a fresh stepper by name.
func New(name string) (ebm.Stepper, error) {
	fn, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s (available: %v)", name, Names())
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
