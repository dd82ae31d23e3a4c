package ebm

import (
	"errors"
	"fmt"
)

// Domain errors for integration runs.
var (
	// ErrStepUnderflow indicates the adaptive step shrank below Config.MinDt
	// before the error estimate could be satisfied.
	ErrStepUnderflow = errors.New("ebm: adaptive step size underflow")

	// ErrInvalidState indicates NaN or Inf entered the state vector.
	ErrInvalidState = errors.New("ebm: invalid state (NaN or Inf detected)")

	// ErrTooManySteps indicates the attempt budget was exhausted.
	ErrTooManySteps = errors.New("ebm: step limit exceeded")
)

// SimError ties a failure to the step count and model time where it occurred.
type SimError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimError) Unwrap() error { return e.Wrapped }
