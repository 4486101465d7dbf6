package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidParameter indicates a non-finite coefficient or a non-positive count.
	ErrInvalidParameter = errors.New("dynamo: invalid parameter")

	// ErrDivergence indicates a trajectory stopped producing finite states.
	ErrDivergence = errors.New("dynamo: trajectory diverged")

	// ErrInvalidState indicates a state vector with NaN or Inf components.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrStepTooSmall indicates adaptive timestep became too small.
	ErrStepTooSmall = errors.New("dynamo: adaptive timestep below minimum")

	// ErrStepRejected indicates the error estimate exceeded the tolerance.
	ErrStepRejected = errors.New("dynamo: step rejected by error control")

	// ErrTooManySteps indicates the solver exhausted its step budget.
	ErrTooManySteps = errors.New("dynamo: step budget exhausted")

	// ErrDimensionMismatch indicates mismatched state/system dimensions.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between state and system")

	// ErrExport indicates an artifact could not be written.
	ErrExport = errors.New("dynamo: export failed")
)

// ParameterError names the parameter that failed validation.
type ParameterError struct {
	Name  string
	Value any
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s = %v", ErrInvalidParameter, e.Name, e.Value)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// DivergenceError wraps a solver failure with trajectory context.
type DivergenceError struct {
	Trajectory int
	Step       int
	Time       float64
	State      State
	Wrapped    error
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("trajectory %d: diverged at step %d (t=%.4f): %v", e.Trajectory, e.Step, e.Time, e.Wrapped)
}

func (e *DivergenceError) Unwrap() []error {
	if e.Wrapped == nil {
		return []error{ErrDivergence}
	}
	return []error{ErrDivergence, e.Wrapped}
}
