package dynamo

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

type Integrator interface {
	Step(dyn System, x State, t float64, dt float64) State
}

// AdaptiveIntegrator advances one trial step and proposes the next step
// size. A step whose error estimate exceeds the tolerance returns
// ErrStepRejected together with a smaller proposal.
type AdaptiveIntegrator interface {
	Integrator
	StepAdaptive(dyn System, x State, t, dt float64, tol Tolerance) (State, float64, error)
}

type Configurable interface {
	GetParams() map[string]float64
}

// Tolerance is a mixed error bound: atol + rtol*|x|.
type Tolerance struct {
	Rel float64
	Abs float64
}

type Config struct {
	Dt        float64
	Tolerance Tolerance
	MaxDt     float64
	MinDt     float64
	MaxSteps  int
}

func DefaultConfig() Config {
	return Config{
		Dt:        1e-3,
		Tolerance: Tolerance{Rel: 1e-6, Abs: 1e-9},
		MaxDt:     0.1,
		MinDt:     1e-12,
		MaxSteps:  1_000_000,
	}
}

// Validate reports the first setting that cannot drive a solve.
func (c Config) Validate() error {
	switch {
	case !(c.Dt > 0) || math.IsInf(c.Dt, 0):
		return &ParameterError{Name: "dt", Value: c.Dt}
	case !(c.Tolerance.Rel > 0) || math.IsInf(c.Tolerance.Rel, 0):
		return &ParameterError{Name: "rtol", Value: c.Tolerance.Rel}
	case !(c.Tolerance.Abs > 0) || math.IsInf(c.Tolerance.Abs, 0):
		return &ParameterError{Name: "atol", Value: c.Tolerance.Abs}
	case !(c.MinDt > 0) || !(c.MaxDt > c.MinDt) || math.IsInf(c.MaxDt, 0):
		return &ParameterError{Name: "max_dt", Value: c.MaxDt}
	case c.MaxSteps <= 0:
		return &ParameterError{Name: "max_steps", Value: c.MaxSteps}
	}
	return nil
}
