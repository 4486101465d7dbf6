package integrators

import (
	"errors"
	"math"

	"github.com/san-kum/lorenzq/internal/dynamo"
)

// Solution holds one trajectory sampled on a fixed time grid.
//
// States always has one entry per grid timestamp. When the solve fails,
// Valid counts the leading samples the solver actually produced and the
// remaining entries repeat the last valid state.
type Solution struct {
	States []dynamo.State
	Valid  int
	Steps  int
	Err    *dynamo.DivergenceError
}

// Dense integrates dyn from x0 and samples the state at every timestamp in
// grid. The internal step never crosses a grid timestamp, so samples are
// taken exactly where requested. Adaptive integrators use their error
// control between timestamps; fixed-step integrators use sub-steps of at
// most cfg.Dt.
//
// grid must be strictly increasing and grid[0] is the time of x0. cfg is
// assumed valid (see dynamo.Config.Validate).
func Dense(integ dynamo.Integrator, dyn dynamo.System, x0 dynamo.State, grid []float64, cfg dynamo.Config) Solution {
	sol := Solution{States: make([]dynamo.State, len(grid))}
	if len(grid) == 0 {
		return sol
	}

	x := x0.Clone()
	switch {
	case len(x) != dyn.StateDim():
		sol.Err = &dynamo.DivergenceError{Time: grid[0], State: x, Wrapped: dynamo.ErrDimensionMismatch}
	case !x.IsValid():
		sol.Err = &dynamo.DivergenceError{Time: grid[0], State: x, Wrapped: dynamo.ErrInvalidState}
	}
	if sol.Err != nil {
		fill(sol.States, 0, x)
		return sol
	}

	s := &denseSolver{integ: integ, dyn: dyn, cfg: cfg, dt: cfg.Dt}
	adaptive, isAdaptive := integ.(dynamo.AdaptiveIntegrator)

	sol.States[0] = x
	sol.Valid = 1
	t := grid[0]

	for k := 1; k < len(grid); k++ {
		var err error
		if isAdaptive {
			x, err = s.advanceAdaptive(adaptive, x, t, grid[k])
		} else {
			x, err = s.advanceFixed(x, t, grid[k])
		}
		if err != nil {
			sol.Err = &dynamo.DivergenceError{Step: k, Time: s.t, State: x, Wrapped: err}
			break
		}
		t = grid[k]
		sol.States[k] = x
		sol.Valid = k + 1
	}

	sol.Steps = s.steps
	fill(sol.States, sol.Valid, sol.States[max(sol.Valid-1, 0)])
	return sol
}

func fill(states []dynamo.State, from int, x dynamo.State) {
	for k := from; k < len(states); k++ {
		states[k] = x
	}
}

type denseSolver struct {
	integ dynamo.Integrator
	dyn   dynamo.System
	cfg   dynamo.Config
	dt    float64
	t     float64
	steps int
}

// advanceAdaptive returns the last accepted state on failure.
func (s *denseSolver) advanceAdaptive(a dynamo.AdaptiveIntegrator, x dynamo.State, t, target float64) (dynamo.State, error) {
	s.t = t
	for s.t < target {
		if s.steps >= s.cfg.MaxSteps {
			return x, dynamo.ErrTooManySteps
		}
		if s.dt < s.cfg.MinDt {
			return x, dynamo.ErrStepTooSmall
		}

		h := math.Min(s.dt, s.cfg.MaxDt)
		last := false
		if s.t+h >= target {
			h = target - s.t
			last = true
		}

		xNew, dtNext, err := a.StepAdaptive(s.dyn, x, s.t, h, s.cfg.Tolerance)
		s.steps++
		if errors.Is(err, dynamo.ErrStepRejected) {
			s.dt = dtNext
			continue
		}
		if err != nil {
			return x, err
		}

		x = xNew
		if last {
			s.t = target
			// A clamped step says little about the natural step size.
			s.dt = math.Max(s.dt, dtNext)
		} else {
			s.t += h
			s.dt = dtNext
		}
	}
	return x, nil
}

func (s *denseSolver) advanceFixed(x dynamo.State, t, target float64) (dynamo.State, error) {
	s.t = t
	n := int(math.Ceil((target-t)/s.cfg.Dt - 1e-9))
	if n < 1 {
		n = 1
	}
	h := (target - t) / float64(n)

	for i := 0; i < n; i++ {
		if s.steps >= s.cfg.MaxSteps {
			return x, dynamo.ErrTooManySteps
		}
		xNew := s.integ.Step(s.dyn, x, s.t, h)
		s.steps++
		if !xNew.IsValid() {
			return x, dynamo.ErrInvalidState
		}
		x = xNew
		s.t = t + float64(i+1)*h
	}
	s.t = target
	return x, nil
}
