package ensemble

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/lorenzq/internal/dynamo"
	"github.com/san-kum/lorenzq/internal/integrators"
)

const (
	DefaultHorizon    = 10.0
	DefaultSamples    = 1000
	DefaultSeed       = 1
	DefaultIntegrator = "rk45"
)

type Options struct {
	Seed       int64
	Horizon    float64
	Samples    int
	Integrator string
	Solver     dynamo.Config
	// Workers bounds how many trajectories integrate at once; values
	// below 2 integrate sequentially.
	Workers int
	Logger  *slog.Logger
}

func DefaultOptions() Options {
	return Options{
		Seed:       DefaultSeed,
		Horizon:    DefaultHorizon,
		Samples:    DefaultSamples,
		Integrator: DefaultIntegrator,
		Solver:     dynamo.DefaultConfig(),
		Workers:    1,
	}
}

func (o Options) Validate() error {
	if !(o.Horizon > 0) || math.IsInf(o.Horizon, 0) {
		return &dynamo.ParameterError{Name: "horizon", Value: o.Horizon}
	}
	if o.Samples < 2 {
		return &dynamo.ParameterError{Name: "samples", Value: o.Samples}
	}
	if _, err := integrators.New(o.Integrator); err != nil {
		return &dynamo.ParameterError{Name: "integrator", Value: o.Integrator}
	}
	return o.Solver.Validate()
}

// Trajectory is one integrated initial condition. States has one entry per
// grid timestamp; only States[:Valid] were produced by the solver.
type Trajectory struct {
	Index   int
	Initial dynamo.State
	States  []dynamo.State
	Valid   int
	Steps   int
	Err     error
}

// Path returns the valid prefix of the trajectory.
func (t Trajectory) Path() []dynamo.State { return t.States[:t.Valid] }

func (t Trajectory) Diverged() bool { return t.Err != nil }

// Ensemble is the immutable result of one run.
type Ensemble struct {
	Params       ParameterSet
	Seed         int64
	Integrator   string
	Grid         TimeGrid
	Trajectories []Trajectory
}

func (e *Ensemble) Len() int { return len(e.Trajectories) }

// Samples returns the number of grid timestamps T.
func (e *Ensemble) Samples() int { return len(e.Grid) }

// Err joins the per-trajectory divergence errors, or returns nil.
func (e *Ensemble) Err() error {
	var errs []error
	for _, tr := range e.Trajectories {
		if tr.Err != nil {
			errs = append(errs, tr.Err)
		}
	}
	return errors.Join(errs...)
}

// Diverged lists the indices of trajectories that failed before the horizon.
func (e *Ensemble) Diverged() []int {
	var idx []int
	for _, tr := range e.Trajectories {
		if tr.Diverged() {
			idx = append(idx, tr.Index)
		}
	}
	return idx
}

// Integrate validates params and opts, samples the initial conditions and
// integrates every trajectory over [0, opts.Horizon].
//
// The error is non-nil only for invalid input (matching
// dynamo.ErrInvalidParameter, reported before any work) or when ctx is
// cancelled. Divergent trajectories are reported through Trajectory.Err.
func Integrate(ctx context.Context, params ParameterSet, opts Options) (*Ensemble, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	grid := Linspace(0, opts.Horizon, opts.Samples)
	x0s := SampleInitialConditions(params.Trajectories, opts.Seed)

	trajectories, err := integrate(ctx, params.System(), x0s, grid, opts)
	if err != nil {
		return nil, err
	}

	return &Ensemble{
		Params:       params,
		Seed:         opts.Seed,
		Integrator:   opts.Integrator,
		Grid:         grid,
		Trajectories: trajectories,
	}, nil
}

// integrate runs each initial condition independently. Cancellation is
// checked before a trajectory starts, never in the middle of one.
func integrate(ctx context.Context, dyn dynamo.System, x0s []dynamo.State, grid TimeGrid, opts Options) ([]Trajectory, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	trajectories := make([]Trajectory, len(x0s))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))

	var cancelled error
	for i, x0 := range x0s {
		i, x0 := i, x0
		if err := gctx.Err(); err != nil {
			cancelled = err
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			integ, err := integrators.New(opts.Integrator)
			if err != nil {
				return err
			}

			sol := integrators.Dense(integ, dyn, x0, grid, opts.Solver)
			tr := Trajectory{
				Index:   i,
				Initial: x0.Clone(),
				States:  sol.States,
				Valid:   sol.Valid,
				Steps:   sol.Steps,
			}
			if sol.Err != nil {
				sol.Err.Trajectory = i
				tr.Err = sol.Err
				logger.Warn("trajectory diverged",
					"trajectory", i,
					"valid", sol.Valid,
					"t", sol.Err.Time,
					"error", sol.Err.Wrapped)
			} else {
				logger.Debug("trajectory integrated", "trajectory", i, "steps", sol.Steps)
			}
			trajectories[i] = tr
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("integrate ensemble: %w", err)
	}
	if cancelled != nil {
		return nil, fmt.Errorf("integrate ensemble: %w", cancelled)
	}
	return trajectories, nil
}
