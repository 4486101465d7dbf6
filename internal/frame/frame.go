// Package frame maps animation frame indices onto an integrated ensemble.
//
// A [Sampler] is a pure projection: Frame(i) depends only on i, the
// sampler options and the (immutable) ensemble, so frames may be requested
// in any order, repeatedly, or from several goroutines.
package frame

import (
	"github.com/san-kum/lorenzq/internal/dynamo"
	"github.com/san-kum/lorenzq/internal/ensemble"
)

const (
	DefaultRevealStep   = 2
	DefaultElevation    = 30.0
	DefaultAzimuth      = 0.0
	DefaultRotationRate = 0.3
)

type Options struct {
	// RevealStep is the number of grid samples revealed per frame.
	RevealStep int
	// Elevation and Azimuth are the camera angles of frame 0, in degrees.
	Elevation float64
	Azimuth   float64
	// RotationRate is the azimuth increment per frame, in degrees.
	RotationRate float64
}

func DefaultOptions() Options {
	return Options{
		RevealStep:   DefaultRevealStep,
		Elevation:    DefaultElevation,
		Azimuth:      DefaultAzimuth,
		RotationRate: DefaultRotationRate,
	}
}

// Frame is everything a renderer needs for one tick. Paths and Current are
// ordered like the ensemble's trajectories. Paths alias the ensemble's
// storage and must not be modified. Current[k] is nil when Paths[k] is empty.
type Frame struct {
	Index     int
	PrefixLen int
	Elevation float64
	Azimuth   float64
	Paths     [][]dynamo.State
	Current   []dynamo.State
}

type Sampler struct {
	ens  *ensemble.Ensemble
	opts Options
}

func New(ens *ensemble.Ensemble, opts Options) *Sampler {
	if opts.RevealStep < 1 {
		opts.RevealStep = DefaultRevealStep
	}
	return &Sampler{ens: ens, opts: opts}
}

func (s *Sampler) Ensemble() *ensemble.Ensemble { return s.ens }

// Len is the number of frames in one reveal cycle.
func (s *Sampler) Len() int {
	t := s.ens.Samples()
	return (t + s.opts.RevealStep - 1) / s.opts.RevealStep
}

func (s *Sampler) PrefixLen(i int) int {
	return PrefixLen(i, s.opts.RevealStep, s.ens.Samples())
}

func (s *Sampler) Azimuth(i int) float64 {
	return s.opts.Azimuth + s.opts.RotationRate*float64(i)
}

func (s *Sampler) Frame(i int) Frame {
	n := s.PrefixLen(i)
	f := Frame{
		Index:     i,
		PrefixLen: n,
		Elevation: s.opts.Elevation,
		Azimuth:   s.Azimuth(i),
		Paths:     make([][]dynamo.State, s.ens.Len()),
		Current:   make([]dynamo.State, s.ens.Len()),
	}

	for k, tr := range s.ens.Trajectories {
		// Divergent trajectories stop at their last valid sample.
		m := min(n, tr.Valid)
		f.Paths[k] = tr.States[:m:m]
		if m > 0 {
			f.Current[k] = tr.States[m-1]
		}
	}
	return f
}

// PrefixLen returns (step*i) mod samples, normalised to [0, samples).
func PrefixLen(i, step, samples int) int {
	if samples <= 0 {
		return 0
	}
	// Reducing i first keeps step*i from overflowing.
	p := ((i % samples) * step) % samples
	if p < 0 {
		p += samples
	}
	return p
}
