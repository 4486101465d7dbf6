package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/lorenzq/internal/dynamo"
	"github.com/san-kum/lorenzq/internal/ensemble"
	"github.com/san-kum/lorenzq/internal/export"
	"github.com/san-kum/lorenzq/internal/frame"
)

const (
	DefaultFrames = 500
	DefaultWidth  = 600
	DefaultHeight = 600
	DefaultOutput = "lorenzq.gif"
)

type Config struct {
	Params     ensemble.ParameterSet `yaml:"params"`
	Seed       int64                 `yaml:"seed"`
	Horizon    float64               `yaml:"horizon"`
	Samples    int                   `yaml:"samples"`
	Integrator string                `yaml:"integrator"`
	Solver     SolverConfig          `yaml:"solver"`
	Workers    int                   `yaml:"workers"`
	Animation  AnimationConfig       `yaml:"animation"`
	Output     string                `yaml:"output"`
}

type SolverConfig struct {
	RTol     float64 `yaml:"rtol"`
	ATol     float64 `yaml:"atol"`
	MaxDt    float64 `yaml:"max_dt"`
	MaxSteps int     `yaml:"max_steps"`
}

type AnimationConfig struct {
	Frames     int     `yaml:"frames"`
	FPS        int     `yaml:"fps"`
	RevealStep int     `yaml:"reveal_step"`
	Elevation  float64 `yaml:"elevation"`
	Azimuth    float64 `yaml:"azimuth"`
	Rotation   float64 `yaml:"rotation"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
}

func DefaultConfig() *Config {
	solver := dynamo.DefaultConfig()
	return &Config{
		Params:     ensemble.DefaultParameterSet(),
		Seed:       ensemble.DefaultSeed,
		Horizon:    ensemble.DefaultHorizon,
		Samples:    ensemble.DefaultSamples,
		Integrator: ensemble.DefaultIntegrator,
		Solver: SolverConfig{
			RTol:     solver.Tolerance.Rel,
			ATol:     solver.Tolerance.Abs,
			MaxDt:    solver.MaxDt,
			MaxSteps: solver.MaxSteps,
		},
		Workers: 1,
		Animation: AnimationConfig{
			Frames:     DefaultFrames,
			FPS:        export.DefaultFPS,
			RevealStep: frame.DefaultRevealStep,
			Elevation:  frame.DefaultElevation,
			Azimuth:    frame.DefaultAzimuth,
			Rotation:   frame.DefaultRotationRate,
			Width:      DefaultWidth,
			Height:     DefaultHeight,
		},
		Output: DefaultOutput,
	}
}

// Load reads a YAML file over the defaults, so partial files are valid.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Options() ensemble.Options {
	opts := ensemble.DefaultOptions()
	opts.Seed = c.Seed
	opts.Horizon = c.Horizon
	opts.Samples = c.Samples
	opts.Integrator = c.Integrator
	opts.Solver.Tolerance = dynamo.Tolerance{Rel: c.Solver.RTol, Abs: c.Solver.ATol}
	opts.Solver.MaxDt = c.Solver.MaxDt
	opts.Solver.MaxSteps = c.Solver.MaxSteps
	opts.Workers = c.Workers
	return opts
}

func (c *Config) FrameOptions() frame.Options {
	return frame.Options{
		RevealStep:   c.Animation.RevealStep,
		Elevation:    c.Animation.Elevation,
		Azimuth:      c.Animation.Azimuth,
		RotationRate: c.Animation.Rotation,
	}
}

func (c *Config) GIFOptions() export.GIFOptions {
	return export.GIFOptions{
		Frames: c.Animation.Frames,
		FPS:    c.Animation.FPS,
		Width:  c.Animation.Width,
		Height: c.Animation.Height,
	}
}

// Validate checks the parameter set first, then the solver settings.
func (c *Config) Validate() error {
	if err := c.Params.Validate(); err != nil {
		return err
	}
	return c.Options().Validate()
}
