package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/lorenzq/internal/config"
	"github.com/san-kum/lorenzq/internal/ensemble"
)

var (
	configFile string
	preset     string
	verbose    bool
	// Model parameters
	sigma        float64
	beta         float64
	rho          float64
	g            float64
	trajectories int
	// Integration
	seed       int64
	horizon    float64
	samples    int
	integrator string
	rtol       float64
	atol       float64
	workers    int
	// Animation
	frames    int
	fps       int
	elevation float64
	azimuth   float64
	rotation  float64
	width     int
	height    int
	interval  time.Duration
	// Output
	output     string
	jsonOut    string
	csvOut     string
	frameIndex int
	typeDelay  time.Duration
)

var logger = slog.Default()

func main() {
	rootCmd := &cobra.Command{
		Use:   "lorenzq",
		Short: "lorenz qubit ensemble simulator",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = setupLogger(verbose)
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate the ensemble and print a summary",
		Args:  cobra.NoArgs,
		RunE:  runEnsemble,
	}
	addModelFlags(runCmd)
	runCmd.Flags().StringVar(&jsonOut, "json", "", "write trajectories as JSON")
	runCmd.Flags().StringVar(&csvOut, "csv", "", "write trajectories as CSV")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "animate the ensemble in the terminal",
		Args:  cobra.NoArgs,
		RunE:  playEnsemble,
	}
	addModelFlags(playCmd)
	addAnimationFlags(playCmd)
	playCmd.Flags().DurationVar(&interval, "interval", 30*time.Millisecond, "time between frames")

	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "write an animated gif, a single svg frame, or json/csv data",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportEnsemble,
	}
	addModelFlags(exportCmd)
	addAnimationFlags(exportCmd)
	exportCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "image width")
	exportCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "image height")
	exportCmd.Flags().IntVar(&frameIndex, "frame", 499, "frame index for svg output")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "lyapunov exponent, lobe switches and poincaré section",
		Args:  cobra.NoArgs,
		RunE:  analyzeEnsemble,
	}
	addModelFlags(analyzeCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets [name]",
		Short: "list presets, or print one as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	introCmd := &cobra.Command{
		Use:   "intro",
		Short: "explain the model",
		Args:  cobra.NoArgs,
		RunE:  runIntro,
	}
	introCmd.Flags().DurationVar(&typeDelay, "delay", 20*time.Millisecond, "delay between characters")

	rootCmd.AddCommand(runCmd, playCmd, exportCmd, analyzeCmd, presetsCmd, introCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func setupLogger(debug bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if debug {
		opts.Level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(os.Stderr, opts))
	slog.SetDefault(l)
	return l
}

func addModelFlags(cmd *cobra.Command) {
	defaults := config.DefaultConfig()
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
	f.Float64Var(&sigma, "sigma", defaults.Params.Sigma, "sigma")
	f.Float64Var(&beta, "beta", defaults.Params.Beta, "beta")
	f.Float64Var(&rho, "rho", defaults.Params.Rho, "rho")
	f.Float64Var(&g, "g", defaults.Params.G, "coupling g")
	f.IntVarP(&trajectories, "trajectories", "n", defaults.Params.Trajectories, "number of trajectories")
	f.Int64Var(&seed, "seed", defaults.Seed, "random seed for initial conditions")
	f.Float64Var(&horizon, "time", defaults.Horizon, "integration horizon")
	f.IntVar(&samples, "samples", defaults.Samples, "grid samples per trajectory")
	f.StringVar(&integrator, "integrator", defaults.Integrator, "integrator (euler, rk4, rk45)")
	f.Float64Var(&rtol, "rtol", defaults.Solver.RTol, "relative tolerance")
	f.Float64Var(&atol, "atol", defaults.Solver.ATol, "absolute tolerance")
	f.IntVar(&workers, "workers", defaults.Workers, "trajectories integrated in parallel")
}

func addAnimationFlags(cmd *cobra.Command) {
	defaults := config.DefaultConfig().Animation
	f := cmd.Flags()
	f.IntVar(&frames, "frames", defaults.Frames, "number of frames")
	f.IntVar(&fps, "fps", defaults.FPS, "frame rate")
	f.Float64Var(&elevation, "elevation", defaults.Elevation, "camera elevation in degrees")
	f.Float64Var(&azimuth, "azimuth", defaults.Azimuth, "camera azimuth of frame 0 in degrees")
	f.Float64Var(&rotation, "rotation", defaults.Rotation, "azimuth increment per frame in degrees")
}

// loadConfig layers defaults, preset, config file and changed flags, in
// that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	setFloat := func(name string, dst *float64, v float64) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	setInt := func(name string, dst *int, v int) {
		if flags.Changed(name) {
			*dst = v
		}
	}

	setFloat("sigma", &cfg.Params.Sigma, sigma)
	setFloat("beta", &cfg.Params.Beta, beta)
	setFloat("rho", &cfg.Params.Rho, rho)
	setFloat("g", &cfg.Params.G, g)
	setInt("trajectories", &cfg.Params.Trajectories, trajectories)
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	setFloat("time", &cfg.Horizon, horizon)
	setInt("samples", &cfg.Samples, samples)
	if flags.Changed("integrator") {
		cfg.Integrator = integrator
	}
	setFloat("rtol", &cfg.Solver.RTol, rtol)
	setFloat("atol", &cfg.Solver.ATol, atol)
	setInt("workers", &cfg.Workers, workers)

	setInt("frames", &cfg.Animation.Frames, frames)
	setInt("fps", &cfg.Animation.FPS, fps)
	setFloat("elevation", &cfg.Animation.Elevation, elevation)
	setFloat("azimuth", &cfg.Animation.Azimuth, azimuth)
	setFloat("rotation", &cfg.Animation.Rotation, rotation)
	setInt("width", &cfg.Animation.Width, width)
	setInt("height", &cfg.Animation.Height, height)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func integrate(cmd *cobra.Command, cfg *config.Config) (*ensemble.Ensemble, error) {
	opts := cfg.Options()
	opts.Logger = logger

	start := time.Now()
	ens, err := ensemble.Integrate(cmd.Context(), cfg.Params, opts)
	if err != nil {
		return nil, err
	}
	logger.Info("ensemble integrated",
		"trajectories", ens.Len(),
		"samples", ens.Samples(),
		"integrator", ens.Integrator,
		"diverged", len(ens.Diverged()),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return ens, nil
}
