package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/lorenzq/internal/analysis"
	"github.com/san-kum/lorenzq/internal/config"
	"github.com/san-kum/lorenzq/internal/dynamo"
	"github.com/san-kum/lorenzq/internal/ensemble"
	"github.com/san-kum/lorenzq/internal/export"
	"github.com/san-kum/lorenzq/internal/frame"
	"github.com/san-kum/lorenzq/internal/integrators"
	"github.com/san-kum/lorenzq/internal/intro"
	"github.com/san-kum/lorenzq/internal/player"
	"github.com/san-kum/lorenzq/internal/scene"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func runEnsemble(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ens, err := integrate(cmd, cfg)
	if err != nil {
		return err
	}

	p := ens.Params
	fmt.Println(titleStyle.Render("lorenz qubit ensemble"))
	fmt.Println(mutedStyle.Render(fmt.Sprintf("σ=%g β=%.4g ρ=%g g=%g  seed=%d  %s  t∈[0, %g] × %d",
		p.Sigma, p.Beta, p.Rho, p.G, ens.Seed, ens.Integrator, ens.Grid.Horizon(), ens.Samples())))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TRAJ\tX0\tY0\tZ0\tVALID\tSTEPS\tSTATUS")
	for _, tr := range ens.Trajectories {
		status := "ok"
		var div *dynamo.DivergenceError
		if errors.As(tr.Err, &div) {
			status = fmt.Sprintf("diverged at t=%.4f: %v", div.Time, div.Wrapped)
		} else if tr.Err != nil {
			status = tr.Err.Error()
		}
		fmt.Fprintf(w, "%d\t%.3f\t%.3f\t%.3f\t%d\t%s\t%s\n",
			tr.Index, tr.Initial[0], tr.Initial[1], tr.Initial[2], tr.Valid, humanize.Comma(int64(tr.Steps)), status)
	}
	w.Flush()
	fmt.Println()

	if first := ens.Trajectories[0].Path(); len(first) > 1 {
		for i, name := range []string{"x", "y", "z"} {
			data := make([]float64, len(first))
			for j, s := range first {
				data[j] = s[i]
			}
			graph := asciigraph.Plot(data,
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption(name+"(t), trajectory 0"),
			)
			fmt.Println(graph)
			fmt.Println()
		}
	}

	if n := len(ens.Diverged()); n > 0 {
		fmt.Println(warnStyle.Render(fmt.Sprintf("%d of %d trajectories diverged", n, ens.Len())))
	}

	for _, path := range []string{jsonOut, csvOut} {
		if path == "" {
			continue
		}
		if err := export.WriteData(path, ens); err != nil {
			return err
		}
		reportWrite(path)
	}
	return nil
}

func playEnsemble(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ens, err := integrate(cmd, cfg)
	if err != nil {
		return err
	}

	opts := player.Options{Interval: interval}
	// Loop until quit unless a frame count was asked for.
	if cmd.Flags().Changed("frames") {
		opts.Frames = cfg.Animation.Frames
	}
	return player.Run(frame.New(ens, cfg.FrameOptions()), scene.New(ens.Len()), opts)
}

func exportEnsemble(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path := cfg.Output
	if len(args) > 0 {
		path = args[0]
	}

	ens, err := integrate(cmd, cfg)
	if err != nil {
		return err
	}
	sampler := frame.New(ens, cfg.FrameOptions())
	sc := scene.New(ens.Len())

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gif":
		opts := cfg.GIFOptions()
		logger.Info("rendering gif", "frames", opts.Frames, "fps", opts.FPS, "size", fmt.Sprintf("%dx%d", opts.Width, opts.Height))
		err = export.WriteGIF(path, sampler, sc, opts)
	case ".svg":
		err = export.WriteSVG(path, sampler.Frame(frameIndex), sc, cfg.Animation.Width, cfg.Animation.Height)
	default:
		err = export.WriteData(path, ens)
	}
	if err != nil {
		return err
	}
	reportWrite(path)
	return nil
}

func reportWrite(path string) {
	info, err := os.Stat(path)
	if err != nil {
		fmt.Printf("wrote %s\n", path)
		return
	}
	fmt.Printf("wrote %s (%s)\n", path, humanize.Bytes(uint64(info.Size())))
}

func analyzeEnsemble(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ens, err := integrate(cmd, cfg)
	if err != nil {
		return err
	}

	dyn := cfg.Params.System()
	fmt.Println(mutedStyle.Render(analysis.Parameters(dyn)))
	fmt.Println()

	fmt.Println(titleStyle.Render("trajectory statistics"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TRAJ\tVALID\tSWITCHES\tX>0\tMAX |x|\tFREQ")
	for _, s := range analysis.Summarize(ens) {
		fmt.Fprintf(w, "%d\t%d\t%d\t%.0f%%\t%.2f\t%.3f\n",
			s.Index, s.Valid, s.Switches, 100*s.Residence, s.MaxNorm, s.Frequency)
	}
	w.Flush()
	fmt.Println()

	tr := ens.Trajectories[0]
	lambda := analysis.LyapunovExponent(dyn, integrators.NewRK4(), tr.Initial, 0.01, ens.Grid.Horizon(), 1e-8)
	fmt.Printf("largest lyapunov exponent (trajectory 0): %.4f\n", lambda)
	if lambda > 0 {
		fmt.Println(mutedStyle.Render("positive: nearby trajectories separate exponentially"))
	}
	fmt.Println()

	// Section through the non-trivial fixed points.
	if p := cfg.Params; p.G != 0 && p.Rho > 1 {
		level := (p.Rho - 1) / p.G
		section := analysis.PoincareSection(tr.Path(), 2, level, 0, 1)
		fmt.Println(titleStyle.Render(fmt.Sprintf("poincaré section z = %.2f (x, y), %d crossings", level, len(section))))
		if plot := analysis.Scatter(section, 60, 20); plot != "" {
			fmt.Print(plot)
		}
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		cfg := config.GetPreset(args[0])
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range config.ListPresets() {
		fmt.Fprintf(w, "%s\t%s\n", name, config.Presets[name].Description)
	}
	return w.Flush()
}

func runIntro(cmd *cobra.Command, args []string) error {
	seq := intro.NewSequencer(intro.Explanations)
	for !seq.Done() {
		i := seq.Index()
		msg, _ := seq.Next()
		if err := intro.Type(cmd.Context(), os.Stdout, intro.Style(i).Render(msg)+"\n\n", typeDelay); err != nil {
			return err
		}
	}

	d := ensemble.DefaultParameterSet()
	fmt.Println(mutedStyle.Render(fmt.Sprintf("try: lorenzq play --sigma %g --beta %.4g --rho %g --g %g -n 5",
		d.Sigma, d.Beta, d.Rho, d.G)))
	return nil
}
