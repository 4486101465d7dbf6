// Package player drives terminal playback of an integrated ensemble. The
// frame index advances on a timer; the only input accepted is quitting.
package player

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/lorenzq/internal/frame"
	"github.com/san-kum/lorenzq/internal/scene"
)

const (
	width      = 80
	height     = 24
	statsWidth = 34
	// Milliseconds between frames in the reference animation.
	DefaultInterval = 30 * time.Millisecond
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(statsWidth)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

type Options struct {
	Interval time.Duration
	// Frames stops playback after that many frames; zero loops until quit.
	Frames int
}

type Model struct {
	sampler  *frame.Sampler
	scene    *scene.Scene
	colors   []lipgloss.Color
	canvas   *scene.Canvas
	interval time.Duration
	limit    int
	index    int
	shown    int
}

func NewModel(s *frame.Sampler, sc *scene.Scene, opts Options) Model {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	return Model{
		sampler:  s,
		scene:    sc,
		colors:   sc.TermColors(),
		canvas:   scene.NewCanvas(width, height),
		interval: interval,
		limit:    opts.Frames,
	}
}

// Index is the frame shown by the next View.
func (m Model) Index() int { return m.index }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		w := max(msg.Width-statsWidth-8, 10)
		h := max(msg.Height-4, 5)
		m.canvas = scene.NewCanvas(w, h)
	case TickMsg:
		m.shown++
		if m.limit > 0 && m.shown >= m.limit {
			return m, tea.Quit
		}
		// The sampler wraps the reveal; the index keeps counting so the
		// camera keeps turning.
		m.index++
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	f := m.sampler.Frame(m.index)
	m.canvas.Clear()
	m.scene.Draw(m.canvas, f)

	canvasView := canvasStyle.Render(m.canvas.Styled(m.colors))
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.stats(f))
}

func (m Model) stats(f frame.Frame) string {
	ens := m.sampler.Ensemble()
	t := 0.0
	if f.PrefixLen > 0 {
		t = ens.Grid[f.PrefixLen-1]
	}

	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render("LORENZ QUBIT") + "\n")
	s.WriteString(row("frame", fmt.Sprintf("%d/%d", f.Index%m.sampler.Len()+1, m.sampler.Len())))
	s.WriteString(row("time", fmt.Sprintf("%.2f", t)))
	s.WriteString(row("samples", fmt.Sprintf("%d", f.PrefixLen)))
	s.WriteString(row("azimuth", fmt.Sprintf("%.1f°", math.Mod(f.Azimuth, 360))))
	s.WriteString(row("elevation", fmt.Sprintf("%.1f°", f.Elevation)))
	s.WriteString(row("σ β ρ g", fmt.Sprintf("%.3g %.3g %.3g %.3g", ens.Params.Sigma, ens.Params.Beta, ens.Params.Rho, ens.Params.G)))
	s.WriteString(row("paths", fmt.Sprintf("%d", ens.Len())))
	if d := ens.Diverged(); len(d) > 0 {
		s.WriteString(warnStyle.Render(fmt.Sprintf("%d diverged", len(d))) + "\n")
	}
	s.WriteString(helpStyle.Render("q quit"))
	return statsStyle.Render(s.String())
}

// Run plays the animation in the alternate screen until quit.
func Run(s *frame.Sampler, sc *scene.Scene, opts Options) error {
	_, err := tea.NewProgram(NewModel(s, sc, opts), tea.WithAltScreen()).Run()
	return err
}
