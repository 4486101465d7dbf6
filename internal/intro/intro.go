// Package intro walks a reader through the model before a run.
package intro

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var Explanations = []string{
	"Welcome to the Lorenz butterfly qubit!",
	"Classical nonlinear systems show rich dynamics: bifurcations, strange attractors and more. This demo extends the Lorenz model towards the quantum regime by placing its attractor inside a Bloch sphere.",
	"The model is Lorenz's 1963 system with a coupling g on the nonlinear terms:",
	"dx/dt = σ(y − x),  dy/dt = ρx − y − gxz,  dz/dt = gxy − βz",
	"Sigma (σ) controls how fast the variables relax towards each other.",
	"Beta (β) sets the damping of z and so the shape of the flow.",
	"Rho (ρ) sets the size of the butterfly.",
	"g rescales the attractor. Tune it to fit the butterfly inside the Bloch sphere.",
	"Each trajectory starts from a random point. They settle onto one of two disc-shaped lobes and jump between them unpredictably, like the reversals of a Malkus waterwheel.",
	"Run again with other parameters to find a good fit.",
}

// equationIndex marks the message rendered as an equation.
const equationIndex = 3

var (
	textStyle     = lipgloss.NewStyle().Bold(true).Width(76)
	equationStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")).Width(76)
)

// Sequencer hands out messages in order, one per call.
type Sequencer struct {
	messages []string
	index    int
}

func NewSequencer(messages []string) *Sequencer {
	return &Sequencer{messages: messages}
}

// Next returns the next message, or false once all have been shown.
func (s *Sequencer) Next() (string, bool) {
	if s.index >= len(s.messages) {
		return "", false
	}
	msg := s.messages[s.index]
	s.index++
	return msg, true
}

// Index is the position of the message Next returns next.
func (s *Sequencer) Index() int { return s.index }

func (s *Sequencer) Done() bool { return s.index >= len(s.messages) }

// Style returns the style for message i of Explanations.
func Style(i int) lipgloss.Style {
	if i == equationIndex {
		return equationStyle
	}
	return textStyle
}

// Type writes text one rune at a time, pausing delay between runes.
func Type(ctx context.Context, w io.Writer, text string, delay time.Duration) error {
	if delay <= 0 {
		_, err := io.WriteString(w, text)
		return err
	}

	ticker := time.NewTicker(delay)
	defer ticker.Stop()
	for _, r := range text {
		if _, err := io.WriteString(w, string(r)); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
