package scene

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styled renders the canvas with a foreground color per palette index.
// Overlay text uses the ColorLabel entry in bold.
func (c *Canvas) Styled(colors []lipgloss.Color) string {
	styles := make(map[int]lipgloss.Style)
	styleFor := func(ci int) lipgloss.Style {
		if st, ok := styles[ci]; ok {
			return st
		}
		st := lipgloss.NewStyle()
		if ci >= 0 && ci < len(colors) && colors[ci] != "" {
			st = st.Foreground(colors[ci])
		}
		if ci == ColorLabel {
			st = st.Bold(true)
		}
		styles[ci] = st
		return st
	}

	var b strings.Builder
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			r, text := c.Cell(row, col)
			switch {
			case text:
				b.WriteString(styleFor(ColorLabel).Render(string(r)))
			case r == blank:
				b.WriteRune(r)
			default:
				b.WriteString(styleFor(c.Colors[row][col]).Render(string(r)))
			}
		}
		if row < c.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
