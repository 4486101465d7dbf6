package export

import (
	"fmt"
	"html"
	"image/color"
	"io"
	"strings"

	"github.com/san-kum/lorenzq/internal/frame"
	"github.com/san-kum/lorenzq/internal/scene"
)

// svgSurface collects scene drawing calls as SVG elements.
type svgSurface struct {
	width, height int
	palette       color.Palette
	sb            strings.Builder
}

func (s *svgSurface) Size() (int, int) { return s.width, s.height }

func (s *svgSurface) hex(ci int) string {
	if ci < 0 || ci >= len(s.palette) {
		return "#000000"
	}
	r, g, b, _ := s.palette[ci].RGBA()
	return scene.Hex(color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 255})
}

func (s *svgSurface) Line(x0, y0, x1, y1, ci int) {
	width := 1.5
	if ci == scene.ColorSphere {
		width = 0.5
	}
	fmt.Fprintf(&s.sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="%.1f"/>
`, x0, y0, x1, y1, s.hex(ci), width)
}

func (s *svgSurface) Dot(x, y, ci int) {
	fmt.Fprintf(&s.sb, `<circle cx="%d" cy="%d" r="3" fill="%s"/>
`, x, y, s.hex(ci))
}

func (s *svgSurface) Text(x, y int, text string, ci int) {
	fmt.Fprintf(&s.sb, `<text x="%d" y="%d" fill="%s" font-size="20" text-anchor="middle">%s</text>
`, x, y, s.hex(ci), html.EscapeString(text))
}

// EncodeSVG writes a single frame as a standalone SVG document.
func EncodeSVG(w io.Writer, f frame.Frame, sc *scene.Scene, width, height int) error {
	surf := &svgSurface{width: width, height: height, palette: sc.Palette()}
	sc.Draw(surf, f)

	_, err := fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
%s</svg>
`, width, height, width, height, surf.sb.String())
	return err
}

func WriteSVG(path string, f frame.Frame, sc *scene.Scene, width, height int) error {
	return writeFile(path, func(w io.Writer) error {
		return EncodeSVG(w, f, sc, width, height)
	})
}
