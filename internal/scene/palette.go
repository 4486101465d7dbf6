package scene

import (
	"fmt"
	"image/color"
)

// Palette indices shared by every surface.
const (
	ColorBackground = iota
	ColorSphere
	ColorLabel
	ColorTrajectory

	// MaxTrajectoryColors keeps the raster palette within 256 entries.
	MaxTrajectoryColors = 256 - ColorTrajectory
)

// plasma anchors, sampled from the perceptually uniform colormap.
var plasma = []color.RGBA{
	{13, 8, 135, 255},
	{84, 2, 163, 255},
	{139, 10, 165, 255},
	{185, 50, 137, 255},
	{219, 92, 104, 255},
	{244, 136, 73, 255},
	{254, 188, 43, 255},
	{240, 249, 33, 255},
}

// Plasma returns n colors evenly spaced along the plasma colormap.
func Plasma(n int) []color.RGBA {
	colors := make([]color.RGBA, n)
	for i := range colors {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		colors[i] = lerpAnchors(t)
	}
	return colors
}

func lerpAnchors(t float64) color.RGBA {
	pos := t * float64(len(plasma)-1)
	i := int(pos)
	if i >= len(plasma)-1 {
		return plasma[len(plasma)-1]
	}
	f := pos - float64(i)
	a, b := plasma[i], plasma[i+1]
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + f*(float64(y)-float64(x)) + 0.5) }
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}

// TrajectoryColor maps trajectory k to its palette index.
func TrajectoryColor(k int) int {
	return ColorTrajectory + k%MaxTrajectoryColors
}

func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
