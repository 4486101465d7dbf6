package analysis

import (
	"strings"

	"github.com/san-kum/lorenzq/internal/dynamo"
)

type Point struct{ X, Y float64 }

// Project picks two coordinates of every sample.
func Project(path []dynamo.State, xIdx, yIdx int) []Point {
	points := make([]Point, 0, len(path))
	for _, s := range path {
		if xIdx >= len(s) || yIdx >= len(s) {
			return nil
		}
		points = append(points, Point{X: s[xIdx], Y: s[yIdx]})
	}
	return points
}

// PoincareSection records where path crosses coord == threshold upwards,
// interpolating linearly between the bracketing samples.
func PoincareSection(path []dynamo.State, crossIdx int, threshold float64, recordX, recordY int) []Point {
	var points []Point
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		if crossIdx >= len(a) || recordX >= len(a) || recordY >= len(a) {
			return nil
		}
		if !(a[crossIdx] < threshold && b[crossIdx] >= threshold) {
			continue
		}
		frac := (threshold - a[crossIdx]) / (b[crossIdx] - a[crossIdx])
		points = append(points, Point{
			X: a[recordX] + frac*(b[recordX]-a[recordX]),
			Y: a[recordY] + frac*(b[recordY]-a[recordY]),
		})
	}
	return points
}

// Scatter plots points as a width x height character grid.
func Scatter(points []Point, width, height int) string {
	if len(points) == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	// Axes first so points draw over them.
	if minX <= 0 && minX+rangeX >= 0 {
		col := int(-minX / rangeX * float64(width-1))
		for row := range canvas {
			canvas[row][col] = '│'
		}
	}
	if minY <= 0 && minY+rangeY >= 0 {
		row := height - 1 - int(-minY/rangeY*float64(height-1))
		for col := range canvas[row] {
			if canvas[row][col] == '│' {
				canvas[row][col] = '┼'
			} else {
				canvas[row][col] = '─'
			}
		}
	}

	for _, p := range points {
		col := int((p.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((p.Y-minY)/rangeY*float64(height-1))
		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
