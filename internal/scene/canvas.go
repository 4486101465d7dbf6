package scene

import (
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a braille surface. Its size in dots is (Width*2) x (Height*4).
// Each cell remembers the color of the last dot drawn into it, and text
// written with Text overlays the dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]int
	Overlay       [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:   w,
		Height:  h,
		Grid:    make([][]rune, h),
		Colors:  make([][]int, h),
		Overlay: make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]int, w)
		c.Overlay[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Size() (int, int) { return c.Width * 2, c.Height * 4 }

// Set sets the dot at (x, y) in dot coordinates.
func (c *Canvas) Set(x, y, color int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.Colors[row][col] = color
}

// Dot marks a point a little larger than a single dot.
func (c *Canvas) Dot(x, y, color int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			c.Set(x+dx, y+dy, color)
		}
	}
}

func (c *Canvas) Line(x0, y0, x1, y1, color int) {
	bresenham(x0, y0, x1, y1, func(x, y int) { c.Set(x, y, color) })
}

// Text writes s starting at the cell containing dot (x, y), centered
// horizontally on it.
func (c *Canvas) Text(x, y int, s string, _ int) {
	runes := []rune(s)
	row := y / 4
	col := x/2 - len(runes)/2
	if y < 0 || row >= c.Height {
		return
	}
	for i, r := range runes {
		if cc := col + i; cc >= 0 && cc < c.Width {
			c.Overlay[row][cc] = r
		}
	}
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = 0
			c.Overlay[i][j] = 0
		}
	}
}

// Cell returns the rune shown at a cell and whether it is overlay text.
func (c *Canvas) Cell(row, col int) (rune, bool) {
	if r := c.Overlay[row][col]; r != 0 {
		return r, true
	}
	return c.Grid[row][col], false
}

func (c *Canvas) String() string {
	var b strings.Builder
	for row := range c.Grid {
		for col := range c.Grid[row] {
			r, _ := c.Cell(row, col)
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// bresenham visits every point on the segment from (x0, y0) to (x1, y1).
func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
