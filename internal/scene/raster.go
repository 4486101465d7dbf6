package scene

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Raster is a paletted image surface. Color indices passed to its drawing
// methods are palette indices.
type Raster struct {
	Img *image.Paletted
}

func NewRaster(w, h int, p color.Palette) *Raster {
	return &Raster{Img: image.NewPaletted(image.Rect(0, 0, w, h), p)}
}

func (r *Raster) Size() (int, int) {
	b := r.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (r *Raster) Set(x, y, ci int) {
	if image.Pt(x, y).In(r.Img.Rect) {
		r.Img.SetColorIndex(x, y, uint8(ci))
	}
}

func (r *Raster) Dot(x, y, ci int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			if dx*dx+dy*dy <= 5 {
				r.Set(x+dx, y+dy, ci)
			}
		}
	}
}

func (r *Raster) Line(x0, y0, x1, y1, ci int) {
	bresenham(x0, y0, x1, y1, func(x, y int) { r.Set(x, y, ci) })
}

// Text draws s centered on (x, y) with the 7x13 bitmap face.
func (r *Raster) Text(x, y int, s string, ci int) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  r.Img,
		Src:  image.NewUniform(r.Img.Palette[ci]),
		Face: face,
	}
	w := d.MeasureString(s)
	d.Dot = fixed.Point26_6{
		X: fixed.I(x) - w/2,
		Y: fixed.I(y + face.Ascent/2),
	}
	d.DrawString(s)
}
