package export

import (
	"fmt"
	"image"
	"image/gif"
	"io"
	"math"

	"github.com/san-kum/lorenzq/internal/dynamo"
	"github.com/san-kum/lorenzq/internal/frame"
	"github.com/san-kum/lorenzq/internal/scene"
)

const (
	DefaultFPS       = 30
	DefaultGIFWidth  = 600
	DefaultGIFHeight = 600
)

type GIFOptions struct {
	// Frames is the number of frames starting at index 0; zero means
	// one full reveal cycle.
	Frames int
	FPS    int
	Width  int
	Height int
}

func DefaultGIFOptions() GIFOptions {
	return GIFOptions{FPS: DefaultFPS, Width: DefaultGIFWidth, Height: DefaultGIFHeight}
}

// DelayFor converts a frame rate to a GIF delay in hundredths of a second.
func DelayFor(fps int) int {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return max(int(math.Round(100/float64(fps))), 1)
}

// EncodeGIF renders frames 0..Frames-1 and writes them as a looping GIF.
// Frames render in parallel; encoding is sequential.
func EncodeGIF(w io.Writer, s *frame.Sampler, sc *scene.Scene, opts GIFOptions) error {
	n := opts.Frames
	if n <= 0 {
		n = s.Len()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("invalid gif size %dx%d", opts.Width, opts.Height)
	}

	// The bitmap font has no ket glyphs.
	ascii := *sc
	ascii.ASCIILabels = true
	palette := ascii.Palette()

	images := make([]*image.Paletted, n)
	dynamo.ParallelFor(n, 8, func(start, end int) {
		for i := start; i < end; i++ {
			r := scene.NewRaster(opts.Width, opts.Height, palette)
			ascii.Draw(r, s.Frame(i))
			images[i] = r.Img
		}
	})

	delays := make([]int, n)
	delay := DelayFor(opts.FPS)
	for i := range delays {
		delays[i] = delay
	}

	return gif.EncodeAll(w, &gif.GIF{Image: images, Delay: delays, LoopCount: 0})
}

func WriteGIF(path string, s *frame.Sampler, sc *scene.Scene, opts GIFOptions) error {
	return writeFile(path, func(w io.Writer) error {
		return EncodeGIF(w, s, sc, opts)
	})
}
