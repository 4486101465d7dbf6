// Package scene draws animation frames of an ensemble over the reference
// sphere.
//
// A [Scene] holds everything that stays fixed during playback: the sphere
// wireframe, the six labeled poles, the per-trajectory colors and the
// camera framing. [Scene.Draw] renders one [frame.Frame] onto any
// [Surface]; two surfaces are provided:
//
//   - [Canvas]: Unicode braille grid for terminals (2x4 dots per cell)
//   - [Raster]: paletted image, used for GIF export
//
// The camera follows the usual elevation/azimuth convention with z up:
// azimuth 0 looks from +x towards the origin, elevation 90 looks straight down.
package scene
