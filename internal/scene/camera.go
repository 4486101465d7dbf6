package scene

import "math"

type Vec3 struct {
	X, Y, Z float64
}

// Vec3 methods.
func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Vec3From converts a state vector; missing components are zero.
func Vec3From(s []float64) Vec3 {
	var v Vec3
	if len(s) > 0 {
		v.X = s[0]
	}
	if len(s) > 1 {
		v.Y = s[1]
	}
	if len(s) > 2 {
		v.Z = s[2]
	}
	return v
}

// Camera projects world coordinates onto a 2D surface.
type Camera struct {
	// Elevation and Azimuth are in degrees.
	Elevation, Azimuth float64
	// Target is the world point drawn at the surface center.
	Target Vec3
	// Extent is the world distance from Target to the nearest surface edge.
	Extent float64
	// Distance from Target to the eye; zero means orthographic.
	Distance float64
}

// View returns p in camera coordinates: X to the right, Y up, Z towards
// the eye.
func (c Camera) View(p Vec3) Vec3 {
	az := c.Azimuth * math.Pi / 180
	el := c.Elevation * math.Pi / 180
	sa, ca := math.Sincos(az)
	se, ce := math.Sincos(el)

	d := p.Sub(c.Target)
	toward := d.X*ca + d.Y*sa
	right := -d.X*sa + d.Y*ca

	return Vec3{
		X: right,
		Y: -toward*se + d.Z*ce,
		Z: toward*ce + d.Z*se,
	}
}

// Project converts world coordinates to surface coordinates of a w x h
// surface. Returns x, y, depth, and whether the point is in front of the
// eye and on the surface.
func (c Camera) Project(p Vec3, w, h int) (int, int, float64, bool) {
	v := c.View(p)
	scale := 1.0
	if c.Distance > 0 {
		if v.Z >= c.Distance {
			return 0, 0, v.Z, false
		}
		scale = c.Distance / (c.Distance - v.Z)
	}

	extent := c.Extent
	if extent <= 0 {
		extent = 1
	}
	half := float64(min(w, h)) / 2
	sx := int(math.Round(float64(w)/2 + v.X*scale/extent*half))
	sy := int(math.Round(float64(h)/2 - v.Y*scale/extent*half))
	return sx, sy, v.Z, sx >= 0 && sx < w && sy >= 0 && sy < h
}
