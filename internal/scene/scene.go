package scene

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/lorenzq/internal/frame"
)

// Surface is a 2D drawing target addressed in its own pixel units.
type Surface interface {
	Size() (int, int)
	Line(x0, y0, x1, y1, color int)
	Dot(x, y, color int)
	Text(x, y int, s string, color int)
}

const (
	DefaultExtent   = 130.0
	DefaultDistance = 1000.0
)

type Scene struct {
	// Camera frames the view; its angles are replaced by each frame's.
	Camera       Camera
	Sphere       *Wireframe
	Poles        []Pole
	ASCIILabels  bool
	Trajectories int
}

// New returns the reference scene for an ensemble of n trajectories: a
// radius 100 sphere with the six Bloch poles, viewed around the box
// x, y in [-60, 60], z in [5, 55].
func New(n int) *Scene {
	return &Scene{
		Camera: Camera{
			Target:   Vec3{0, 0, 30},
			Extent:   DefaultExtent,
			Distance: DefaultDistance,
		},
		Sphere:       CreateSphereWireframe(SphereRadius, 10, 9, 48),
		Poles:        BlochPoles,
		Trajectories: n,
	}
}

func (s *Scene) CameraFor(f frame.Frame) Camera {
	c := s.Camera
	c.Elevation = f.Elevation
	c.Azimuth = f.Azimuth
	return c
}

// Palette is the raster palette: white background, light sphere, black
// labels, then one plasma color per trajectory.
func (s *Scene) Palette() color.Palette {
	p := color.Palette{
		color.RGBA{255, 255, 255, 255},
		color.RGBA{200, 200, 210, 255},
		color.RGBA{0, 0, 0, 255},
	}
	for _, c := range Plasma(max(min(s.Trajectories, MaxTrajectoryColors), 1)) {
		p = append(p, c)
	}
	return p
}

// TermColors mirrors Palette for dark terminal backgrounds.
func (s *Scene) TermColors() []lipgloss.Color {
	colors := []lipgloss.Color{"", "#444466", "#ffffff"}
	for _, c := range Plasma(max(min(s.Trajectories, MaxTrajectoryColors), 1)) {
		colors = append(colors, lipgloss.Color(Hex(c)))
	}
	return colors
}

// Draw renders the sphere, the revealed paths with their current points,
// and the pole labels.
func (s *Scene) Draw(dst Surface, f frame.Frame) {
	cam := s.CameraFor(f)
	w, h := dst.Size()

	if s.Sphere != nil {
		for _, e := range s.Sphere.Edges {
			s.segment(dst, cam, w, h, e.Start, e.End, ColorSphere)
		}
	}

	for k, path := range f.Paths {
		ci := TrajectoryColor(k)
		for i := 1; i < len(path); i++ {
			s.segment(dst, cam, w, h, Vec3From(path[i-1]), Vec3From(path[i]), ci)
		}
		if k < len(f.Current) && f.Current[k] != nil {
			if x, y, _, ok := cam.Project(Vec3From(f.Current[k]), w, h); ok {
				dst.Dot(x, y, ci)
			}
		}
	}

	for _, p := range s.Poles {
		label := p.Label
		if s.ASCIILabels {
			label = p.ASCII
		}
		if x, y, _, ok := cam.Project(p.Pos, w, h); ok {
			dst.Text(x, y, label, ColorLabel)
		}
	}
}

// segment draws a projected edge, skipping edges behind the eye or far
// off the surface.
func (s *Scene) segment(dst Surface, cam Camera, w, h int, a, b Vec3, ci int) {
	x0, y0, d0, _ := cam.Project(a, w, h)
	x1, y1, d1, _ := cam.Project(b, w, h)
	if cam.Distance > 0 && (d0 >= cam.Distance || d1 >= cam.Distance) {
		return
	}
	if !nearSurface(x0, y0, w, h) || !nearSurface(x1, y1, w, h) {
		return
	}
	dst.Line(x0, y0, x1, y1, ci)
}

func nearSurface(x, y, w, h int) bool {
	return x >= -w && x <= 2*w && y >= -h && y <= 2*h
}
