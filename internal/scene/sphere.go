package scene

import "math"

const SphereRadius = 100.0

type Edge struct {
	Start, End Vec3
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe            { return &Wireframe{Edges: make([]Edge, 0)} }
func (w *Wireframe) AddEdge(s, e Vec3)    { w.Edges = append(w.Edges, Edge{s, e}) }
func (w *Wireframe) AddPolyline(p []Vec3) {
	for i := 1; i < len(p); i++ {
		w.AddEdge(p[i-1], p[i])
	}
}

// CreateSphereWireframe returns meridians and parallels of a sphere
// centered at the origin.
func CreateSphereWireframe(radius float64, meridians, parallels, segments int) *Wireframe {
	w := NewWireframe()

	for m := 0; m < meridians; m++ {
		u := 2 * math.Pi * float64(m) / float64(meridians)
		pts := make([]Vec3, segments+1)
		for s := range pts {
			v := math.Pi * float64(s) / float64(segments)
			pts[s] = spherePoint(radius, u, v)
		}
		w.AddPolyline(pts)
	}

	for p := 1; p <= parallels; p++ {
		v := math.Pi * float64(p) / float64(parallels+1)
		pts := make([]Vec3, segments+1)
		for s := range pts {
			u := 2 * math.Pi * float64(s) / float64(segments)
			pts[s] = spherePoint(radius, u, v)
		}
		w.AddPolyline(pts)
	}

	return w
}

func spherePoint(r, u, v float64) Vec3 {
	su, cu := math.Sincos(u)
	sv, cv := math.Sincos(v)
	return Vec3{r * cu * sv, r * su * sv, r * cv}
}

// Pole is a labeled reference point on the sphere.
type Pole struct {
	Label string
	// ASCII is used on surfaces whose font lacks the ket glyphs.
	ASCII string
	Pos   Vec3
}

// BlochPoles are the six basis states. The computational poles sit at
// z = -80 and z = 80, inside the sphere, where the attractor lobes lie.
var BlochPoles = []Pole{
	{Label: "|0⟩", ASCII: "|0>", Pos: Vec3{0, 0, -80}},
	{Label: "|1⟩", ASCII: "|1>", Pos: Vec3{0, 0, 80}},
	{Label: "|-i⟩", ASCII: "|-i>", Pos: Vec3{0, -100, 0}},
	{Label: "|+i⟩", ASCII: "|+i>", Pos: Vec3{0, 100, 0}},
	{Label: "|-⟩", ASCII: "|->", Pos: Vec3{-100, 0, 0}},
	{Label: "|+⟩", ASCII: "|+>", Pos: Vec3{100, 0, 0}},
}
