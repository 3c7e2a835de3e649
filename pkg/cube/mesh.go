package cube

import (
	"github.com/Faultbox/viewcube/pkg/math"
)

// Vertex is a mesh vertex with position and normal.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
}

// Mesh is a triangle list. Vertices are referenced by Indices in groups of
// three. Meshes produced by the builders are single-sided and intended for
// back-face-culled rendering.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// NewMesh returns a mesh with capacity reserved for the given counts.
func NewMesh(vertexCount, triangleCount int) *Mesh {
	return &Mesh{
		Vertices: make([]Vertex, 0, vertexCount),
		Indices:  make([]uint32, 0, triangleCount*3),
	}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(pos, normal math.Vec3) uint32 {
	m.Vertices = append(m.Vertices, Vertex{Position: pos, Normal: normal})
	return uint32(len(m.Vertices) - 1)
}

// AddTriangle appends one triangle by vertex indices.
func (m *Mesh) AddTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds returns the axis-aligned bounding box of the mesh vertices.
func (m *Mesh) Bounds() Box {
	b := EmptyBox()
	for i := range m.Vertices {
		b.Extend(m.Vertices[i].Position)
	}
	return b
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max math.Vec3
}

// EmptyBox returns a box containing nothing (Min > Max on every axis).
func EmptyBox() Box {
	const huge = float32(1e30)
	return Box{
		Min: math.Vec3{X: huge, Y: huge, Z: huge},
		Max: math.Vec3{X: -huge, Y: -huge, Z: -huge},
	}
}

// Void reports whether the box contains nothing.
func (b Box) Void() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Center returns the box center.
func (b Box) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Diagonal returns the length of the box diagonal.
func (b Box) Diagonal() float32 {
	return b.Max.Sub(b.Min).Length()
}

// Extend grows the box to contain the given point.
func (b *Box) Extend(p math.Vec3) {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
}

// Merge grows the box to contain another box.
func (b *Box) Merge(other Box) {
	if other.Void() {
		return
	}
	b.Extend(other.Min)
	b.Extend(other.Max)
}

// Placement is a rigid frame mapping local planar coordinates into world
// space: local X/Y span the reference plane, local Z is the plane normal.
type Placement struct {
	Origin math.Vec3
	XDir   math.Vec3
	YDir   math.Vec3
	ZDir   math.Vec3
}

// NewPlacement builds a placement at origin with the given plane normal.
// The in-plane X direction is derived deterministically from the normal:
// the world axis least aligned with it (Y, then Z, then X on ties) is
// crossed with the normal, so a +Z normal yields the identity frame.
func NewPlacement(origin, normal math.Vec3) Placement {
	z := normal.Normalize()

	axes := [3]math.Vec3{{Y: 1}, {Z: 1}, {X: 1}}
	ref := axes[0]
	best := abs32(z.Dot(ref))
	for _, a := range axes[1:] {
		if d := abs32(z.Dot(a)); d < best {
			best = d
			ref = a
		}
	}

	x := ref.Cross(z).Normalize()
	y := z.Cross(x)
	return Placement{Origin: origin, XDir: x, YDir: y, ZDir: z}
}

// Apply maps a local point into world space.
func (p Placement) Apply(local math.Vec3) math.Vec3 {
	return p.Origin.
		Add(p.XDir.Scale(local.X)).
		Add(p.YDir.Scale(local.Y)).
		Add(p.ZDir.Scale(local.Z))
}

// ApplyXY maps a local in-plane point into world space.
func (p Placement) ApplyXY(x, y float32) math.Vec3 {
	return p.Origin.Add(p.XDir.Scale(x)).Add(p.YDir.Scale(y))
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
