package cube

import (
	gomath "math"
	"reflect"
	"testing"

	"github.com/Faultbox/viewcube/pkg/math"
)

func identityPlacement() Placement {
	return NewPlacement(math.Vec3{}, math.Vec3{Z: 1})
}

func TestRoundedRectangleSharp(t *testing.T) {
	m := RoundedRectangle(math.Vec2{X: 10, Y: 6}, 0, identityPlacement())
	if len(m.Vertices) != 4 {
		t.Fatalf("vertex count = %d, want 4", len(m.Vertices))
	}
	if m.TriangleCount() != 2 {
		t.Fatalf("triangle count = %d, want 2", m.TriangleCount())
	}

	b := m.Bounds()
	if b.Min.X != -5 || b.Max.X != 5 || b.Min.Y != -3 || b.Max.Y != 3 {
		t.Errorf("bounds = %+v, want half-extents 5x3", b)
	}
}

func TestRoundedRectangleFan(t *testing.T) {
	m := RoundedRectangle(math.Vec2{X: 10, Y: 10}, 2, identityPlacement())
	wantVertices := 4*(roundSplits+1) + 1
	if len(m.Vertices) != wantVertices {
		t.Fatalf("vertex count = %d, want %d", len(m.Vertices), wantVertices)
	}
	if m.TriangleCount() != wantVertices-1 {
		t.Fatalf("triangle count = %d, want %d", m.TriangleCount(), wantVertices-1)
	}

	// Every triangle fans from the center vertex; the last one wraps back
	// to the first arc vertex.
	for i := 0; i < len(m.Indices); i += 3 {
		if m.Indices[i] != 0 {
			t.Fatalf("triangle %d does not start at the center", i/3)
		}
	}
	n := len(m.Indices)
	if m.Indices[n-2] != uint32(wantVertices-1) || m.Indices[n-1] != 1 {
		t.Errorf("closing triangle = (%d,%d,%d), want (0,%d,1)",
			m.Indices[n-3], m.Indices[n-2], m.Indices[n-1], wantVertices-1)
	}
}

func TestRoundedRectangleRadiusClamp(t *testing.T) {
	// An oversized radius degenerates to a stadium shape, not negative
	// extents.
	m := RoundedRectangle(math.Vec2{X: 4, Y: 10}, 100, identityPlacement())
	b := m.Bounds()
	if b.Min.X < -2.001 || b.Max.X > 2.001 {
		t.Errorf("clamped width bounds = %+v, want within +-2", b)
	}
}

func TestSideMeshPlusX(t *testing.T) {
	st := DefaultStyle()
	st.RoundRadius = 0
	if st.Size != 70 || st.FacetExtension != 10.5 {
		t.Fatalf("default style = size %v ext %v, want 70/10.5", st.Size, st.FacetExtension)
	}

	m := SideMesh(st, XPos)
	if len(m.Vertices) != 4 || m.TriangleCount() != 2 {
		t.Fatalf("side mesh = %d vertices %d triangles, want 4/2",
			len(m.Vertices), m.TriangleCount())
	}

	var center math.Vec3
	for _, v := range m.Vertices {
		center = center.Add(v.Position)
		if v.Position.X != 45.5 {
			t.Errorf("vertex X = %v, want 45.5 (planar quad)", v.Position.X)
		}
		if abs32(v.Position.Y) != 35 || abs32(v.Position.Z) != 35 {
			t.Errorf("tangent offsets = (%v, %v), want +-35", v.Position.Y, v.Position.Z)
		}
		if v.Normal.Sub(math.Vec3{X: 1}).Length() > 1e-6 {
			t.Errorf("vertex normal = %v, want +X", v.Normal)
		}
	}
	center = center.Scale(0.25)
	if center.Sub(math.Vec3{X: 45.5}).Length() > 1e-4 {
		t.Errorf("quad center = %v, want (45.5, 0, 0)", center)
	}
}

func TestEdgeMeshThickness(t *testing.T) {
	st := DefaultStyle()
	m := EdgeMesh(st, XPosYPos)
	if m == nil {
		t.Fatal("edge mesh is nil with edges enabled")
	}

	// Patch midpoint distance from origin.
	wantDist := st.Size*0.5*sqrt2 + st.FacetExtension*cos45
	var center math.Vec3
	for _, v := range m.Vertices {
		center = center.Add(v.Position)
	}
	center = center.Scale(1 / float32(len(m.Vertices)))
	if d := abs32(center.Length() - wantDist); d > 0.01 {
		t.Errorf("edge center distance = %v, want %v", center.Length(), wantDist)
	}

	st.DrawEdges = false
	if EdgeMesh(st, XPosYPos) != nil {
		t.Error("edge mesh built with edges disabled")
	}
}

func TestCornerMeshSharpNormals(t *testing.T) {
	st := DefaultStyle()
	st.RoundRadius = 0
	for _, o := range All() {
		if !o.Corner() {
			continue
		}
		m := CornerMesh(st, o)
		if m == nil || m.TriangleCount() != 1 {
			t.Fatalf("%v: sharp corner should be one triangle", o)
		}
		v0 := m.Vertices[m.Indices[0]].Position
		v1 := m.Vertices[m.Indices[1]].Position
		v2 := m.Vertices[m.Indices[2]].Position
		normal := v1.Sub(v0).Cross(v2.Sub(v0))
		if normal.Dot(o.Dir()) <= 0 {
			t.Errorf("%v: face normal %v points against direction", o, normal)
		}
	}
}

func TestCornerMeshRounded(t *testing.T) {
	st := DefaultStyle()
	st.RoundRadius = 0.1
	m := CornerMesh(st, XPosYPosZPos)
	if m == nil {
		t.Fatal("rounded corner mesh is nil")
	}
	if len(m.Vertices) != diskSlices+1 || m.TriangleCount() != diskSlices {
		t.Errorf("disk mesh = %d vertices %d triangles, want %d/%d",
			len(m.Vertices), m.TriangleCount(), diskSlices+1, diskSlices)
	}

	// Disk center sits beyond the cube corner by the tetrahedron height.
	wantDist := st.Size*0.5*sqrt3 +
		st.FacetExtension*sqrt2*0.5*float32(gomath.Sqrt(2.0/3.0))
	if d := abs32(m.Vertices[0].Position.Length() - wantDist); d > 0.01 {
		t.Errorf("disk center distance = %v, want %v", m.Vertices[0].Position.Length(), wantDist)
	}

	st.DrawVertices = false
	if CornerMesh(st, XPosYPosZPos) != nil {
		t.Error("corner mesh built with vertices disabled")
	}
}

func TestPartMeshDeterminism(t *testing.T) {
	st := DefaultStyle()
	st.RoundRadius = 0.2
	for _, o := range All() {
		a := PartMesh(st, o)
		b := PartMesh(st, o)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%v: two builds with identical inputs differ", o)
		}
	}
}

func TestStyleValidate(t *testing.T) {
	st := DefaultStyle()
	if err := st.Validate(); err != nil {
		t.Fatalf("default style invalid: %v", err)
	}

	if err := st.SetRoundRadius(0.6); err == nil {
		t.Error("SetRoundRadius(0.6) accepted, want error")
	}
	if st.RoundRadius != 0 {
		t.Errorf("rejected radius mutated style to %v", st.RoundRadius)
	}
	if err := st.SetRoundRadius(0.5); err != nil {
		t.Errorf("SetRoundRadius(0.5) rejected: %v", err)
	}

	st.RoundRadius = -0.1
	if err := st.Validate(); err == nil {
		t.Error("negative round radius validated")
	}
}

func TestAxesParts(t *testing.T) {
	st := DefaultStyle()
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		m := AxisArrow(st, axis)
		if m == nil || len(m.Vertices) == 0 || m.TriangleCount() == 0 {
			t.Errorf("axis %v arrow empty", axis)
		}
	}
	if CenterMarker(st) == nil {
		t.Error("center marker missing with axes enabled")
	}

	st.DrawAxes = false
	if AxisArrow(st, AxisX) != nil || CenterMarker(st) != nil {
		t.Error("axes geometry built with axes disabled")
	}
}
