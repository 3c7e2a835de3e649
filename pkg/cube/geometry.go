package cube

import (
	gomath "math"

	"github.com/Faultbox/viewcube/pkg/math"
)

const (
	// roundSplits is the angular subdivision count per quarter arc of a
	// rounded rectangle corner.
	roundSplits = 8
	// diskSlices is the slice count of corner disks and the center marker.
	diskSlices = 20
	// arrowFacets is the facet count of axis arrow shafts and tips.
	arrowFacets = 20
)

var (
	sqrt2 = float32(gomath.Sqrt(2))
	sqrt3 = float32(gomath.Sqrt(3))
	cos45 = float32(gomath.Cos(gomath.Pi / 4))
)

// RoundedRectangle builds a size.X by size.Y rectangle centered on the
// placement origin, with corners filleted by radius. The radius is clamped
// to half the shorter side. All vertex normals point against the placement
// normal, matching the inward-facing reference plane of the cube parts.
//
// With radius > 0 the patch is a closed triangle fan around a center
// vertex with 4*(roundSplits+1)+1 vertices; with radius == 0 it is a plain
// quad of 4 vertices and 2 triangles.
func RoundedRectangle(size math.Vec2, radius float32, pl Placement) *Mesh {
	if half := size.Min() * 0.5; radius > half {
		radius = half
	}
	hx := size.X*0.5 - radius
	hy := size.Y*0.5 - radius
	normal := pl.ZDir.Neg()

	if radius <= 0 {
		m := NewMesh(4, 2)
		m.AddVertex(pl.ApplyXY(-hx, -hy), normal)
		m.AddVertex(pl.ApplyXY(-hx, hy), normal)
		m.AddVertex(pl.ApplyXY(hx, hy), normal)
		m.AddVertex(pl.ApplyXY(hx, -hy), normal)
		m.AddTriangle(2, 0, 1)
		m.AddTriangle(0, 2, 3)
		return m
	}

	nodes := 4*(roundSplits+1) + 1
	m := NewMesh(nodes, nodes-1)
	m.AddVertex(pl.ApplyXY(0, 0), normal)

	// Quarter arcs in corner order (+x+y), (+x-y), (-x-y), (-x+y), each
	// interpolating linearly in angle between its two tangent directions.
	arcs := [4]struct {
		cx, cy   float32
		from, to float64
	}{
		{hx, hy, gomath.Pi * 0.5, 0},
		{hx, -hy, 0, -gomath.Pi * 0.5},
		{-hx, -hy, -gomath.Pi * 0.5, -gomath.Pi},
		{-hx, hy, -gomath.Pi, -gomath.Pi * 1.5},
	}
	for _, arc := range arcs {
		for i := 0; i <= roundSplits; i++ {
			t := float64(i) / float64(roundSplits)
			angle := arc.from + (arc.to-arc.from)*t
			m.AddVertex(pl.ApplyXY(
				arc.cx+radius*float32(gomath.Cos(angle)),
				arc.cy+radius*float32(gomath.Sin(angle)),
			), normal)
		}
	}

	// Closed fan around the center, wrapping the last arc vertex back to
	// the first.
	for i := uint32(2); i < uint32(nodes); i++ {
		m.AddTriangle(0, i-1, i)
	}
	m.AddTriangle(0, uint32(nodes-1), 1)
	return m
}

// SideMesh builds the patch of a side orientation: a Size by Size rounded
// rectangle at distance Size/2 + FacetExtension along the direction, its
// reference plane facing the cube center.
func SideMesh(st Style, o Orientation) *Mesh {
	dir := o.Dir()
	pos := dir.Scale(st.Size*0.5 + st.FacetExtension)
	pl := NewPlacement(pos, dir.Neg())
	return RoundedRectangle(math.Vec2{X: st.Size, Y: st.Size}, st.RoundRadius*st.Size, pl)
}

// EdgeMesh builds the patch of an edge orientation: a thin rounded
// rectangle at the edge midpoint. Returns nil when edge display is
// disabled.
func EdgeMesh(st Style, o Orientation) *Mesh {
	if !st.DrawEdges {
		return nil
	}
	thickness := st.FacetExtension*sqrt2 - st.EdgeGap
	if thickness < st.EdgeMinSize {
		thickness = st.EdgeMinSize
	}

	dir := o.Dir()
	pos := dir.Scale(st.Size*0.5*sqrt2 + st.FacetExtension*cos45)
	pl := NewPlacement(pos, dir.Neg())
	return RoundedRectangle(math.Vec2{X: thickness, Y: st.Size}, st.RoundRadius*st.Size, pl)
}

// CornerMesh builds the patch of a corner orientation. With a positive
// round radius the corner is approximated by a disk pushed out beyond the
// cube vertex by the height of a regular tetrahedron over the rounded edge
// width; with radius zero it is a single triangle spanning the three facet
// extensions. Returns nil when vertex display is disabled.
func CornerMesh(st Style, o Orientation) *Mesh {
	if !st.DrawVertices {
		return nil
	}
	hsize := st.Size * 0.5
	dir := o.Dir()

	if st.RoundRadius > 0 {
		edgeHalfWidth := st.FacetExtension * sqrt2 * 0.5
		height := edgeHalfWidth * float32(gomath.Sqrt(2.0/3.0))
		pos := dir.Scale(hsize*sqrt3 + height)
		pl := NewPlacement(pos, dir.Neg())
		radius := st.FacetExtension * 0.5 / cos45
		if radius < st.CornerMinSize {
			radius = st.CornerMinSize
		}
		return Disk(0, radius, diskSlices, pl)
	}

	corner := dir.Scale(hsize * sqrt3)
	sx, sy, sz := o.Axes()
	m := NewMesh(3, 1)
	m.AddVertex(corner.Add(math.Vec3{X: sx}.Scale(st.FacetExtension)), dir)
	m.AddVertex(corner.Add(math.Vec3{Y: sy}.Scale(st.FacetExtension)), dir)
	m.AddVertex(corner.Add(math.Vec3{Z: sz}.Scale(st.FacetExtension)), dir)

	// Wind the triangle so its face normal points along the direction.
	e1 := m.Vertices[1].Position.Sub(m.Vertices[0].Position)
	e2 := m.Vertices[2].Position.Sub(m.Vertices[0].Position)
	if e1.Cross(e2).Dot(dir) < 0 {
		m.AddTriangle(0, 2, 1)
	} else {
		m.AddTriangle(0, 1, 2)
	}
	return m
}

// PartMesh builds the patch of any orientation, honoring the edge and
// vertex display toggles. Returns nil for suppressed parts.
func PartMesh(st Style, o Orientation) *Mesh {
	switch o.Kind() {
	case PartSide:
		return SideMesh(st, o)
	case PartEdge:
		return EdgeMesh(st, o)
	case PartCorner:
		return CornerMesh(st, o)
	}
	return nil
}

// Disk builds an annular disk in the placement plane. With innerRadius
// zero it degenerates to a filled triangle fan around the center. Vertex
// normals follow the rounded rectangle convention.
func Disk(innerRadius, outerRadius float32, slices int, pl Placement) *Mesh {
	normal := pl.ZDir.Neg()
	step := 2 * gomath.Pi / float64(slices)

	if innerRadius <= 0 {
		m := NewMesh(slices+1, slices)
		m.AddVertex(pl.ApplyXY(0, 0), normal)
		for i := 0; i < slices; i++ {
			angle := step * float64(i)
			m.AddVertex(pl.ApplyXY(
				outerRadius*float32(gomath.Cos(angle)),
				outerRadius*float32(gomath.Sin(angle)),
			), normal)
		}
		for i := 0; i < slices; i++ {
			next := uint32(i+1)%uint32(slices) + 1
			m.AddTriangle(0, next, uint32(i)+1)
		}
		return m
	}

	m := NewMesh(slices*2, slices*2)
	for i := 0; i < slices; i++ {
		angle := step * float64(i)
		c := float32(gomath.Cos(angle))
		s := float32(gomath.Sin(angle))
		m.AddVertex(pl.ApplyXY(innerRadius*c, innerRadius*s), normal)
		m.AddVertex(pl.ApplyXY(outerRadius*c, outerRadius*s), normal)
	}
	for i := 0; i < slices; i++ {
		i0 := uint32(i * 2)
		o0 := i0 + 1
		i1 := uint32(((i+1)%slices)*2)
		o1 := i1 + 1
		m.AddTriangle(i0, o1, o0)
		m.AddTriangle(i0, i1, o1)
	}
	return m
}

// Sphere builds a UV sphere with outward normals, used for the axes center
// marker.
func Sphere(radius float32, slices, stacks int, center math.Vec3) *Mesh {
	m := NewMesh((stacks+1)*(slices+1), stacks*slices*2)
	for stack := 0; stack <= stacks; stack++ {
		phi := gomath.Pi * float64(stack) / float64(stacks)
		for slice := 0; slice <= slices; slice++ {
			theta := 2 * gomath.Pi * float64(slice) / float64(slices)
			n := math.Vec3{
				X: float32(gomath.Sin(phi) * gomath.Cos(theta)),
				Y: float32(gomath.Sin(phi) * gomath.Sin(theta)),
				Z: float32(gomath.Cos(phi)),
			}
			m.AddVertex(center.Add(n.Scale(radius)), n)
		}
	}
	cols := uint32(slices + 1)
	for stack := 0; stack < stacks; stack++ {
		for slice := 0; slice < slices; slice++ {
			a := uint32(stack)*cols + uint32(slice)
			b := a + cols
			m.AddTriangle(a, b, a+1)
			m.AddTriangle(a+1, b, b+1)
		}
	}
	return m
}

// Arrow builds a shaded arrow along dir: a cylindrical shaft capped by a
// cone tip, used for the axes trihedron.
func Arrow(origin, dir math.Vec3, length, shaftRadius, tipLength, tipRadius float32) *Mesh {
	dir = dir.Normalize()
	frame := NewPlacement(origin, dir)

	shaftEnd := length - tipLength
	if shaftEnd < 0 {
		shaftEnd = 0
	}

	m := NewMesh((arrowFacets+1)*3+1, arrowFacets*4)
	step := 2 * gomath.Pi / float64(arrowFacets)

	// Shaft: two rings with radial normals.
	for i := 0; i <= arrowFacets; i++ {
		angle := step * float64(i)
		c := float32(gomath.Cos(angle))
		s := float32(gomath.Sin(angle))
		radial := frame.XDir.Scale(c).Add(frame.YDir.Scale(s))
		base := origin.Add(radial.Scale(shaftRadius))
		m.AddVertex(base, radial)
		m.AddVertex(base.Add(dir.Scale(shaftEnd)), radial)
	}
	for i := 0; i < arrowFacets; i++ {
		a := uint32(i * 2)
		m.AddTriangle(a, a+2, a+1)
		m.AddTriangle(a+1, a+2, a+3)
	}

	// Tip cone: base ring plus apex per facet for flat-ish shading.
	tip := origin.Add(dir.Scale(length))
	ringBase := uint32(len(m.Vertices))
	slant := tipRadius / tipLength
	for i := 0; i <= arrowFacets; i++ {
		angle := step * float64(i)
		c := float32(gomath.Cos(angle))
		s := float32(gomath.Sin(angle))
		radial := frame.XDir.Scale(c).Add(frame.YDir.Scale(s))
		n := radial.Add(dir.Scale(slant)).Normalize()
		m.AddVertex(origin.Add(dir.Scale(shaftEnd)).Add(radial.Scale(tipRadius)), n)
	}
	apex := m.AddVertex(tip, dir)
	for i := 0; i < arrowFacets; i++ {
		m.AddTriangle(ringBase+uint32(i), ringBase+uint32(i)+1, apex)
	}
	return m
}

// Axis identifies one of the three world axes of the trihedron.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return "?"
}

// Dir returns the unit vector of the axis.
func (a Axis) Dir() math.Vec3 {
	switch a {
	case AxisX:
		return math.Vec3{X: 1}
	case AxisY:
		return math.Vec3{Y: 1}
	}
	return math.Vec3{Z: 1}
}

// axesOrigin returns the common origin of the axes trihedron, below the
// cube's lowest corner.
func axesOrigin(st Style) math.Vec3 {
	d := st.Size*0.5 + st.FacetExtension + st.AxesPadding
	return math.Vec3{X: -d, Y: -d, Z: -d}
}

// AxisArrow builds the trihedron arrow for one world axis. Returns nil
// when axes display is disabled.
func AxisArrow(st Style, axis Axis) *Mesh {
	if !st.DrawAxes {
		return nil
	}
	axisLen := st.Size + 2*st.FacetExtension + st.AxesPadding
	return Arrow(axesOrigin(st), axis.Dir(), axisLen, 1, 0.2*axisLen, 3)
}

// CenterMarker builds the small ball at the trihedron origin. Returns nil
// when axes display is disabled.
func CenterMarker(st Style) *Mesh {
	if !st.DrawAxes {
		return nil
	}
	return Sphere(4, diskSlices, diskSlices, axesOrigin(st))
}
