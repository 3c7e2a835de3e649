package cube

import (
	gomath "math"

	"github.com/Faultbox/viewcube/pkg/math"
)

// Per-class picking sensitivity in device-independent units. Corners are
// small and get the largest halo.
const (
	SensitivitySide   = 2
	SensitivityEdge   = 4
	SensitivityCorner = 8
)

// grazingTolerance is the admissibility margin around the perpendicular:
// rays within 10 degrees of perpendicular to a region's projection axis
// are treated as unintentional and rejected.
const grazingTolerance = 10 * gomath.Pi / 180

// Ray is a picking ray with origin and normalized direction.
type Ray struct {
	Origin math.Vec3
	Dir    math.Vec3
}

// Region pairs an orientation with its part mesh for hit testing. Regions
// are registered with the picking host and never rendered directly.
type Region struct {
	Orientation Orientation
	Mesh        *Mesh
	Sensitivity int
}

// SensitivityFor returns the picking sensitivity for a part class.
func SensitivityFor(p Part) int {
	switch p {
	case PartCorner:
		return SensitivityCorner
	case PartEdge:
		return SensitivityEdge
	}
	return SensitivitySide
}

// Regions enumerates the pickable regions of the widget for the given
// style: one region per orientation whose part mesh is present.
func Regions(st Style) []Region {
	out := make([]Region, 0, orientationCount)
	for _, o := range All() {
		mesh := PartMesh(st, o)
		if mesh == nil {
			continue
		}
		out = append(out, Region{
			Orientation: o,
			Mesh:        mesh,
			Sensitivity: SensitivityFor(o.Kind()),
		})
	}
	return out
}

// AcceptsRay is the admissibility filter applied before geometric hit
// testing. Non-point queries (rectangle selection) are never valid on the
// widget, and rays closer than 10 degrees to perpendicular to the region's
// projection axis are rejected as ambiguous.
func (r Region) AcceptsRay(ray Ray, pointQuery bool) bool {
	if !pointQuery {
		return false
	}
	axis := r.Orientation.Dir()
	offPerpendicular := abs32(gomath.Pi/2 - ray.Dir.Angle(axis))
	return offPerpendicular >= grazingTolerance
}

// HitTest intersects the ray with the region's triangles and returns the
// distance to the nearest front-of-origin hit.
func (r Region) HitTest(ray Ray) (float32, bool) {
	best := float32(gomath.MaxFloat32)
	hit := false
	for i := 0; i+2 < len(r.Mesh.Indices); i += 3 {
		v0 := r.Mesh.Vertices[r.Mesh.Indices[i]].Position
		v1 := r.Mesh.Vertices[r.Mesh.Indices[i+1]].Position
		v2 := r.Mesh.Vertices[r.Mesh.Indices[i+2]].Position
		if t, ok := intersectTriangle(ray, v0, v1, v2); ok && t < best {
			best = t
			hit = true
		}
	}
	return best, hit
}

// intersectTriangle is the Moeller-Trumbore ray/triangle test. Triangles
// are treated as double-sided since picking should not depend on winding.
func intersectTriangle(ray Ray, v0, v1, v2 math.Vec3) (float32, bool) {
	const epsilon = 1e-7

	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)
	p := ray.Dir.Cross(e2)
	det := e1.Dot(p)
	if det > -epsilon && det < epsilon {
		return 0, false // ray parallel to triangle plane
	}
	invDet := 1 / det

	s := ray.Origin.Sub(v0)
	u := s.Dot(p) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(e1)
	v := ray.Dir.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := e2.Dot(q) * invDet
	if t < 0 {
		return 0, false // intersection behind ray origin
	}
	return t, true
}

// Pick runs the admissibility filter and hit test over all regions and
// returns the nearest hit region.
func Pick(regions []Region, ray Ray, pointQuery bool) (Region, bool) {
	var best Region
	bestDist := float32(gomath.MaxFloat32)
	found := false
	for _, region := range regions {
		if !region.AcceptsRay(ray, pointQuery) {
			continue
		}
		if dist, ok := region.HitTest(ray); ok && dist < bestDist {
			best = region
			bestDist = dist
			found = true
		}
	}
	return best, found
}
