package cube

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/viewcube/pkg/math"
)

func TestRegionsSensitivity(t *testing.T) {
	regions := Regions(DefaultStyle())
	if len(regions) != 26 {
		t.Fatalf("region count = %d, want 26", len(regions))
	}
	for _, r := range regions {
		want := 0
		switch r.Orientation.Kind() {
		case PartSide:
			want = SensitivitySide
		case PartEdge:
			want = SensitivityEdge
		case PartCorner:
			want = SensitivityCorner
		}
		if r.Sensitivity != want {
			t.Errorf("%v sensitivity = %d, want %d", r.Orientation, r.Sensitivity, want)
		}
	}
}

func TestRegionsRespectToggles(t *testing.T) {
	st := DefaultStyle()
	st.DrawEdges = false
	st.DrawVertices = false
	regions := Regions(st)
	if len(regions) != 6 {
		t.Fatalf("region count = %d, want 6 sides only", len(regions))
	}
	for _, r := range regions {
		if !r.Orientation.Side() {
			t.Errorf("unexpected non-side region %v", r.Orientation)
		}
	}
}

// rayAtAngle builds a ray whose direction is the given angle away from +X
// within the XY plane.
func rayAtAngle(deg float64) Ray {
	rad := deg * gomath.Pi / 180
	return Ray{
		Origin: math.Vec3{X: 100},
		Dir: math.Vec3{
			X: float32(gomath.Cos(rad)),
			Y: float32(gomath.Sin(rad)),
		},
	}
}

func TestAcceptsRayAngleFilter(t *testing.T) {
	region := Region{Orientation: XPos, Mesh: SideMesh(DefaultStyle(), XPos)}

	if !region.AcceptsRay(rayAtAngle(0), true) {
		t.Error("ray parallel to the projection axis rejected")
	}
	if region.AcceptsRay(rayAtAngle(90), true) {
		t.Error("ray perpendicular to the projection axis accepted")
	}
	// The admissible boundary sits 10 degrees away from perpendicular
	// and is itself accepted.
	if !region.AcceptsRay(rayAtAngle(79), true) {
		t.Error("ray 11 degrees off perpendicular rejected")
	}
	if !region.AcceptsRay(rayAtAngle(80), true) {
		t.Error("ray exactly 10 degrees off perpendicular rejected")
	}
	if region.AcceptsRay(rayAtAngle(81), true) {
		t.Error("ray 9 degrees off perpendicular accepted")
	}
}

func TestAcceptsRayRejectsRectangleSelection(t *testing.T) {
	region := Region{Orientation: XPos, Mesh: SideMesh(DefaultStyle(), XPos)}
	if region.AcceptsRay(rayAtAngle(0), false) {
		t.Error("non-point selection query accepted")
	}
}

func TestHitTestSideQuad(t *testing.T) {
	st := DefaultStyle()
	st.RoundRadius = 0
	region := Region{Orientation: XPos, Mesh: SideMesh(st, XPos)}

	ray := Ray{Origin: math.Vec3{X: 100}, Dir: math.Vec3{X: -1}}
	dist, ok := region.HitTest(ray)
	if !ok {
		t.Fatal("centered ray missed the side quad")
	}
	if want := float32(100 - 45.5); abs32(dist-want) > 1e-3 {
		t.Errorf("hit distance = %v, want %v", dist, want)
	}

	// A ray passing outside the patch misses.
	miss := Ray{Origin: math.Vec3{X: 100, Y: 50}, Dir: math.Vec3{X: -1}}
	if _, ok := region.HitTest(miss); ok {
		t.Error("off-patch ray reported a hit")
	}
}

func TestPickNearestRegion(t *testing.T) {
	st := DefaultStyle()
	st.RoundRadius = 0
	regions := Regions(st)

	// Shooting through the cube along -X crosses both X side patches; the
	// near one must win.
	ray := Ray{Origin: math.Vec3{X: 100}, Dir: math.Vec3{X: -1}}
	picked, ok := Pick(regions, ray, true)
	if !ok {
		t.Fatal("pick found nothing")
	}
	if picked.Orientation != XPos {
		t.Errorf("picked %v, want %v", picked.Orientation, XPos)
	}

	if _, ok := Pick(regions, ray, false); ok {
		t.Error("rectangle selection picked a region")
	}
}
