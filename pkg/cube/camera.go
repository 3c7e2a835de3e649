package cube

import (
	gomath "math"

	"github.com/Faultbox/viewcube/pkg/math"
)

// Pose is a camera pose: eye position, view direction, up vector and
// orthographic scale (zoom).
type Pose struct {
	Eye       math.Vec3
	Direction math.Vec3
	Up        math.Vec3
	Scale     float32
}

// angularEps is the tolerance below which two directions are considered
// equal.
const angularEps = 1e-5

// Equal reports whether two poses coincide within a small tolerance.
func (p Pose) Equal(other Pose) bool {
	return p.Eye.Sub(other.Eye).Length() < 1e-4 &&
		p.Direction.Angle(other.Direction) < angularEps &&
		p.Up.Angle(other.Up) < angularEps &&
		abs32(p.Scale-other.Scale) < 1e-4
}

// View is the narrow contract of the scene/camera host. The widget reads
// and writes the live camera through it and queries bounding volumes for
// content-fit framing; it never issues draw calls itself.
type View interface {
	// Camera returns the live camera pose.
	Camera() Pose
	// SetCamera replaces the live camera pose.
	SetCamera(Pose)
	// SceneBounds returns the bounding box of the whole scene content.
	SceneBounds() Box
	// SelectionBounds returns the bounding box of the current selection,
	// if any.
	SelectionBounds() (Box, bool)
	// Invalidate requests a redraw after a camera change.
	Invalidate()
}

// CanonicalUp returns the default up vector for a viewing direction under
// the given up convention, orthogonalized against the direction. Views
// straight along the convention's vertical axis fall back to a horizontal
// up, matching the side label orientation.
func CanonicalUp(dir math.Vec3, yup bool) math.Vec3 {
	dir = dir.Normalize()
	var up math.Vec3
	if yup {
		up = math.Vec3{Y: 1}
		if abs32(dir.Y) > 1-angularEps {
			up = math.Vec3{Z: -1}
		}
	} else {
		up = math.Vec3{Z: 1}
		// dir is the view direction: looking down at the top face means
		// dir = -Z and keeps the +Y up of the top label.
		if dir.Z < -(1 - angularEps) {
			up = math.Vec3{Y: 1}
		} else if dir.Z > 1-angularEps {
			up = math.Vec3{Y: -1}
		}
	}
	// Orthogonalize against the view direction.
	up = up.Sub(dir.Scale(up.Dot(dir)))
	return up.Normalize()
}

// OrientationPose returns the canonical camera pose looking along an
// orientation's projection axis toward the cube center. Eye distance and
// scale are placeholders to be refined by FitPose.
func OrientationPose(o Orientation, yup bool) Pose {
	axis := o.Dir()
	viewDir := axis.Neg()
	return Pose{
		Eye:       axis,
		Direction: viewDir,
		Up:        CanonicalUp(viewDir, yup),
		Scale:     1,
	}
}

// BestUp selects among the four candidates obtained by rotating
// canonicalUp around newDir by 0, 90, 180 and 270 degrees the one with
// minimal angular distance to oldUp. Ties keep the first candidate in
// rotation order. Only these four axis-aligned candidates are tested;
// behavior for arbitrary directions deliberately stays a rotation of the
// canonical up.
func BestUp(oldUp, canonicalUp, newDir math.Vec3) math.Vec3 {
	newDir = newDir.Normalize()
	best := canonicalUp
	bestAngle := float32(gomath.MaxFloat32)
	for i := 0; i < 4; i++ {
		candidate := canonicalUp.Rotate(newDir, float32(i)*gomath.Pi/2)
		if angle := candidate.Angle(oldUp); angle < bestAngle {
			bestAngle = angle
			best = candidate
		}
	}
	return best
}

// FitPose computes the pose framing the given box with a relative margin,
// keeping the view direction and up of the input pose. It is pure: no live
// camera is read or written, so callers can preview a fit without
// disturbing the view. A void box leaves the pose unchanged.
func FitPose(pose Pose, box Box, margin float32) Pose {
	if box.Void() {
		return pose
	}
	diag := box.Diagonal()
	if diag <= 0 {
		// Degenerate content: recenter only.
		pose.Eye = box.Center().Sub(pose.Direction)
		return pose
	}
	pose.Eye = box.Center().Sub(pose.Direction.Scale(diag))
	pose.Scale = diag * (1 + margin)
	return pose
}

// lerpPose interpolates between two poses: spherical interpolation of the
// direction/up frame, linear interpolation of eye and scale.
func lerpPose(start, end Pose, t float32) Pose {
	q0 := math.QuatLookRotation(start.Direction, start.Up)
	q1 := math.QuatLookRotation(end.Direction, end.Up)
	q := q0.Slerp(q1, t)
	return Pose{
		Eye:       start.Eye.Lerp(end.Eye, t),
		Direction: q.Rotate(math.Vec3{Z: 1}),
		Up:        q.Rotate(math.Vec3{Y: 1}),
		Scale:     start.Scale + t*(end.Scale-start.Scale),
	}
}

// ScreenToRay converts pixel coordinates into a world-space picking ray
// using the inverse view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // flip Y

	near := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, -1, 1})
	far := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, 1, 1})
	if near[3] != 0 {
		near[0] /= near[3]
		near[1] /= near[3]
		near[2] /= near[3]
	}
	if far[3] != 0 {
		far[0] /= far[3]
		far[1] /= far[3]
		far[2] /= far[3]
	}

	origin := math.Vec3{X: near[0], Y: near[1], Z: near[2]}
	dir := math.Vec3{X: far[0] - near[0], Y: far[1] - near[1], Z: far[2] - near[2]}
	return Ray{Origin: origin, Dir: dir.Normalize()}
}
