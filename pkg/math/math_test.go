package math

import (
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3Angle(t *testing.T) {
	x := Vec3{1, 0, 0}
	tests := []struct {
		other Vec3
		want  float32
	}{
		{Vec3{1, 0, 0}, 0},
		{Vec3{0, 1, 0}, math.Pi / 2},
		{Vec3{-1, 0, 0}, math.Pi},
	}
	for _, tt := range tests {
		got := x.Angle(tt.other)
		if diff := float32(math.Abs(float64(got - tt.want))); diff > 1e-5 {
			t.Errorf("Angle(%v) = %v, want %v", tt.other, got, tt.want)
		}
	}
}

func TestVec3Rotate(t *testing.T) {
	// +X rotated 90 degrees around +Z gives +Y.
	got := Vec3{1, 0, 0}.Rotate(Vec3{0, 0, 1}, math.Pi/2)
	want := Vec3{0, 1, 0}
	if got.Sub(want).Length() > 1e-5 {
		t.Errorf("Rotate() = %v, want %v", got, want)
	}
}

func TestQuatRotate(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 1, 0}, math.Pi/2)
	got := q.Rotate(Vec3{0, 0, 1})
	want := Vec3{1, 0, 0}
	if got.Sub(want).Length() > 1e-5 {
		t.Errorf("Quat.Rotate() = %v, want %v", got, want)
	}
}

func TestQuatLookRotation(t *testing.T) {
	forward := Vec3{1, 0, 0}
	up := Vec3{0, 0, 1}
	q := QuatLookRotation(forward, up)

	gotForward := q.Rotate(Vec3{0, 0, 1})
	if gotForward.Sub(forward).Length() > 1e-5 {
		t.Errorf("look rotation forward = %v, want %v", gotForward, forward)
	}
	gotUp := q.Rotate(Vec3{0, 1, 0})
	if gotUp.Sub(up).Length() > 1e-5 {
		t.Errorf("look rotation up = %v, want %v", gotUp, up)
	}
}

func TestQuatSlerpEndpoints(t *testing.T) {
	a := QuatIdentity()
	b := QuatFromAxisAngle(Vec3{0, 0, 1}, math.Pi/2)

	if got := a.Slerp(b, 0); got.Dot(a) < 0.9999 {
		t.Errorf("Slerp(0) = %v, want %v", got, a)
	}
	if got := a.Slerp(b, 1); got.Dot(b) < 0.9999 {
		t.Errorf("Slerp(1) = %v, want %v", got, b)
	}

	// Halfway should be a 45 degree rotation.
	half := a.Slerp(b, 0.5)
	got := half.Rotate(Vec3{1, 0, 0})
	want := Vec3{1, 1, 0}.Normalize()
	if got.Sub(want).Length() > 1e-4 {
		t.Errorf("Slerp(0.5).Rotate(+X) = %v, want %v", got, want)
	}
}

func TestMat4InverseRoundTrip(t *testing.T) {
	m := LookAt(Vec3{10, 5, 3}, Vec3{}, Vec3{0, 1, 0})
	id := m.Mul(m.Inverse())
	want := Identity()
	for i := range id {
		if diff := float32(math.Abs(float64(id[i] - want[i]))); diff > 1e-4 {
			t.Fatalf("m * m^-1 [%d] = %v, want %v", i, id[i], want[i])
		}
	}
}
