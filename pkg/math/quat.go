package math

import "math"

// Quat is a rotation quaternion. Components are X, Y, Z, W with W the
// scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle builds a quaternion rotating by angle radians around
// the given unit axis.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	half := angle / 2
	s := float32(math.Sin(float64(half)))
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: float32(math.Cos(float64(half))),
	}
}

// QuatLookRotation builds the rotation whose +Z axis points along forward
// and whose +Y axis is as close as possible to up. forward and up must be
// non-parallel unit vectors.
func QuatLookRotation(forward, up Vec3) Quat {
	z := forward.Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)

	// Shepperd's method over the column basis.
	trace := x.X + y.Y + z.Z
	if trace > 0 {
		s := float32(math.Sqrt(float64(trace + 1)))
		w := s * 0.5
		s = 0.5 / s
		return Quat{
			X: (y.Z - z.Y) * s,
			Y: (z.X - x.Z) * s,
			Z: (x.Y - y.X) * s,
			W: w,
		}
	}
	if x.X >= y.Y && x.X >= z.Z {
		s := float32(math.Sqrt(float64(1 + x.X - y.Y - z.Z)))
		qx := s * 0.5
		s = 0.5 / s
		return Quat{
			X: qx,
			Y: (x.Y + y.X) * s,
			Z: (x.Z + z.X) * s,
			W: (y.Z - z.Y) * s,
		}
	}
	if y.Y > z.Z {
		s := float32(math.Sqrt(float64(1 + y.Y - x.X - z.Z)))
		qy := s * 0.5
		s = 0.5 / s
		return Quat{
			X: (x.Y + y.X) * s,
			Y: qy,
			Z: (y.Z + z.Y) * s,
			W: (z.X - x.Z) * s,
		}
	}
	s := float32(math.Sqrt(float64(1 + z.Z - x.X - y.Y)))
	qz := s * 0.5
	s = 0.5 / s
	return Quat{
		X: (x.Z + z.X) * s,
		Y: (y.Z + z.Y) * s,
		Z: qz,
		W: (x.Y - y.X) * s,
	}
}

// Normalize returns a unit quaternion.
func (q Quat) Normalize() Quat {
	l := float32(math.Sqrt(float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)))
	if l < 1e-6 {
		return QuatIdentity()
	}
	inv := 1 / l
	return Quat{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// Dot returns the 4D dot product.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Mul combines two rotations (q applied after other).
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Rotate applies the rotation to a vector.
func (q Quat) Rotate(v Vec3) Vec3 {
	// v' = v + 2*qv x (qv x v + w*v)
	qv := Vec3{q.X, q.Y, q.Z}
	t := qv.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(qv.Cross(t))
}

// Slerp performs spherical linear interpolation from q to other at t in
// [0, 1], always taking the shorter arc.
func (q Quat) Slerp(other Quat, t float32) Quat {
	dot := q.Dot(other)
	if dot < 0 {
		other = Quat{-other.X, -other.Y, -other.Z, -other.W}
		dot = -dot
	}

	// Nearly coincident rotations degenerate to a lerp.
	if dot > 0.9995 {
		return Quat{
			X: q.X + t*(other.X-q.X),
			Y: q.Y + t*(other.Y-q.Y),
			Z: q.Z + t*(other.Z-q.Z),
			W: q.W + t*(other.W-q.W),
		}.Normalize()
	}

	theta0 := float32(math.Acos(float64(dot)))
	theta := theta0 * t
	sinTheta := float32(math.Sin(float64(theta)))
	sinTheta0 := float32(math.Sin(float64(theta0)))

	s0 := float32(math.Cos(float64(theta))) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	return Quat{
		X: q.X*s0 + other.X*s1,
		Y: q.Y*s0 + other.Y*s1,
		Z: q.Z*s0 + other.Z*s1,
		W: q.W*s0 + other.W*s1,
	}
}
