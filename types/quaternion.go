package types

import "github.com/chewxy/math32"

// Quaternion implementation taken from https://github.com/go-gl/mathgl/blob/master/mgl32/quat.go
type Quat struct {
	V Vec3
	W float32
}

// Create a quaternion from a unit axis vector and an angle.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	sin, cos := math32.Sincos(angle * 0.5)
	return Quat{
		V: axis.Mul(sin),
		W: cos,
	}
}

// Rotates a vector by the rotation this quaternion represents.
// This will result in a 3D vector.
func (q1 Quat) Rotate(v Vec3) Vec3 {
	cross := q1.V.Cross(v)
	// v + 2q_w * (q_v x v) + 2q_v x (q_v x v)
	return v.Add(cross.Mul(2 * q1.W)).Add(q1.V.Mul(2).Cross(cross))
}

// RotateTowards rotates the unit vector from towards the unit vector to by
// angle radians along the great circle joining them. When from and to are
// parallel or antiparallel the rotation plane is picked arbitrarily.
func RotateTowards(from, to Vec3, angle float32) Vec3 {
	axis := from.Cross(to)
	if axis.Len() < floatCmpEpsilon {
		axis = from.Orthogonal()
	} else {
		axis = axis.Normalize()
	}
	return QuatFromAxisAngle(axis, angle).Rotate(from).Normalize()
}
