package types

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Vectors whose length falls below this threshold are treated as zero.
const floatCmpEpsilon float32 = 1e-6

type Vec2 f32.Vec2
type Vec3 f32.Vec3

// Define a 2 component vector.
func XY(x, y float32) Vec2 {
	return Vec2{x, y}
}

// Subtract a vector.
func (v Vec2) Sub(v2 Vec2) Vec2 {
	return Vec2{v[0] - v2[0], v[1] - v2[1]}
}

// Cross returns the z component of the cross product of two vectors lying
// in the xy plane.
func (v Vec2) Cross(v2 Vec2) float32 {
	return v[0]*v2[1] - v[1]*v2[0]
}

// Add a vector.
func (v Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2]}
}

// Subtract a vector.
func (v Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2]}
}

// Multiply a 3 component vector with a scalar.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Add a scalar to every component.
func (v Vec3) AddScalar(s float32) Vec3 {
	return Vec3{v[0] + s, v[1] + s, v[2] + s}
}

// Negate a vector.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Get 3 component vector length.
func (v Vec3) Len() float32 {
	return math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Normalize 3 component vector. Vectors too short to normalize are mapped
// to the zero vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < floatCmpEpsilon {
		return Vec3{}
	}
	return v.Mul(1.0 / l)
}

// Calculate dot product of 2 vectors
func (v Vec3) Dot(v2 Vec3) float32 {
	return v[0]*v2[0] + v[1]*v2[1] + v[2]*v2[2]
}

// Calculate cross product of 2 vectors.
func (v Vec3) Cross(v2 Vec3) Vec3 {
	return Vec3{v[1]*v2[2] - v[2]*v2[1], v[2]*v2[0] - v[0]*v2[2], v[0]*v2[1] - v[1]*v2[0]}
}

// Angle returns the angle in [0, π] between two vectors. It goes through
// atan2 rather than acos so that nearly parallel vectors keep full precision.
func (v Vec3) Angle(v2 Vec3) float32 {
	return math32.Atan2(v.Cross(v2).Len(), v.Dot(v2))
}

// Orthogonal returns an arbitrary unit vector perpendicular to v, which is
// expected to be a unit vector.
func (v Vec3) Orthogonal() Vec3 {
	// Cross with the axis v is least aligned with.
	ax, ay, az := math32.Abs(v[0]), math32.Abs(v[1]), math32.Abs(v[2])
	switch {
	case ax <= ay && ax <= az:
		return v.Cross(Vec3{1, 0, 0}).Normalize()
	case ay <= az:
		return v.Cross(Vec3{0, 1, 0}).Normalize()
	default:
		return v.Cross(Vec3{0, 0, 1}).Normalize()
	}
}

// ApproxEqual returns true if every component of v and v2 differs by at
// most eps.
func (v Vec3) ApproxEqual(v2 Vec3, eps float32) bool {
	return math32.Abs(v[0]-v2[0]) <= eps &&
		math32.Abs(v[1]-v2[1]) <= eps &&
		math32.Abs(v[2]-v2[2]) <= eps
}

// Calc min component from two vectors
func MinVec3(v1, v2 Vec3) Vec3 {
	out := v1
	if v2[0] < out[0] {
		out[0] = v2[0]
	}
	if v2[1] < out[1] {
		out[1] = v2[1]
	}
	if v2[2] < out[2] {
		out[2] = v2[2]
	}
	return out
}

// Calc maxcomponent from two vectors
func MaxVec3(v1, v2 Vec3) Vec3 {
	out := v1
	if v2[0] > out[0] {
		out[0] = v2[0]
	}
	if v2[1] > out[1] {
		out[1] = v2[1]
	}
	if v2[2] > out[2] {
		out[2] = v2[2]
	}
	return out
}
