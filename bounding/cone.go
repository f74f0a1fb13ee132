package bounding

import (
	"github.com/chewxy/math32"

	"github.com/Dezzmeister/ncollide/types"
)

// Merged cones are widened by this many radians to absorb float32 rounding
// in the axis rotation, so that they always contain their inputs.
const mergeSlack float32 = 1e-5

// CircularCone is a double cone of directions: it bounds every unit vector
// d whose angle to either Axis or -Axis is at most HalfAngle. It is used to
// bound the normals of surfaces whose orientation sign is not meaningful.
//
// A HalfAngle of π (or more) bounds all directions.
type CircularCone struct {
	Axis      types.Vec3
	HalfAngle float32
}

// ConeFromDirection returns the zero-width cone around dir.
func ConeFromDirection(dir types.Vec3) CircularCone {
	return CircularCone{Axis: dir.Normalize()}
}

// ConeFromDirections returns a cone bounding every supplied direction. It
// returns AllDirections if dirs is empty.
func ConeFromDirections(dirs ...types.Vec3) CircularCone {
	if len(dirs) == 0 {
		return AllDirections()
	}
	cone := ConeFromDirection(dirs[0])
	for _, dir := range dirs[1:] {
		cone.Merge(ConeFromDirection(dir))
	}
	return cone
}

// AllDirections returns the cone that bounds every direction.
func AllDirections() CircularCone {
	return CircularCone{Axis: types.Vec3{0, 0, 1}, HalfAngle: math32.Pi}
}

// IsFull returns true if the cone bounds every direction.
func (c CircularCone) IsFull() bool {
	return c.HalfAngle >= math32.Pi
}

// angleBetween returns the smallest angle that aligns either b or -b with a.
func angleBetween(a, b types.Vec3) float32 {
	angle := a.Angle(b)
	if angle > math32.Pi/2 {
		return math32.Pi - angle
	}
	return angle
}

// Center returns the origin; a cone of directions has no position.
func (c CircularCone) Center() types.Vec3 {
	return types.Vec3{}
}

// DoubleConesIntersect returns true if some direction is bounded by both
// cones.
func (c CircularCone) DoubleConesIntersect(other CircularCone) bool {
	angle := angleBetween(c.Axis, other.Axis)
	return angle <= c.HalfAngle+other.HalfAngle
}

// Intersects is an alias of DoubleConesIntersect.
func (c CircularCone) Intersects(other CircularCone) bool {
	return c.DoubleConesIntersect(other)
}

// Contains returns true if every direction bounded by other is also bounded
// by c.
func (c CircularCone) Contains(other CircularCone) bool {
	if c.IsFull() {
		return true
	}
	angle := angleBetween(c.Axis, other.Axis)
	return angle+other.HalfAngle <= c.HalfAngle
}

// ContainsDirection returns true if dir, a unit vector, is bounded by c.
func (c CircularCone) ContainsDirection(dir types.Vec3) bool {
	if c.IsFull() {
		return true
	}
	angle := angleBetween(c.Axis, dir)
	return angle <= c.HalfAngle
}

// MayBePerpendicularTo returns true if c bounds at least one direction
// orthogonal to dir. Surfaces whose normal cone fails this test cannot
// contribute to the silhouette seen along dir.
func (c CircularCone) MayBePerpendicularTo(dir types.Vec3) bool {
	angle := angleBetween(c.Axis, dir)
	return angle+c.HalfAngle >= math32.Pi/2
}

// Merged returns a cone bounding the directions of both c and other. The
// result is close to, but not always exactly, the smallest such cone.
func (c CircularCone) Merged(other CircularCone) CircularCone {
	if c.IsFull() || other.IsFull() {
		return AllDirections()
	}

	// Bridging other's axis and its antipode are both valid; keep the
	// narrower candidate and prefer the direct one on ties.
	angle := c.Axis.Angle(other.Axis)
	direct := c.mergeAligned(other, other.Axis, angle)
	flipped := c.mergeAligned(other, other.Axis.Neg(), math32.Pi-angle)
	if flipped.HalfAngle < direct.HalfAngle {
		return flipped
	}
	return direct
}

// mergeAligned merges other into c treating b (other's axis or its
// antipode) as the axis to bridge towards; dist is the angle from c.Axis to b.
func (c CircularCone) mergeAligned(other CircularCone, b types.Vec3, dist float32) CircularCone {
	if dist+other.HalfAngle <= c.HalfAngle {
		return c
	}
	if dist+c.HalfAngle <= other.HalfAngle {
		return other
	}

	radius := (dist + c.HalfAngle + other.HalfAngle) * 0.5
	if radius+mergeSlack >= math32.Pi {
		return AllDirections()
	}

	// The new axis sits on the arc from c.Axis to b, far enough from both
	// ends that each input cap touches the merged cap from the inside.
	return CircularCone{
		Axis:      types.RotateTowards(c.Axis, b, radius-c.HalfAngle),
		HalfAngle: radius + mergeSlack,
	}
}

// Merge grows c to bound the directions of other.
func (c *CircularCone) Merge(other CircularCone) {
	*c = c.Merged(other)
}

// Loosened returns c unchanged: a linear margin has no angular meaning.
func (c CircularCone) Loosened(margin float32) CircularCone {
	return c
}

// Loosen is a no-op, see Loosened.
func (c *CircularCone) Loosen(margin float32) {}

// Tightened returns c unchanged: a linear margin has no angular meaning.
func (c CircularCone) Tightened(margin float32) CircularCone {
	return c
}

// Tighten is a no-op, see Tightened.
func (c *CircularCone) Tighten(margin float32) {}
