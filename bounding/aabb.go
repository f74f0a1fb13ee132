package bounding

import (
	"github.com/chewxy/math32"

	"github.com/Dezzmeister/ncollide/types"
)

// AABB is an axis-aligned bounding box defined by its min and max corners.
type AABB struct {
	Min types.Vec3
	Max types.Vec3
}

// NewAABB creates a box from its two corners.
func NewAABB(min, max types.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// AABBFromPoints returns the smallest box enclosing all points. An empty
// point list yields an inverted box that acts as the identity for Merged.
func AABBFromPoints(points ...types.Vec3) AABB {
	box := AABB{
		Min: types.Vec3{math32.MaxFloat32, math32.MaxFloat32, math32.MaxFloat32},
		Max: types.Vec3{-math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32},
	}
	for _, p := range points {
		box.Min = types.MinVec3(box.Min, p)
		box.Max = types.MaxVec3(box.Max, p)
	}
	return box
}

// Center returns the midpoint of the box.
func (b AABB) Center() types.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Extents returns the side lengths of the box.
func (b AABB) Extents() types.Vec3 {
	return b.Max.Sub(b.Min)
}

// SurfaceArea returns half the box surface area, which is all the surface
// area heuristic needs for comparing boxes.
func (b AABB) SurfaceArea() float32 {
	side := b.Extents()
	return side[0]*side[1] + side[1]*side[2] + side[0]*side[2]
}

// Intersects performs the slab test against other.
func (b AABB) Intersects(other AABB) bool {
	for axis := 0; axis < 3; axis++ {
		if other.Max[axis] < b.Min[axis] || other.Min[axis] > b.Max[axis] {
			return false
		}
	}
	return true
}

// Contains returns true if other lies inside b along every axis.
func (b AABB) Contains(other AABB) bool {
	for axis := 0; axis < 3; axis++ {
		if other.Min[axis] < b.Min[axis] || other.Max[axis] > b.Max[axis] {
			return false
		}
	}
	return true
}

// ContainsPoint returns true if p lies inside the box.
func (b AABB) ContainsPoint(p types.Vec3) bool {
	return b.Contains(AABB{Min: p, Max: p})
}

// Merged returns the smallest box enclosing both boxes.
func (b AABB) Merged(other AABB) AABB {
	return AABB{
		Min: types.MinVec3(b.Min, other.Min),
		Max: types.MaxVec3(b.Max, other.Max),
	}
}

// Merge grows b to enclose other.
func (b *AABB) Merge(other AABB) {
	*b = b.Merged(other)
}

// Loosened returns the box grown by margin along every axis. The corners
// are rounded outward so that Tightened(margin) still contains b.
func (b AABB) Loosened(margin float32) AABB {
	out := AABB{
		Min: b.Min.AddScalar(-margin),
		Max: b.Max.AddScalar(margin),
	}
	for axis := 0; axis < 3; axis++ {
		for out.Min[axis]+margin > b.Min[axis] {
			out.Min[axis] = math32.Nextafter(out.Min[axis], math32.Inf(-1))
		}
		for out.Max[axis]-margin < b.Max[axis] {
			out.Max[axis] = math32.Nextafter(out.Max[axis], math32.Inf(1))
		}
	}
	return out
}

// Loosen grows b by margin along every axis.
func (b *AABB) Loosen(margin float32) {
	*b = b.Loosened(margin)
}

// Tightened returns the box shrunk by margin along every axis. Axes that
// would cross collapse onto their midpoint.
func (b AABB) Tightened(margin float32) AABB {
	out := AABB{
		Min: b.Min.AddScalar(margin),
		Max: b.Max.AddScalar(-margin),
	}
	for axis := 0; axis < 3; axis++ {
		if out.Min[axis] > out.Max[axis] {
			mid := (b.Min[axis] + b.Max[axis]) * 0.5
			out.Min[axis] = mid
			out.Max[axis] = mid
		}
	}
	return out
}

// Tighten shrinks b by margin along every axis.
func (b *AABB) Tighten(margin float32) {
	*b = b.Tightened(margin)
}
