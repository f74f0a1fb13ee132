package bounding

import "github.com/Dezzmeister/ncollide/types"

// SpatializedNormalCone bounds both the space occupied by a geometry and the
// directions of its surface normals. Every query is the conjunction of the
// box query and the cone query.
type SpatializedNormalCone struct {
	// A box bounding the space occupied by a geometry.
	AABB AABB

	// A double cone bounding the normals of a geometry.
	Normals CircularCone
}

// NewSpatializedNormalCone pairs a box with a normal cone.
func NewSpatializedNormalCone(aabb AABB, normals CircularCone) SpatializedNormalCone {
	return SpatializedNormalCone{AABB: aabb, Normals: normals}
}

// Center returns the center of the box.
func (s SpatializedNormalCone) Center() types.Vec3 {
	return s.AABB.Center()
}

// SurfaceArea returns the half surface area of the spatial part.
func (s SpatializedNormalCone) SurfaceArea() float32 {
	return s.AABB.SurfaceArea()
}

// Intersects returns true if both the boxes and the normal cones intersect.
func (s SpatializedNormalCone) Intersects(other SpatializedNormalCone) bool {
	return s.AABB.Intersects(other.AABB) && s.Normals.DoubleConesIntersect(other.Normals)
}

// Contains returns true if s contains both the box and the normal cone of other.
func (s SpatializedNormalCone) Contains(other SpatializedNormalCone) bool {
	return s.AABB.Contains(other.AABB) && s.Normals.Contains(other.Normals)
}

// Merged returns the bound enclosing both bounds, merging boxes and cones separately.
func (s SpatializedNormalCone) Merged(other SpatializedNormalCone) SpatializedNormalCone {
	return SpatializedNormalCone{
		AABB:    s.AABB.Merged(other.AABB),
		Normals: s.Normals.Merged(other.Normals),
	}
}

// Merge grows s to enclose other.
func (s *SpatializedNormalCone) Merge(other SpatializedNormalCone) {
	*s = s.Merged(other)
}

// Loosened grows the box by margin; the normal cone is left untouched.
func (s SpatializedNormalCone) Loosened(margin float32) SpatializedNormalCone {
	return SpatializedNormalCone{
		AABB:    s.AABB.Loosened(margin),
		Normals: s.Normals,
	}
}

// Loosen grows the box of s by margin.
func (s *SpatializedNormalCone) Loosen(margin float32) {
	*s = s.Loosened(margin)
}

// Tightened shrinks the box by margin; the normal cone is left untouched.
func (s SpatializedNormalCone) Tightened(margin float32) SpatializedNormalCone {
	return SpatializedNormalCone{
		AABB:    s.AABB.Tightened(margin),
		Normals: s.Normals,
	}
}

// Tighten shrinks the box of s by margin.
func (s *SpatializedNormalCone) Tighten(margin float32) {
	*s = s.Tightened(margin)
}
