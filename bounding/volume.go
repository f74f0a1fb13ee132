// Package bounding provides conservative bounding volumes that can be
// organized into hierarchies: axis-aligned boxes, double circular cones that
// bound sets of surface normals, and their spatialized combination.
//
// All bounds are small value types. The value-returning forms (Merged,
// Loosened, Tightened) never mutate their receiver and are safe for
// concurrent use; the in-place forms (Merge, Loosen, Tighten) require
// exclusive access to the receiver.
//
// Operations do not validate their input. Callers must supply finite
// coordinates, unit-length cone axes and half-angles in [0, π]; anything
// else yields an unspecified result.
package bounding

import "github.com/Dezzmeister/ncollide/types"

// Volume is the capability set shared by every bound so that hierarchy code
// can be written once for all bound representations.
type Volume[V any] interface {
	// Center returns a representative point used by hierarchy heuristics.
	Center() types.Vec3

	// Intersects returns true if the two bounds might overlap. It never
	// returns false for overlapping bounds.
	Intersects(other V) bool

	// Contains returns true only if other is guaranteed to lie entirely
	// inside the receiver.
	Contains(other V) bool

	// Merged returns a bound containing both the receiver and other.
	Merged(other V) V

	// Loosened returns the bound expanded outwards by a non-negative margin.
	Loosened(margin float32) V

	// Tightened returns the bound shrunk inwards by a non-negative margin.
	Tightened(margin float32) V
}

// MergeAll folds Merged over the supplied bounds.
func MergeAll[V Volume[V]](first V, rest ...V) V {
	out := first
	for _, v := range rest {
		out = out.Merged(v)
	}
	return out
}
