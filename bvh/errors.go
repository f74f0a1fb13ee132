package bvh

import "errors"

var (
	ErrInvalidHierarchy  = errors.New("bvh: invalid hierarchy")
	ErrItemCountMismatch = errors.New("bvh: item count mismatch")
)
