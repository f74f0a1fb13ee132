package procedural

import "errors"

var (
	ErrEmptyPath           = errors.New("procedural: path needs at least two distinct points")
	ErrDegeneratePattern   = errors.New("procedural: pattern needs at least three vertices")
	ErrInvalidTessellation = errors.New("procedural: invalid tessellation parameters")
)
