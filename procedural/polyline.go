package procedural

import "github.com/Dezzmeister/ncollide/types"

// PolylineSampler samples every vertex of a polyline as a single path.
// Inner tangents bisect the two adjacent segments.
type PolylineSampler struct {
	points []types.Vec3
	next   int
}

// NewPolylineSampler creates a sampler for the given points. Consecutive
// duplicate points are dropped.
func NewPolylineSampler(points []types.Vec3) (*PolylineSampler, error) {
	deduped := make([]types.Vec3, 0, len(points))
	for _, p := range points {
		if len(deduped) > 0 && deduped[len(deduped)-1].ApproxEqual(p, 1e-6) {
			continue
		}
		deduped = append(deduped, p)
	}
	if len(deduped) < 2 {
		return nil, ErrEmptyPath
	}
	return &PolylineSampler{points: deduped}, nil
}

// Next returns the next sample point.
func (s *PolylineSampler) Next() PathSample {
	idx := s.next
	last := len(s.points) - 1
	if idx > last {
		return PathSample{Kind: EndOfSample}
	}
	s.next++

	switch idx {
	case 0:
		return PathSample{
			Kind:    StartPoint,
			Point:   s.points[0],
			Tangent: s.points[1].Sub(s.points[0]).Normalize(),
		}
	case last:
		return PathSample{
			Kind:    EndPoint,
			Point:   s.points[last],
			Tangent: s.points[last].Sub(s.points[last-1]).Normalize(),
		}
	}

	in := s.points[idx].Sub(s.points[idx-1]).Normalize()
	out := s.points[idx+1].Sub(s.points[idx]).Normalize()
	tangent := in.Add(out).Normalize()
	if tangent == (types.Vec3{}) {
		// The path folds back on itself.
		tangent = out
	}
	return PathSample{Kind: InnerPoint, Point: s.points[idx], Tangent: tangent}
}

// Reset rewinds the sampler to the first point.
func (s *PolylineSampler) Reset() {
	s.next = 0
}
