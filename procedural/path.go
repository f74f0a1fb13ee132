package procedural

import "github.com/Dezzmeister/ncollide/types"

// SampleKind tags the role of a PathSample.
type SampleKind uint8

const (
	// A point that starts a new path.
	StartPoint SampleKind = iota
	// A point inside the path currently generated.
	InnerPoint
	// A point that ends the path currently generated.
	EndPoint
	// Returned once the sampler has no other points to generate.
	EndOfSample
)

// PathSample is a sample point and its associated unit tangent.
type PathSample struct {
	Kind    SampleKind
	Point   types.Vec3
	Tangent types.Vec3
}

// A curve sampler.
type CurveSampler interface {
	// Next returns the next sample point.
	Next() PathSample
}

// A pattern that is replicated along a path. It is responsible for the
// generation of the whole mesh.
type StrokePattern interface {
	// Stroke generates the mesh using this pattern and the curve sampled by sampler.
	Stroke(sampler CurveSampler) (*TriMesh, error)
}
