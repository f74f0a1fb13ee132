package procedural

import (
	"github.com/chewxy/math32"

	"github.com/Dezzmeister/ncollide/types"
)

// PolygonPattern sweeps a closed 2D polygon along every path produced by a
// sampler. The polygon lives in the plane orthogonal to the path tangent;
// its frame is carried from sample to sample by projecting the previous
// frame onto the new plane, which keeps the sweep free of sudden twists.
type PolygonPattern struct {
	polygon []types.Vec2
}

// NewPolygonPattern creates a pattern from a closed polygon. The closing edge
// is implied. Clockwise polygons are reversed so that the swept faces always
// point away from the path.
func NewPolygonPattern(polygon []types.Vec2) (*PolygonPattern, error) {
	if len(polygon) < 3 {
		return nil, ErrDegeneratePattern
	}

	area := signedArea(polygon)
	if math32.Abs(area) < minPolygonArea {
		return nil, ErrDegeneratePattern
	}

	pattern := &PolygonPattern{polygon: make([]types.Vec2, len(polygon))}
	for idx, v := range polygon {
		if area < 0 {
			idx = len(polygon) - 1 - idx
		}
		pattern.polygon[idx] = v
	}
	return pattern, nil
}

// Polygons enclosing less area than this cannot be swept.
const minPolygonArea float32 = 1e-9

// Shoelace area, positive for counter-clockwise polygons.
func signedArea(polygon []types.Vec2) float32 {
	var area float32
	origin := polygon[0]
	for idx := 1; idx+1 < len(polygon); idx++ {
		area += polygon[idx].Sub(origin).Cross(polygon[idx+1].Sub(origin))
	}
	return area * 0.5
}

// RegularPolygon returns the vertices of a regular polygon with the given
// circumradius, centered on the origin.
func RegularPolygon(sides int, radius float32) []types.Vec2 {
	out := make([]types.Vec2, sides)
	for idx := range out {
		sin, cos := math32.Sincos(2 * math32.Pi * float32(idx) / float32(sides))
		out[idx] = types.XY(cos*radius, sin*radius)
	}
	return out
}

// Stroke generates the swept mesh.
func (p *PolygonPattern) Stroke(sampler CurveSampler) (*TriMesh, error) {
	mesh := &TriMesh{}
	ring := uint32(len(p.polygon))

	var normal types.Vec3
	inPath := false
	for {
		sample := sampler.Next()
		if sample.Kind == EndOfSample {
			break
		}

		switch sample.Kind {
		case StartPoint:
			normal = sample.Tangent.Orthogonal()
			inPath = true
		default:
			if !inPath {
				return nil, ErrEmptyPath
			}
			projected := normal.Sub(sample.Tangent.Mul(normal.Dot(sample.Tangent))).Normalize()
			if projected != (types.Vec3{}) {
				normal = projected
			}
		}

		binormal := sample.Tangent.Cross(normal)
		base := uint32(len(mesh.Coords))
		for _, v := range p.polygon {
			radial := normal.Mul(v[0]).Add(binormal.Mul(v[1]))
			mesh.Coords = append(mesh.Coords, sample.Point.Add(radial))
			mesh.Normals = append(mesh.Normals, radial.Normalize())
		}

		// Stitch the new ring to the previous one.
		if sample.Kind != StartPoint {
			prev := base - ring
			for idx := uint32(0); idx < ring; idx++ {
				next := (idx + 1) % ring
				mesh.Indices = append(mesh.Indices,
					[3]uint32{prev + idx, prev + next, base + next},
					[3]uint32{prev + idx, base + next, base + idx},
				)
			}
		}

		if sample.Kind == EndPoint {
			inPath = false
		}
	}

	if len(mesh.Indices) == 0 {
		return nil, ErrEmptyPath
	}
	return mesh, nil
}
