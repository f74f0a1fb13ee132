package procedural

import (
	"github.com/chewxy/math32"

	"github.com/Dezzmeister/ncollide/types"
)

// UVSphere tessellates a sphere centered on the origin with nTheta
// subdivisions around the z axis and nPhi subdivisions from pole to pole.
func UVSphere(radius float32, nTheta, nPhi int) (*TriMesh, error) {
	if nTheta < 3 || nPhi < 2 || radius <= 0 {
		return nil, ErrInvalidTessellation
	}

	mesh := &TriMesh{
		Coords: make([]types.Vec3, 0, nTheta*(nPhi-1)+2),
	}

	// North pole, the inner rings and then the south pole.
	mesh.Coords = append(mesh.Coords, types.Vec3{0, 0, radius})
	for i := 1; i < nPhi; i++ {
		sinPhi, cosPhi := math32.Sincos(math32.Pi * float32(i) / float32(nPhi))
		for j := 0; j < nTheta; j++ {
			sinTheta, cosTheta := math32.Sincos(2 * math32.Pi * float32(j) / float32(nTheta))
			mesh.Coords = append(mesh.Coords, types.Vec3{
				radius * sinPhi * cosTheta,
				radius * sinPhi * sinTheta,
				radius * cosPhi,
			})
		}
	}
	south := uint32(len(mesh.Coords))
	mesh.Coords = append(mesh.Coords, types.Vec3{0, 0, -radius})

	ringVertex := func(ring, j int) uint32 {
		return uint32(1 + ring*nTheta + j%nTheta)
	}

	for j := 0; j < nTheta; j++ {
		mesh.Indices = append(mesh.Indices, [3]uint32{0, ringVertex(0, j), ringVertex(0, j+1)})
	}
	for ring := 0; ring < nPhi-2; ring++ {
		for j := 0; j < nTheta; j++ {
			a, b := ringVertex(ring, j), ringVertex(ring, j+1)
			c, d := ringVertex(ring+1, j), ringVertex(ring+1, j+1)
			mesh.Indices = append(mesh.Indices, [3]uint32{a, c, d}, [3]uint32{a, d, b})
		}
	}
	for j := 0; j < nTheta; j++ {
		mesh.Indices = append(mesh.Indices, [3]uint32{south, ringVertex(nPhi-2, j+1), ringVertex(nPhi-2, j)})
	}

	mesh.Normals = make([]types.Vec3, len(mesh.Coords))
	for idx, v := range mesh.Coords {
		mesh.Normals[idx] = v.Mul(1 / radius)
	}

	return mesh, nil
}
