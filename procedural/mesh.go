// Package procedural generates triangle meshes, either directly (spheres)
// or by sweeping a stroke pattern along a sampled curve, and extracts the
// per-face bounds that seed a normal cone hierarchy.
package procedural

import (
	"github.com/Dezzmeister/ncollide/bounding"
	"github.com/Dezzmeister/ncollide/types"
)

// TriMesh is an indexed triangle mesh. Normals is either empty or holds one
// unit normal per vertex.
type TriMesh struct {
	Coords  []types.Vec3
	Normals []types.Vec3
	Indices [][3]uint32
}

// HasNormals returns true if the mesh carries per-vertex normals.
func (m *TriMesh) HasNormals() bool {
	return len(m.Normals) > 0 && len(m.Normals) == len(m.Coords)
}

// NumFaces returns the number of triangles in the mesh.
func (m *TriMesh) NumFaces() int {
	return len(m.Indices)
}

// Face returns the three vertices of a triangle.
func (m *TriMesh) Face(face int) (a, b, c types.Vec3) {
	idx := m.Indices[face]
	return m.Coords[idx[0]], m.Coords[idx[1]], m.Coords[idx[2]]
}

// FaceNormal returns the unit normal of a triangle following the winding
// order, or the zero vector for degenerate triangles.
func (m *TriMesh) FaceNormal(face int) types.Vec3 {
	a, b, c := m.Face(face)
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// FaceBound returns the bound of a single triangle: its box and a cone
// around its geometric normal and, if present, its vertex normals.
// Degenerate triangles without vertex normals get a cone covering all
// directions.
func (m *TriMesh) FaceBound(face int) bounding.SpatializedNormalCone {
	a, b, c := m.Face(face)

	dirs := make([]types.Vec3, 0, 4)
	if n := m.FaceNormal(face); n != (types.Vec3{}) {
		dirs = append(dirs, n)
	}
	if m.HasNormals() {
		for _, idx := range m.Indices[face] {
			dirs = append(dirs, m.Normals[idx])
		}
	}

	return bounding.NewSpatializedNormalCone(bounding.AABBFromPoints(a, b, c), bounding.ConeFromDirections(dirs...))
}

// FaceBounds returns the bound of every triangle, indexed by face.
func (m *TriMesh) FaceBounds() []bounding.SpatializedNormalCone {
	out := make([]bounding.SpatializedNormalCone, len(m.Indices))
	for face := range m.Indices {
		out[face] = m.FaceBound(face)
	}
	return out
}

// Bound returns a bound enclosing every triangle. Empty meshes yield an
// inverted box and a cone covering all directions.
func (m *TriMesh) Bound() bounding.SpatializedNormalCone {
	if len(m.Indices) == 0 {
		return bounding.NewSpatializedNormalCone(bounding.AABBFromPoints(), bounding.AllDirections())
	}
	faces := m.FaceBounds()
	return bounding.MergeAll(faces[0], faces[1:]...)
}

// Append adds the triangles of other to m. Vertex normals are kept only if
// both meshes carry them.
func (m *TriMesh) Append(other *TriMesh) {
	offset := uint32(len(m.Coords))
	if (m.HasNormals() || offset == 0) && other.HasNormals() {
		m.Normals = append(m.Normals, other.Normals...)
	} else {
		m.Normals = nil
	}
	m.Coords = append(m.Coords, other.Coords...)
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, [3]uint32{idx[0] + offset, idx[1] + offset, idx[2] + offset})
	}
}
