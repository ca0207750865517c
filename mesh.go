package raster

import "github.com/tilecast/raster/vmath"

// Mesh is a struct-of-arrays vertex buffer plus a triangle-list index
// buffer. Grounded on the teacher's indexed Mesh (geometry.go:
// Vertices/Indices/AddVertex/AddTriangleIndices), generalized with the
// per-vertex normal/UV/color planes the teacher's version never carried
// because its fill used flat per-triangle shading instead of a
// programmable fragment shader.
type Mesh struct {
	Positions []vmath.Vec3
	Normals   []vmath.Vec3
	UVs       [][2]float64
	Colors    []Color
	Indices   []uint32
}

// NewMesh returns an empty mesh ready for AddVertex/AddTriangle calls.
func NewMesh() *Mesh {
	return &Mesh{}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(pos, normal vmath.Vec3, uv [2]float64, color Color) int {
	m.Positions = append(m.Positions, pos)
	m.Normals = append(m.Normals, normal)
	m.UVs = append(m.UVs, uv)
	m.Colors = append(m.Colors, color)
	return len(m.Positions) - 1
}

// AddTriangle appends one triangle (three vertex indices) to the index
// buffer.
func (m *Mesh) AddTriangle(i0, i1, i2 uint32) {
	m.Indices = append(m.Indices, i0, i1, i2)
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int { return len(m.Positions) }

// TriangleCount returns the number of triangles named by the index buffer.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }
