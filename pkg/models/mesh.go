// Package models turns a room layout into triangle meshes and exchanges them
// as binary glTF.
package models

import (
	"github.com/taigrr/roomcraft/pkg/math3d"
)

// Mesh is a triangle mesh placed in the room by Translation.
type Mesh struct {
	Name        string
	Vertices    []MeshVertex
	Faces       []Face
	Material    Material
	Translation math3d.Vec3

	// Bounding box in local space (calculated on build and load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// MeshVertex holds the vertex attributes that are exported.
type MeshVertex struct {
	Position math3d.Vec3
	Normal   math3d.Vec3
}

// Face is a counter-clockwise triangle seen from outside.
type Face struct {
	V [3]int // Indices into Mesh.Vertices
}

// Material is a glTF metallic-roughness material.
type Material struct {
	Name      string
	BaseColor [4]float64 // RGBA in 0-1 range
	Metallic  float64    // 0 = dielectric, 1 = metal
	Roughness float64    // 0 = smooth, 1 = rough
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0].Position
	m.BoundsMax = m.Vertices[0].Position

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v.Position)
		m.BoundsMax = m.BoundsMax.Max(v.Position)
	}
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// CalculateNormals assigns each face's normal to its vertices. Meshes built
// here never share vertices between faces, so this is flat shading.
func (m *Mesh) CalculateNormals() {
	for _, f := range m.Faces {
		v0 := m.Vertices[f.V[0]].Position
		v1 := m.Vertices[f.V[1]].Position
		v2 := m.Vertices[f.V[2]].Position

		normal := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()

		m.Vertices[f.V[0]].Normal = normal
		m.Vertices[f.V[1]].Normal = normal
		m.Vertices[f.V[2]].Normal = normal
	}
}

// addQuad appends a quad wound a, b, c, d as two triangles.
func (m *Mesh) addQuad(a, b, c, d math3d.Vec3) {
	base := len(m.Vertices)
	for _, p := range [4]math3d.Vec3{a, b, c, d} {
		m.Vertices = append(m.Vertices, MeshVertex{Position: p})
	}
	m.Faces = append(m.Faces,
		Face{V: [3]int{base, base + 1, base + 2}},
		Face{V: [3]int{base, base + 2, base + 3}},
	)
}

// NewQuadMesh creates a single quad. Corners are wound counter-clockwise
// when seen from the side the quad faces.
func NewQuadMesh(name string, corners [4]math3d.Vec3, mat Material) *Mesh {
	m := NewMesh(name)
	m.Material = mat
	m.addQuad(corners[0], corners[1], corners[2], corners[3])
	m.CalculateNormals()
	m.CalculateBounds()
	return m
}

// NewBoxMesh creates a box spanning the origin to size, with four vertices
// per side so each side keeps its own normal.
func NewBoxMesh(name string, size math3d.Vec3, mat Material) *Mesh {
	m := NewMesh(name)
	m.Material = mat

	x, y, z := size.X, size.Y, size.Z
	v := func(px, py, pz float64) math3d.Vec3 { return math3d.V3(px, py, pz) }

	m.addQuad(v(0, 0, z), v(x, 0, z), v(x, y, z), v(0, y, z)) // front +z
	m.addQuad(v(x, 0, 0), v(0, 0, 0), v(0, y, 0), v(x, y, 0)) // back -z
	m.addQuad(v(x, 0, z), v(x, 0, 0), v(x, y, 0), v(x, y, z)) // right +x
	m.addQuad(v(0, 0, 0), v(0, 0, z), v(0, y, z), v(0, y, 0)) // left -x
	m.addQuad(v(0, y, z), v(x, y, z), v(x, y, 0), v(0, y, 0)) // top +y
	m.addQuad(v(0, 0, 0), v(x, 0, 0), v(x, 0, z), v(0, 0, z)) // bottom -y

	m.CalculateNormals()
	m.CalculateBounds()
	return m
}
