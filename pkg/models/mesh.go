// Package models loads triangle meshes for the tris renderer.
package models

import (
	"github.com/taigrr/tris/pkg/math3d"
	"github.com/taigrr/tris/pkg/render"
)

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Faces    [][3]int // Indices into Vertices

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.BoundsMin, m.BoundsMax = math3d.Zero3(), math3d.Zero3()
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
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

// Transform applies a transformation matrix to all vertices.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i, v := range m.Vertices {
		m.Vertices[i] = mat.MulVec3(v)
	}
	m.CalculateBounds()
}

// Fit centers the mesh on the origin and scales it uniformly so its largest
// extent equals size. Empty and flat-to-a-point meshes are only centered.
func (m *Mesh) Fit(size float64) {
	m.CalculateBounds()
	mat := math3d.Translate(m.Center().Negate())

	ext := m.Size()
	if largest := max(ext.X, ext.Y, ext.Z); largest > 0 {
		mat = math3d.ScaleUniform(size / largest).Mul(mat)
	}
	m.Transform(mat)
}

// Triangles expands the faces into world triangles in face order.
// Faces referencing missing vertices are skipped.
func (m *Mesh) Triangles() []render.Triangle {
	tris := make([]render.Triangle, 0, len(m.Faces))
	for _, f := range m.Faces {
		if !m.validFace(f) {
			continue
		}
		tris = append(tris, render.NewTri(m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]))
	}
	return tris
}

func (m *Mesh) validFace(f [3]int) bool {
	for _, i := range f {
		if i < 0 || i >= len(m.Vertices) {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]math3d.Vec3, len(m.Vertices)),
		Faces:     make([][3]int, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}

var _ render.Shape = (*Mesh)(nil)
