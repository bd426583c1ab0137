package render

import "github.com/taigrr/tris/pkg/math3d"

// Tri is a triangle over any vertex type.
type Tri[T any] struct {
	V [3]T
}

// NewTri creates a triangle from three vertices.
func NewTri[T any](a, b, c T) Tri[T] {
	return Tri[T]{V: [3]T{a, b, c}}
}

// MapTri derives a new triangle by applying f to every vertex.
func MapTri[T, U any](tri Tri[T], f func(T) U) Tri[U] {
	return Tri[U]{V: [3]U{f(tri.V[0]), f(tri.V[1]), f(tri.V[2])}}
}

// Triangle is a world-space triangle.
type Triangle = Tri[math3d.Vec3]

// ScreenTriangle is a projected triangle: three screen positions, each with
// the camera's per-vertex distance.
type ScreenTriangle Tri[ProjectedVertex]

// ProjectTriangle projects a world triangle with p.
func ProjectTriangle(p Projector, tri Triangle) ScreenTriangle {
	return ScreenTriangle(MapTri(tri, p.Project))
}

// Shape is anything that can be broken into world triangles.
type Shape interface {
	Triangles() []Triangle
}

// TriangleList is a Shape made of loose triangles.
type TriangleList []Triangle

// Triangles returns the list itself.
func (l TriangleList) Triangles() []Triangle {
	return l
}
