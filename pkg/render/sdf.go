package render

import (
	"math"

	"github.com/taigrr/tris/pkg/math3d"
)

// sign returns -1, 0 or +1. NaN passes through.
//
// Zero maps to 0, not ±1. A collinear triangle therefore gets a zero perp
// everywhere and never covers a point, even one on its supporting line.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return x
}

// vertexOffsets returns p - v_i for each vertex.
func (t ScreenTriangle) vertexOffsets(p math3d.Vec2) [3]math3d.Vec2 {
	return [3]math3d.Vec2{
		p.Sub(t.V[0].Position),
		p.Sub(t.V[1].Position),
		p.Sub(t.V[2].Position),
	}
}

// edges returns v_{i+1} - v_i for each vertex.
func (t ScreenTriangle) edges() [3]math3d.Vec2 {
	return [3]math3d.Vec2{
		t.V[1].Position.Sub(t.V[0].Position),
		t.V[2].Position.Sub(t.V[1].Position),
		t.V[0].Position.Sub(t.V[2].Position),
	}
}

// SignedDistance returns the distance from p to the triangle boundary,
// negative inside and positive outside. Points on an edge or vertex give 0.
//
// The result does not depend on vertex winding. Zero-area triangles never
// report a negative distance.
func (t ScreenTriangle) SignedDistance(p math3d.Vec2) float64 {
	d := t.vertexOffsets(p)
	e := t.edges()

	minSq := math.Inf(1)
	for i := range 3 {
		// Closest point on the segment, not the infinite line.
		f := math.Max(0, math.Min(1, d[i].Dot(e[i])/e[i].LenSq()))
		minSq = math.Min(minSq, d[i].Sub(e[i].Scale(f)).LenSq())
	}
	minDistance := math.Sqrt(minSq)

	// Flip so clockwise and counter-clockwise triangles agree.
	handedness := sign(e[0].Perp(e[2]))

	minPerp := math.Inf(1)
	for i := range 3 {
		minPerp = math.Min(minPerp, d[i].Perp(e[i])*handedness)
	}

	return -minDistance * sign(minPerp)
}

// ProjectionDistance interpolates the per-vertex distances at p, weighting
// each vertex by its squared screen distance to p. Negative values mean the
// triangle is behind the camera at p.
func (t ScreenTriangle) ProjectionDistance(p math3d.Vec2) float64 {
	d := t.vertexOffsets(p)

	var total, sum float64
	for i := range 3 {
		w := d[i].LenSq()
		total += w
		sum += w * t.V[i].Distance
	}
	return sum / total
}

// Centroid returns the mean screen position of the vertices.
func (t ScreenTriangle) Centroid() math3d.Vec2 {
	return t.V[0].Position.Add(t.V[1].Position).Add(t.V[2].Position).Scale(1.0 / 3)
}
