package math3d

import "math"

// Vec2 represents a 2D vector, used for screen-space positions.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Add returns the vector sum a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Scale returns the scalar product a * s.
func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Dot returns the dot product a · b.
func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Perp returns the perp-dot product a.X*b.Y - a.Y*b.X, the z component of
// the 3D cross product of a and b. Positive when b is counter-clockwise of a.
func (a Vec2) Perp(b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// LenSq returns the squared length.
func (a Vec2) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y
}

// Len returns the length.
func (a Vec2) Len() float64 {
	return math.Sqrt(a.LenSq())
}

// Normalize returns the unit vector, or the zero vector for zero input.
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}
