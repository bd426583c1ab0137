package math3d

import "math"

// Mat4 is an affine transform stored column-major:
//
//	| 0  4  8  12 |
//	| 1  5  9  13 |
//	| 2  6  10 14 |
//	| 3  7  11 15 |
//
// Columns 0-2 hold the basis, column 3 the translation. The camera uses it
// for direction transforms and the model loader for fitting meshes.
type Mat4 [16]float64

// Translate returns a matrix that offsets points by v.
func Translate(v Vec3) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		v.X, v.Y, v.Z, 1,
	}
}

// ScaleUniform returns a matrix that scales every axis by s.
func ScaleUniform(s float64) Mat4 {
	return Mat4{
		s, 0, 0, 0,
		0, s, 0, 0,
		0, 0, s, 0,
		0, 0, 0, 1,
	}
}

// Rotate returns a right-handed rotation of angle radians around axis.
// Seen from the tip of the axis, vectors turn counter-clockwise.
func Rotate(axis Vec3, angle float64) Mat4 {
	u := axis.Normalize()
	c, s := math.Cos(angle), math.Sin(angle)
	k := 1 - c

	return Mat4{
		k*u.X*u.X + c, k*u.X*u.Y + s*u.Z, k*u.X*u.Z - s*u.Y, 0,
		k*u.X*u.Y - s*u.Z, k*u.Y*u.Y + c, k*u.Y*u.Z + s*u.X, 0,
		k*u.X*u.Z + s*u.Y, k*u.Y*u.Z - s*u.X, k*u.Z*u.Z + c, 0,
		0, 0, 0, 1,
	}
}

// Mul returns a * b, which applies b first.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat4) Mul(b Mat4) Mat4 {
	var m Mat4
	for col := range 4 {
		for row := range 4 {
			m[col*4+row] = a[row]*b[col*4] +
				a[4+row]*b[col*4+1] +
				a[8+row]*b[col*4+2] +
				a[12+row]*b[col*4+3]
		}
	}
	return m
}

// MulVec3 transforms v as a point, dividing by w when the matrix is
// projective.
func (m Mat4) MulVec3(v Vec3) Vec3 {
	w := m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]
	if w == 0 {
		w = 1
	}
	return m.MulVec3Dir(v).Add(V3(m[12], m[13], m[14])).Scale(1 / w)
}

// MulVec3Dir transforms v as a direction; translation is ignored.
func (m Mat4) MulVec3Dir(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z,
	}
}
