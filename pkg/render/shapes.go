package render

import (
	"math"

	"github.com/taigrr/tris/pkg/math3d"
)

// planeBasis returns two unit vectors spanning the plane perpendicular to
// normal. The first is normal × Z, falling back to X when normal is along Z.
func planeBasis(normal math3d.Vec3) (tangent, bitangent math3d.Vec3) {
	tangent = normal.Cross(math3d.V3(0, 0, 1))
	if tangent.LenSq() < 1e-12 {
		tangent = math3d.V3(1, 0, 0)
	}
	tangent = tangent.Normalize()
	bitangent = tangent.Cross(normal).Normalize()
	if normal.Z < 0 {
		tangent = tangent.Negate()
		bitangent = bitangent.Negate()
	}
	return tangent, bitangent
}

// EquilateralTriangle returns an equilateral triangle with circumradius 1
// centered on center and facing along normal.
func EquilateralTriangle(center, normal math3d.Vec3) Triangle {
	tangent, bitangent := planeBasis(normal.Normalize())

	var tri Triangle
	for i := range 3 {
		angle := math.Pi/2 + float64(i)*2*math.Pi/3
		offset := tangent.Scale(math.Cos(angle)).Add(bitangent.Scale(math.Sin(angle)))
		tri.V[i] = center.Add(offset)
	}
	return tri
}

// Square returns a 2x2 square centered on center, facing along normal,
// with edges aligned to up and normal × up.
func Square(center, normal, up math3d.Vec3) TriangleList {
	normal = normal.Normalize()
	up = up.Normalize()
	side := normal.Cross(up).Normalize()

	v := [4]math3d.Vec3{
		center.Add(side).Add(up),
		center.Add(side).Sub(up),
		center.Sub(side).Sub(up),
		center.Sub(side).Add(up),
	}
	return TriangleList{
		NewTri(v[0], v[1], v[2]),
		NewTri(v[0], v[2], v[3]),
	}
}
