package math3d

import (
	"math"
	"testing"
)

func vec3Near(a, b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

func TestVec2Perp(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want float64
	}{
		{"x then y", V2(1, 0), V2(0, 1), 1},
		{"y then x", V2(0, 1), V2(1, 0), -1},
		{"parallel", V2(2, 2), V2(1, 1), 0},
		{"general", V2(3, 1), V2(2, 5), 13},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Perp(tc.b); got != tc.want {
				t.Errorf("%v.Perp(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a, b := V2(1, 2), V2(3, -4)

	if got := a.Add(b); got != V2(4, -2) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != V2(-2, 6) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != V2(2, 4) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v", got)
	}
	if got := b.Len(); got != 5 {
		t.Errorf("Len = %v", got)
	}
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("zero Normalize = %v", got)
	}
}

func TestVec3Cross(t *testing.T) {
	// Right-handed: x × y = z
	if got := V3(1, 0, 0).Cross(V3(0, 1, 0)); got != V3(0, 0, 1) {
		t.Errorf("x × y = %v, want (0, 0, 1)", got)
	}
	// -z × y = +x, the side vector of a camera looking down -z
	if got := V3(0, 0, -1).Cross(Up()); got != V3(1, 0, 0) {
		t.Errorf("-z × y = %v, want (1, 0, 0)", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := V3(3, 0, 4).Normalize()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("normalized length = %v, want 1", n.Len())
	}
	if got := Zero3().Normalize(); got != Zero3() {
		t.Errorf("zero Normalize = %v, want zero", got)
	}
}

func TestVec3NormalizeStrictZero(t *testing.T) {
	got := Zero3().NormalizeStrict()
	if !math.IsNaN(got.X) || !math.IsNaN(got.Y) || !math.IsNaN(got.Z) {
		t.Errorf("zero NormalizeStrict = %v, want NaN components", got)
	}
	if got.IsFinite() {
		t.Error("NaN vector reported as finite")
	}
	if !V3(1, 2, 3).NormalizeStrict().IsFinite() {
		t.Error("regular vector reported as non-finite")
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	tests := []struct {
		name string
		axis Vec3
		in   Vec3
		want Vec3
	}{
		{"z axis turns x to y", V3(0, 0, 1), V3(1, 0, 0), V3(0, 1, 0)},
		{"y axis turns z to x", V3(0, 1, 0), V3(0, 0, 1), V3(1, 0, 0)},
		{"y axis turns -z to -x", V3(0, 1, 0), V3(0, 0, -1), V3(-1, 0, 0)},
		{"axis is fixed", V3(0, 1, 0), V3(0, 1, 0), V3(0, 1, 0)},
		{"unnormalized axis", V3(0, 0, 5), V3(1, 0, 0), V3(0, 1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Rotate(tc.axis, math.Pi/2).MulVec3Dir(tc.in)
			if !vec3Near(got, tc.want, 1e-12) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMat4TransformPoint(t *testing.T) {
	m := Translate(V3(1, 2, 3)).Mul(ScaleUniform(2))
	got := m.MulVec3(V3(1, 1, 1))
	if !vec3Near(got, V3(3, 4, 5), 1e-12) {
		t.Errorf("got %v, want (3, 4, 5)", got)
	}
	// Directions ignore translation
	if got := m.MulVec3Dir(V3(1, 0, 0)); !vec3Near(got, V3(2, 0, 0), 1e-12) {
		t.Errorf("direction got %v, want (2, 0, 0)", got)
	}
	if Translate(Zero3()).Mul(m) != m {
		t.Error("zero translation product changed the matrix")
	}
	// Mul applies the right operand first.
	if got := ScaleUniform(2).Mul(Translate(V3(1, 0, 0))).MulVec3(Zero3()); !vec3Near(got, V3(2, 0, 0), 1e-12) {
		t.Errorf("scale after translate got %v, want (2, 0, 0)", got)
	}
}
