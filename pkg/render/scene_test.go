package render

import (
	"errors"
	"math"
	"testing"

	"github.com/taigrr/tris/pkg/math3d"
)

// facingScene is a triangle straight ahead of a camera at z=1 looking down -Z.
func facingScene(w, h int) *Scene {
	cam := NewCamera(math3d.V3(0, 0, 1), math3d.V3(0, 0, -1), math3d.Up())
	return NewScene(cam, NewViewport(w, h)).AddTriangles(NewTri(
		math3d.V3(-0.5, -0.5, 0),
		math3d.V3(0.5, -0.5, 0),
		math3d.V3(0, 0.5, 0),
	))
}

func TestSceneFacingTriangleCoversCenter(t *testing.T) {
	s := facingScene(10, 10)
	fb := s.RenderBuffer()

	if got := fb.Row(5)[5]; got == DefaultBackground {
		t.Error("center pixel should differ from the background")
	}
	for _, p := range [][2]int{{0, 0}, {9, 0}, {0, 9}, {9, 9}} {
		if got := fb.Row(p[1])[p[0]]; got != DefaultBackground {
			t.Errorf("corner %v = %+v, want background", p, got)
		}
	}
}

func TestSceneTriangleBehindCameraIsCulled(t *testing.T) {
	s := facingScene(10, 10)
	s.Camera.Normal = math3d.V3(0, 0, 1)

	fb := s.RenderBuffer()
	for i, c := range fb.Pixels {
		if c != DefaultBackground {
			t.Fatalf("pixel %d = %+v, want background", i, c)
		}
	}
}

// A camera sitting on a vertex of a triangle that contains its view axis sees
// the triangle edge-on, so nothing is drawn.
func TestSceneEdgeOnTriangleIsInvisible(t *testing.T) {
	cam := NewCamera(math3d.V3(0, 0, 1), math3d.V3(0, 0, -1), math3d.Up())
	s := NewScene(cam, NewViewport(10, 10)).AddTriangles(NewTri(
		math3d.V3(0, 0, 0),
		math3d.V3(0, 0, 1),
		math3d.V3(0, 1, 0),
	))

	fb := s.RenderBuffer()
	for i, c := range fb.Pixels {
		if c != DefaultBackground {
			t.Fatalf("pixel %d = %+v, want background", i, c)
		}
	}
}

func TestSceneDegenerateCameraRendersBackground(t *testing.T) {
	s := facingScene(6, 4)
	s.Camera.Up = math3d.V3(0, 0, 1)

	if err := s.Camera.Validate(); !errors.Is(err, ErrDegenerateCamera) {
		t.Fatalf("Validate() = %v", err)
	}
	fb := s.RenderBuffer()
	for i, c := range fb.Pixels {
		if c != DefaultBackground {
			t.Fatalf("pixel %d = %+v, want background", i, c)
		}
	}
}

func TestSceneInsertionOrder(t *testing.T) {
	a := NewTri(math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(0, 1, 0))
	b := NewTri(math3d.V3(0, 0, 1), math3d.V3(1, 0, 1), math3d.V3(0, 1, 1))
	sq := Square(math3d.Zero3(), math3d.V3(0, 0, 1), math3d.Up())

	s := NewScene(Upright(math3d.Zero3(), math3d.V3(0, 0, -1)), NewViewport(4, 4))
	s.AddTriangles(a).AddShape(sq).AddTriangles(b)

	got := s.Triangles()
	if len(got) != 4 || s.Len() != 4 {
		t.Fatalf("len = %d / %d, want 4", len(got), s.Len())
	}
	want := []Triangle{a, sq[0], sq[1], b}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("triangle %d = %v, want %v", i, got[i], want[i])
		}
	}

	got[0] = b
	if s.Triangles()[0] != a {
		t.Error("Triangles should return a copy")
	}
}

func TestSceneProjectLargeMatchesSequential(t *testing.T) {
	cam := NewCamera(math3d.V3(0.3, -0.2, 4), math3d.V3(0, 0, -1), math3d.Up())
	s := NewScene(cam, NewViewport(8, 8))

	n := projectChunk*2 + 37
	for i := range n {
		f := float64(i)
		s.AddTriangles(NewTri(
			math3d.V3(math.Sin(f), math.Cos(f), 0),
			math3d.V3(math.Sin(f*1.3), 0.5, math.Cos(f*0.7)),
			math3d.V3(-0.5, math.Sin(f*0.2), 0.1),
		))
	}

	got := s.Project()
	if len(got) != n {
		t.Fatalf("len = %d, want %d", len(got), n)
	}
	for i, tri := range s.Triangles() {
		if want := cam.ProjectTriangle(tri); got[i] != want {
			t.Fatalf("triangle %d = %+v, want %+v", i, got[i], want)
		}
	}
}

func TestSceneProjectSnapshotsCamera(t *testing.T) {
	s := facingScene(4, 4)
	before := s.Project()
	s.Camera.Translate(math3d.V3(1, 0, 0))
	after := s.Project()

	if before[0] == after[0] {
		t.Error("projection should follow camera changes between calls")
	}
}

func TestSceneRenderRows(t *testing.T) {
	s := facingScene(12, 7)
	rows := s.Render()
	fb := s.RenderBuffer()

	if len(rows) != 7 {
		t.Fatalf("rows = %d, want 7", len(rows))
	}
	for y, row := range rows {
		if want := EncodeRow(fb.Row(y)); row != want {
			t.Errorf("row %d differs from buffer row", y)
		}
	}
}

func TestViewportValidate(t *testing.T) {
	tests := []struct {
		vp      Viewport
		wantErr bool
	}{
		{NewViewport(10, 10), false},
		{NewViewport(1, 1), false},
		{NewViewport(0, 10), true},
		{NewViewport(10, 0), true},
		{NewViewport(-3, 4), true},
	}

	for _, tc := range tests {
		err := tc.vp.Validate()
		if (err != nil) != tc.wantErr {
			t.Errorf("%+v: Validate() = %v, wantErr %v", tc.vp, err, tc.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidViewport) {
			t.Errorf("%+v: error %v does not wrap ErrInvalidViewport", tc.vp, err)
		}
	}
}

func BenchmarkSceneRender(b *testing.B) {
	s := facingScene(120, 40)
	s.AddShape(Square(math3d.V3(0.4, 0.2, -0.5), math3d.V3(0, 0, 1), math3d.Up()))

	for b.Loop() {
		_ = s.Render()
	}
}
