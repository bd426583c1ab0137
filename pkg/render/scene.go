package render

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidViewport is returned by Viewport.Validate for non-positive
// extents.
var ErrInvalidViewport = errors.New("render: invalid viewport")

// Viewport is the output size in terminal cells.
type Viewport struct {
	Width  int
	Height int
}

// NewViewport creates a viewport.
func NewViewport(width, height int) Viewport {
	return Viewport{Width: width, Height: height}
}

// Validate reports whether both extents are positive.
func (v Viewport) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidViewport, v.Width, v.Height)
	}
	return nil
}

// projectChunk is the number of triangles projected per goroutine.
const projectChunk = 512

// Scene holds world triangles, a camera and the viewport they render to.
// Triangles accumulate for the life of the scene.
type Scene struct {
	Viewport   Viewport
	Camera     *Camera
	Rasterizer *Rasterizer

	tris []Triangle
}

// NewScene creates an empty scene with a default rasterizer.
func NewScene(camera *Camera, viewport Viewport) *Scene {
	return &Scene{
		Viewport:   viewport,
		Camera:     camera,
		Rasterizer: NewRasterizer(),
	}
}

// AddShape appends the triangles of each shape and returns the scene.
func (s *Scene) AddShape(shapes ...Shape) *Scene {
	for _, shape := range shapes {
		s.tris = append(s.tris, shape.Triangles()...)
	}
	return s
}

// AddTriangles appends triangles and returns the scene.
func (s *Scene) AddTriangles(tris ...Triangle) *Scene {
	s.tris = append(s.tris, tris...)
	return s
}

// Triangles returns a copy of the scene's triangles in insertion order.
func (s *Scene) Triangles() []Triangle {
	return slices.Clone(s.tris)
}

// Len returns the number of triangles.
func (s *Scene) Len() int {
	return len(s.tris)
}

// Project projects every triangle through a snapshot of the camera.
func (s *Scene) Project() []ScreenTriangle {
	cam := *s.Camera
	out := make([]ScreenTriangle, len(s.tris))

	if len(s.tris) <= projectChunk {
		for i, tri := range s.tris {
			out[i] = cam.ProjectTriangle(tri)
		}
		return out
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for lo := 0; lo < len(s.tris); lo += projectChunk {
		hi := min(lo+projectChunk, len(s.tris))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				out[i] = cam.ProjectTriangle(s.tris[i])
			}
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// RenderBuffer projects and rasterizes the scene into a new framebuffer.
func (s *Scene) RenderBuffer() *Framebuffer {
	fb, _ := s.RenderContext(context.Background())
	return fb
}

// RenderContext is RenderBuffer with cancellation between rows.
func (s *Scene) RenderContext(ctx context.Context) (*Framebuffer, error) {
	if err := s.Camera.Validate(); err != nil {
		Logger().Warn("rendering with degenerate camera",
			"position", s.Camera.Position,
			"normal", s.Camera.Normal,
			"up", s.Camera.Up,
		)
	}
	return s.Rasterizer.RenderContext(ctx, s.Project(), s.Viewport)
}

// Render returns one encoded string per buffer row, bottom row first.
func (s *Scene) Render() []string {
	return s.RenderBuffer().EncodeRows()
}
