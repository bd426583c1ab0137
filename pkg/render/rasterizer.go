package render

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/taigrr/tris/pkg/math3d"
)

// DefaultBackground is the color of cells no triangle covers.
var DefaultBackground = Opaque(0.1, 0, 0)

// Shader turns a covered cell's signed distance (always negative) and
// projection distance into a color.
type Shader func(signedDistance, projectionDistance float64) Color

// DefaultShader maps (signedDistance*5, 1, projectionDistance) to opaque RGB.
// Red goes negative inside the triangle and clamps to 0 on output, so only
// green and the distance-driven blue survive encoding.
func DefaultShader(signedDistance, projectionDistance float64) Color {
	return Opaque(signedDistance*5, 1, projectionDistance)
}

// FrameStats describes the last frame a Rasterizer produced.
type FrameStats struct {
	Triangles    int           // Screen triangles tested per cell
	Cells        int           // Width * Height
	Covered      int           // Cells at least one triangle covered
	BehindCamera int           // (cell, triangle) pairs skipped for negative projection distance
	Elapsed      time.Duration // Wall time of the render
}

// Rasterizer sweeps every cell of a viewport and tests it against every
// screen triangle.
//
// There is no depth buffer and no sorting: triangles are visited in slice
// order and a later covering triangle overwrites an earlier one.
//
// A Rasterizer must not be used for concurrent renders; Stats is written at
// the end of each one.
type Rasterizer struct {
	Background Color
	Shader     Shader

	// Workers bounds the number of rows rendered at once.
	// Zero or negative means GOMAXPROCS.
	Workers int

	Stats FrameStats
}

// NewRasterizer creates a rasterizer with the default background and shader.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{
		Background: DefaultBackground,
		Shader:     DefaultShader,
	}
}

func (r *Rasterizer) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (r *Rasterizer) shader() Shader {
	if r.Shader == nil {
		return DefaultShader
	}
	return r.Shader
}

// NDC maps a cell index to normalized device coordinates:
// index*2/extent - 1. Both axes use the same mapping, so non-square
// viewports stretch.
func NDC(index, extent int) float64 {
	return float64(index)*2/float64(extent) - 1
}

// Sample returns the color at normalized point p and whether any triangle
// covered it.
func (r *Rasterizer) Sample(tris []ScreenTriangle, p math3d.Vec2) (Color, bool) {
	c, covered, _ := sample(r.shader(), tris, p, r.Background)
	return c, covered
}

// sample composites tris over base at p.
func sample(shade Shader, tris []ScreenTriangle, p math3d.Vec2, base Color) (c Color, covered bool, behind int) {
	c = base
	for _, tri := range tris {
		pd := tri.ProjectionDistance(p)
		if pd < 0 {
			behind++
			continue
		}
		// NaN compares false and leaves the cell untouched.
		if sd := tri.SignedDistance(p); sd < 0 {
			c = shade(sd, pd)
			covered = true
		}
	}
	return c, covered, behind
}

// Render rasterizes tris into a freshly allocated framebuffer.
func (r *Rasterizer) Render(tris []ScreenTriangle, vp Viewport) *Framebuffer {
	fb, _ := r.RenderContext(context.Background(), tris, vp)
	return fb
}

// RenderContext is Render with cancellation checked between rows. The
// framebuffer is nil when ctx ends before every row is done.
func (r *Rasterizer) RenderContext(ctx context.Context, tris []ScreenTriangle, vp Viewport) (*Framebuffer, error) {
	start := time.Now()
	fb := NewFramebuffer(vp.Width, vp.Height)
	fb.Clear(r.Background)
	shade := r.shader()

	var covered, behind atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())
	for y := range fb.Height {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			py := NDC(y, fb.Height)
			row := fb.Row(y)
			var rowCovered, rowBehind int
			for x := range row {
				c, ok, b := sample(shade, tris, math3d.V2(NDC(x, fb.Width), py), row[x])
				row[x] = c
				rowBehind += b
				if ok {
					rowCovered++
				}
			}
			covered.Add(int64(rowCovered))
			behind.Add(int64(rowBehind))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.Stats = FrameStats{
		Triangles:    len(tris),
		Cells:        len(fb.Pixels),
		Covered:      int(covered.Load()),
		BehindCamera: int(behind.Load()),
		Elapsed:      time.Since(start),
	}
	Logger().Debug("frame rendered",
		"triangles", r.Stats.Triangles,
		"width", fb.Width,
		"height", fb.Height,
		"covered", r.Stats.Covered,
		"behind_camera", r.Stats.BehindCamera,
		"elapsed", r.Stats.Elapsed,
	)
	return fb, nil
}
