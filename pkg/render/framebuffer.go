// Package render projects world-space triangles through a direction-only
// camera, rasterizes them with a signed-distance coverage test and encodes
// the result as ANSI true-color glyph rows.
package render

import (
	"image"
)

// Framebuffer is a row-major grid of colors. Row 0 is the visual bottom row.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []Color
}

// NewFramebuffer creates a framebuffer with every pixel zeroed.
// Non-positive dimensions yield an empty buffer.
func NewFramebuffer(width, height int) *Framebuffer {
	width, height = max(width, 0), max(height, 0)
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c Color) {
	if len(fb.Pixels) == 0 {
		return
	}
	// Copy-doubling fill
	fb.Pixels[0] = c
	for i := 1; i < len(fb.Pixels); i *= 2 {
		copy(fb.Pixels[i:], fb.Pixels[:i])
	}
}

// Row returns buffer row y. The slice aliases the framebuffer.
func (fb *Framebuffer) Row(y int) []Color {
	return fb.Pixels[y*fb.Width : (y+1)*fb.Width]
}

// ToImage converts the framebuffer to a standard Go image in visual
// orientation: image row 0 is the top of the frame, i.e. buffer row
// Height-1.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		row := fb.Row(fb.Height - 1 - y)
		for x, c := range row {
			img.SetRGBA(x, y, c.ToRGBA())
		}
	}
	return img
}
