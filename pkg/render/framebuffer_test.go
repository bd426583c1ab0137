package render

import (
	"image/color"
	"testing"
)

func TestNewFramebuffer(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	if fb.Width != 4 || fb.Height != 3 || len(fb.Pixels) != 12 {
		t.Errorf("got %dx%d with %d pixels", fb.Width, fb.Height, len(fb.Pixels))
	}

	empty := NewFramebuffer(-1, 5)
	if empty.Width != 0 || len(empty.Pixels) != 0 {
		t.Errorf("negative width: got %dx%d", empty.Width, empty.Height)
	}
}

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer(7, 5)
	fb.Clear(DefaultBackground)
	for i, c := range fb.Pixels {
		if c != DefaultBackground {
			t.Fatalf("pixel %d = %+v", i, c)
		}
	}
	NewFramebuffer(0, 0).Clear(DefaultBackground)
}

func TestFramebufferRowAliases(t *testing.T) {
	fb := NewFramebuffer(4, 2)
	fb.Row(1)[2] = Opaque(0, 1, 0)
	if fb.Pixels[1*4+2] != Opaque(0, 1, 0) {
		t.Error("Row should alias the framebuffer")
	}
}

func TestFramebufferToImageFlips(t *testing.T) {
	fb := NewFramebuffer(2, 3)
	fb.Clear(Opaque(0, 0, 0))
	fb.Row(0)[0] = Opaque(1, 0, 0)
	fb.Row(2)[1] = Opaque(0, 0, 1)

	img := fb.ToImage()
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 3 {
		t.Fatalf("bounds = %v", b)
	}
	if got := img.RGBAAt(0, 2); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("bottom-left = %v, want red", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("top-right = %v, want blue", got)
	}
}
