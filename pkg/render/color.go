package render

import (
	"image/color"
	"math"
	"strconv"
	"unicode/utf8"
)

// glyphRamp orders characters by increasing perceived coverage.
// Alpha 0 maps to the first entry and alpha 1 to the full block.
const glyphRamp = ".'`^\",:;Il!i><~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$█"

// glyphs is the ramp indexed by rune. Read-only after init.
var glyphs = []rune(glyphRamp)

// Color is an RGBA color with float channels nominally in [0, 1].
// Channels are not clamped at construction.
type Color struct {
	R, G, B, A float64
}

// NewColor creates a color from all four channels.
func NewColor(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Opaque creates a color with alpha 1.
func Opaque(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Fade returns the color with alpha multiplied by s. RGB is untouched.
func (c Color) Fade(s float64) Color {
	c.A *= s
	return c
}

// Combine composites src onto c. Every channel, alpha included, becomes
// clamp(dst + src*src.A, 0, 1). This is additive, not Porter-Duff "over".
func (c Color) Combine(src Color) Color {
	return Color{
		R: combineChannel(c.R, src.R, src.A),
		G: combineChannel(c.G, src.G, src.A),
		B: combineChannel(c.B, src.B, src.A),
		A: combineChannel(c.A, src.A, src.A),
	}
}

func combineChannel(dst, src, amount float64) float64 {
	return clampUnit(dst + src*amount)
}

// clampUnit clamps to [0, 1]. NaN becomes 0.
func clampUnit(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// channelByte converts a channel to 0..255 after clamping.
func channelByte(v float64) uint8 {
	return uint8(math.Round(clampUnit(v) * 255))
}

// glyphIndex maps alpha onto the ramp with round(A*(n-1)). Out-of-range
// alpha clamps to the ends of the ramp and NaN maps to the first entry.
func (c Color) glyphIndex() int {
	last := len(glyphs) - 1
	i := math.Round(c.A * float64(last))
	switch {
	case !(i > 0):
		return 0
	case i > float64(last):
		return last
	}
	return int(i)
}

// Glyph returns the ramp character for the color's alpha.
func (c Color) Glyph() rune {
	return glyphs[c.glyphIndex()]
}

// AppendANSI appends the true-color foreground escape and glyph for c.
func (c Color) AppendANSI(dst []byte) []byte {
	dst = append(dst, "\x1b[38;2;"...)
	dst = strconv.AppendUint(dst, uint64(channelByte(c.R)), 10)
	dst = append(dst, ';')
	dst = strconv.AppendUint(dst, uint64(channelByte(c.G)), 10)
	dst = append(dst, ';')
	dst = strconv.AppendUint(dst, uint64(channelByte(c.B)), 10)
	dst = append(dst, 'm')
	return utf8.AppendRune(dst, c.Glyph())
}

// ANSI returns the escape sequence "\x1b[38;2;R;G;Bm" followed by the glyph.
func (c Color) ANSI() string {
	return string(c.AppendANSI(make([]byte, 0, maxCellLen)))
}

// maxCellLen is the longest possible encoded cell: 19 bytes of escape plus a
// 3-byte glyph.
const maxCellLen = 22

// EncodedLen returns len(c.ANSI()) without allocating.
func (c Color) EncodedLen() int {
	return len("\x1b[38;2;;;m") +
		digits(channelByte(c.R)) + digits(channelByte(c.G)) + digits(channelByte(c.B)) +
		utf8.RuneLen(c.Glyph())
}

func digits(b uint8) int {
	switch {
	case b >= 100:
		return 3
	case b >= 10:
		return 2
	}
	return 1
}

// ToRGBA converts to an 8-bit color with every channel clamped.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: channelByte(c.R),
		G: channelByte(c.G),
		B: channelByte(c.B),
		A: channelByte(c.A),
	}
}

// FromRGBA converts an 8-bit color.
func FromRGBA(c color.RGBA) Color {
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}
