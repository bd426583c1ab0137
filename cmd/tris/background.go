package main

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/taigrr/tris/pkg/render"
)

// parseBackground accepts "", an SVG color name or a #rrggbb hex string
// (the # is optional). The empty string selects the renderer's default.
func parseBackground(s string) (render.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return render.DefaultBackground, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return render.FromRGBA(c), nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return render.Color{}, fmt.Errorf("background %q: %w", s, err)
	}
	return render.Opaque(c.R, c.G, c.B), nil
}
