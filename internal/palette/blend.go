package palette

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Blend linearly blends two hex colors in RGB space, rounding each channel
// independently, and returns a "#rrggbb" string. Accepts both 3- and 6-digit
// hex forms, with or without a leading '#'. Progress outside [0, 1] is
// clamped; an unparseable color falls back to the default background so a
// malformed palette can never fault the viewer.
func Blend(c1, c2 string, t float64) string {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return parse(c1).BlendRgb(parse(c2), t).Hex()
}

// Normalize parses a hex color and re-renders it as a 6-digit "#rrggbb"
// string, falling back to the default background.
func Normalize(c string) string {
	return parse(c).Hex()
}

var defaultBackground, _ = colorful.Hex(DefaultBackground)

func parse(s string) colorful.Color {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return defaultBackground
	}
	return c
}
