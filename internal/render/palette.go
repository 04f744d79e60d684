package render

import (
	"fmt"
	"sort"
	"strings"
)

// RGB is a 24-bit color.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Theme carries the three colors every plot is built from.
type Theme struct {
	Background RGB
	Positive   RGB
	Negative   RGB
}

// DefaultTheme matches the classic canvas: black background, green traces.
func DefaultTheme() Theme {
	return Theme{
		Background: RGB{0, 0, 0},
		Positive:   RGB{0, 255, 0},
		Negative:   RGB{0, 255, 0},
	}
}

// Named color menu offered for plot customization.
var namedColors = map[string]string{
	"black":           "#000000",
	"electric-blue":   "#0000FF",
	"neon-purple":     "#BF00FF",
	"bright-cyan":     "#00FFFF",
	"vibrant-magenta": "#FF00FF",
	"neon-green":      "#39FF14",
	"vibrant-green":   "#00FF00",
	"hot-pink":        "#FF69B4",
	"neon-orange":     "#FF4500",
	"bright-yellow":   "#FFFF00",
	"electric-lime":   "#CCFF00",
	"vivid-red":       "#FF0000",
	"deep-sky-blue":   "#00BFFF",
	"vivid-violet":    "#9F00FF",
	"laser-lemon":     "#FFFF66",
	"screamin-green":  "#66FF66",
	"radical-red":     "#FF355E",
	"electric-teal":   "#00FFEF",
	"ultra-violet":    "#7F00FF",
	"neon-coral":      "#FF6EC7",
}

// ParseColor accepts a "#RRGGBB" hex string or a named menu color.
func ParseColor(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if hex, ok := namedColors[strings.ToLower(s)]; ok {
		s = hex
	}
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("bad color %q (want #RRGGBB or a named color)", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return RGB{r, g, b}, nil
}

// ColorNames returns the sorted list of recognized color names.
func ColorNames() []string {
	names := make([]string, 0, len(namedColors))
	for n := range namedColors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// blend mixes c toward bg, keeping alpha of c. Used for faint reference
// traces behind the drawn envelope.
func blend(c, bg RGB, alpha float64) RGB {
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*alpha + float64(b)*(1-alpha) + 0.5)
	}
	return RGB{mix(c.R, bg.R), mix(c.G, bg.G), mix(c.B, bg.B)}
}
