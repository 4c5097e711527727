package glasspane

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// namedColors maps the CSS color names the engine accepts to their values.
// Hosts needing anything fancier should pass a Color directly.
var namedColors = map[string]Color{
	"white":       {1, 1, 1, 1},
	"black":       {0, 0, 0, 1},
	"red":         {1, 0, 0, 1},
	"green":       {0, 0.5, 0, 1},
	"lime":        {0, 1, 0, 1},
	"blue":        {0, 0, 1, 1},
	"yellow":      {1, 1, 0, 1},
	"cyan":        {0, 1, 1, 1},
	"magenta":     {1, 0, 1, 1},
	"orange":      {1, 0.647, 0, 1},
	"purple":      {0.5, 0, 0.5, 1},
	"pink":        {1, 0.753, 0.796, 1},
	"gray":        {0.5, 0.5, 0.5, 1},
	"grey":        {0.5, 0.5, 0.5, 1},
	"silver":      {0.753, 0.753, 0.753, 1},
	"transparent": {0, 0, 0, 0},
}

// ParseColor normalizes a color string to a Color. Accepted forms:
// "#rgb", "#rrggbb", "#rrggbbaa" (leading '#' optional), and the CSS names
// in namedColors. Matching is case-insensitive.
func ParseColor(s string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[key]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(key, "#")
	switch len(hex) {
	case 3:
		// Expand shorthand: "8cf" -> "88ccff".
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	case 8:
	default:
		return Color{}, fmt.Errorf("parse color %q: not a hex code or known name", s)
	}

	alpha := 1.0
	if len(hex) == 8 {
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: bad alpha: %w", s, err)
		}
		alpha = float64(a) / 255
		hex = hex[:6]
	}

	cf, err := colorful.Hex("#" + hex)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{R: cf.R, G: cf.G, B: cf.B, A: alpha}, nil
}

// PanelColor is the polymorphic color input on PanelConfig: either a color
// string or an already-built Color. The zero value means opaque white.
type PanelColor struct {
	str    string
	val    Color
	hasVal bool
}

// ColorString specifies the panel color as a string ("#88ccff", "white").
func ColorString(s string) PanelColor {
	return PanelColor{str: s}
}

// ColorValue specifies the panel color as a pre-built Color.
func ColorValue(c Color) PanelColor {
	return PanelColor{val: c, hasVal: true}
}

// resolve normalizes the polymorphic input to a concrete Color. An
// unparseable string falls back to the default tint with a diagnostic;
// execution always continues.
func (p PanelColor) resolve() Color {
	if p.hasVal {
		return p.val
	}
	if p.str == "" {
		return ColorWhite
	}
	c, err := ParseColor(p.str)
	if err != nil {
		warnf("%v; using default tint", err)
		return ColorWhite
	}
	return c
}
