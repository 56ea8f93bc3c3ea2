package config

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// namedColors maps the CSS-style names accepted in palettes to hex values.
var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"gray":    "#888888",
	"grey":    "#888888",
	"red":     "#ff0000",
	"green":   "#008000",
	"lime":    "#00ff00",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"pink":    "#ffc0cb",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"teal":    "#008080",
	"navy":    "#000080",
	"maroon":  "#800000",
	"olive":   "#808000",
	"brown":   "#a52a2a",
	"gold":    "#ffd700",
	"violet":  "#ee82ee",
	"indigo":  "#4b0082",
	"coral":   "#ff7f50",
	"salmon":  "#fa8072",
}

// ParseColor converts a color name ("red") or hex string ("#ff0000") into a
// color value.
func ParseColor(s string) (colorful.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if hex, ok := namedColors[name]; ok {
		name = hex
	}
	if !strings.HasPrefix(name, "#") {
		return colorful.Color{}, fmt.Errorf("unknown color %q", s)
	}
	c, err := colorful.Hex(name)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("bad hex color %q: %w", s, err)
	}
	return c, nil
}
