package bubble

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/pop-bubble/internal/config"
	"github.com/vovakirdan/pop-bubble/internal/core"
)

// Bubble geometry in unit-cell coordinates (the cell spans 0..1 on both axes).
const (
	bubbleRadius = 1 / 2.5    // circle radius
	highlightPos = 0.5 / 1.75 // x and y of the white highlight
	hoverBoost   = 0.35       // extra whitening for the hovered group
	centerPos    = 0.5        // circle center on both axes
)

var white = colorful.Color{R: 1, G: 1, B: 1}

// Palette maps color indices to display colors. Entry 0 is the empty color
// and is never drawn as a bubble.
type Palette struct {
	colors []colorful.Color
}

// NewPalette parses a list of color names or hex strings.
func NewPalette(names []string) (Palette, error) {
	if len(names) < 2 {
		return Palette{}, fmt.Errorf("bubble: palette needs at least 2 colors, got %d", len(names))
	}
	colors := make([]colorful.Color, len(names))
	for i, name := range names {
		c, err := config.ParseColor(name)
		if err != nil {
			return Palette{}, fmt.Errorf("bubble: palette[%d]: %w", i, err)
		}
		colors[i] = c
	}
	return Palette{colors: colors}, nil
}

// Size returns the number of palette entries, including the empty one.
func (p Palette) Size() int {
	return len(p.colors)
}

// Base returns the flat display color for index c.
func (p Palette) Base(c Color) core.Color {
	if int(c) >= len(p.colors) {
		return core.NoColor
	}
	return core.Color(p.colors[c].Clamped().Hex())
}

// Shade returns the color of a bubble pixel at unit-cell position (u, v).
// The second result is false when the point falls outside the bubble.
// Shading goes from the base color at the rim to white at the highlight.
func (p Palette) Shade(c Color, u, v float64, hovered bool) (core.Color, bool) {
	if c == Empty || int(c) >= len(p.colors) {
		return core.NoColor, false
	}
	if math.Hypot(u-centerPos, v-centerPos) > bubbleRadius {
		return core.NoColor, false
	}

	// Longest distance from the highlight to the rim.
	reach := bubbleRadius + math.Hypot(centerPos-highlightPos, centerPos-highlightPos)
	t := 1 - math.Hypot(u-highlightPos, v-highlightPos)/reach
	if hovered {
		t += hoverBoost
	}
	t = core.ClampF(t, 0, 1)

	return core.Color(p.colors[c].BlendLab(white, t).Clamped().Hex()), true
}
