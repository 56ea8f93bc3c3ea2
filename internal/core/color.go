package core

// Color is a 24-bit terminal color in "#rrggbb" form.
// The zero value means "use the terminal default".
type Color string

// NoColor leaves the terminal default in place.
const NoColor Color = ""

// Colors shared by the HUD and board frame.
const (
	ColorBlack Color = "#000000"
	ColorWhite Color = "#ffffff"
	ColorGray  Color = "#888888"
	ColorDim   Color = "#5f5f5f"
	ColorTitle Color = "#f5f5f5"
	ColorHint  Color = "#ffd75f"
)

// IsSet reports whether the color overrides the terminal default.
func (c Color) IsSet() bool {
	return c != NoColor
}
