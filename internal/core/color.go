package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite
	ColorSalmon
	ColorOrange
	ColorGray
	ColorDarkGray
)

// Fade maps an opacity in [0, 1] onto a brightness ramp.
// Terminals have no alpha channel, so fading text steps down through grays.
func Fade(alpha float64) Color {
	switch {
	case alpha > 0.66:
		return ColorBrightWhite
	case alpha > 0.33:
		return ColorWhite
	case alpha > 0.1:
		return ColorGray
	default:
		return ColorDarkGray
	}
}
