package core

import "strings"

// Color distinguishes targets and trophies. A target is satisfied only by a
// trophy of the same color.
type Color uint8

const (
	ColorNone Color = iota // carried by variants that have no color
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
)

// String returns the lowercase name of the color.
func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// ParseColor converts a color name or its initial to a Color.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "red", "r":
		return ColorRed, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "yellow", "y":
		return ColorYellow, true
	default:
		return ColorNone, false
	}
}

// AllColors returns every color a target or trophy can carry.
func AllColors() []Color {
	return []Color{ColorRed, ColorGreen, ColorBlue, ColorYellow}
}
