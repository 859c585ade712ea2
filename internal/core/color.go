package core

// Color represents a foreground or background color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined cell colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorBlue
	ColorBrightWhite
	ColorGray
	ColorDimGray
)
