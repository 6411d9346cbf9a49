package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI 256-color codes.
type Color uint8

// Colors used by the snake board.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorRed
	ColorYellow
	ColorGray
	ColorBrightWhite
)
