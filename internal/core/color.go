package core

// Color is a foreground color for a screen cell.
// Values map onto ANSI 256-color codes in the platform renderer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorRed
	ColorBrightRed
	ColorYellow
	ColorCyan
	ColorGray
)
