package core

// Color represents a foreground color for a screen cell.
// Plain colors map to ANSI codes directly; tile colors are resolved
// through the configured theme by the platform layer.
type Color uint8

// Plain colors used for text and HUD elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
)

// Tile colors. Their actual ANSI value comes from the theme.
const (
	ColorWall Color = iota + 32
	ColorFloor
	ColorBox
	ColorBoxOnTarget
	ColorTarget
	ColorPlayer
	ColorAccent
)

