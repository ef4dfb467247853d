package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)       // Black
	RgbGridDot    = tcell.NewRGBColor(40, 40, 40)    // Faint grid
	RgbBorder     = tcell.NewRGBColor(90, 90, 90)    // Board frame
	RgbSnakeHead  = tcell.NewRGBColor(0, 200, 0)     // Dark Green, head
	RgbSnakeBody  = tcell.NewRGBColor(0, 255, 0)     // Green
	RgbFood       = tcell.NewRGBColor(255, 0, 0)     // Red
	RgbText       = tcell.NewRGBColor(255, 255, 255) // White
	RgbPaused     = tcell.NewRGBColor(255, 255, 0)   // Yellow
	RgbGameOver   = tcell.NewRGBColor(255, 0, 0)     // Red
	RgbBoardFull  = tcell.NewRGBColor(0, 255, 0)     // Green
	RgbHint       = tcell.NewRGBColor(150, 150, 150) // Gray
)

// Glyphs
const (
	GlyphSegment = '█'
	GlyphGridDot = '·'
)
