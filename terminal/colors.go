package terminal

import "github.com/gdamore/tcell/v2"

// RGB palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbPortal     = tcell.NewRGBColor(100, 150, 255) // Blue for teleport edges
	RgbWall       = tcell.NewRGBColor(120, 120, 140) // Slate
	RgbSnakeHead  = tcell.NewRGBColor(50, 255, 50)   // Bright green
	RgbSnakeBody  = tcell.NewRGBColor(0, 200, 0)     // Green
	RgbSnakeDead  = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbFruit      = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbHighScore  = tcell.NewRGBColor(255, 255, 0)   // Yellow
	RgbOverlay    = tcell.NewRGBColor(40, 42, 58)    // Panel background
	RgbSelection  = tcell.NewRGBColor(255, 165, 0)   // Orange selection bar
)
