package theme

import (
	"image/color"
)

// Theme defines the colors of the editor chrome. Cell colors come from the
// document and are never themed.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window area not covered by cells
	Foreground color.RGBA // Text color

	// Canvas
	GridLine color.RGBA

	// Toolbar
	ToolbarBackground color.RGBA
	ToolActive        color.RGBA // Background of the current mode tool
	ButtonText        color.RGBA
	ButtonBorder      color.RGBA

	// Palette
	PaletteSelected color.RGBA // Border of the selected swatch

	// Message overlay
	MessageBackground color.RGBA
}

// Default returns the built-in light theme.
func Default() *Theme {
	return &Theme{
		Name:              "Default",
		Background:        color.RGBA{255, 255, 255, 255},
		Foreground:        color.RGBA{0, 0, 0, 255},
		GridLine:          color.RGBA{200, 200, 200, 255},
		ToolbarBackground: color.RGBA{220, 220, 220, 255},
		ToolActive:        color.RGBA{180, 180, 250, 255},
		ButtonText:        color.RGBA{0, 0, 0, 255},
		ButtonBorder:      color.RGBA{0, 0, 0, 255},
		PaletteSelected:   color.RGBA{0, 120, 215, 255},
		MessageBackground: color.RGBA{255, 255, 255, 230},
	}
}

// Dark returns the built-in dark theme.
func Dark() *Theme {
	return &Theme{
		Name:              "Dark",
		Background:        color.RGBA{30, 30, 30, 255},
		Foreground:        color.RGBA{230, 230, 230, 255},
		GridLine:          color.RGBA{90, 90, 90, 255},
		ToolbarBackground: color.RGBA{50, 50, 50, 255},
		ToolActive:        color.RGBA{70, 70, 140, 255},
		ButtonText:        color.RGBA{230, 230, 230, 255},
		ButtonBorder:      color.RGBA{120, 120, 120, 255},
		PaletteSelected:   color.RGBA{255, 200, 0, 255},
		MessageBackground: color.RGBA{40, 40, 40, 230},
	}
}
