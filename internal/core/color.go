package core

// Color is an index into the console's fixed 16-entry palette.
// Carts draw with palette indices; the platform decides how each
// index maps to an actual terminal color.
type Color uint8

// The pocket palette. Index 0 is the background/clear color.
const (
	ColorBlack Color = iota
	ColorStorm
	ColorPlum
	ColorForest
	ColorBrown
	ColorCharcoal
	ColorSlate
	ColorWhite
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorBlue
	ColorIndigo
	ColorPink
	ColorPeach
)

// PaletteSize is the number of colors in the pocket palette.
const PaletteSize = 16

// Valid reports whether the color is inside the palette.
func (c Color) Valid() bool {
	return c < PaletteSize
}
