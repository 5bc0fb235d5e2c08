package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// rowPalette is the repeating top-to-bottom color order for brick rows.
var rowPalette = []Color{ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorCyan, ColorBlue, ColorMagenta}

// RowColor returns the palette color for the given row, cycling when rows
// outnumber palette entries.
func RowColor(row int) Color {
	if row < 0 {
		row = -row
	}
	return rowPalette[row%len(rowPalette)]
}
