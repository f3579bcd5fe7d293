// Package core holds the cell and style types shared by the clock face
// and the display backend.
package core

import (
	"github.com/rivo/uniseg"
)

// Color is an entry of the terminal palette, or the terminal's default
// color. Palette entries follow the user's terminal theme.
type Color struct {
	// Index is the palette entry (0-255). Ignored when Default is set.
	Index uint8

	// Default selects the terminal's own foreground or background.
	Default bool
}

// ColorDefault represents the terminal's default color.
var ColorDefault = Color{Default: true}

// Standard ANSI palette entries used by the clock face.
var (
	ColorANSIRed    = PaletteColor(1)
	ColorANSIGreen  = PaletteColor(2)
	ColorANSIYellow = PaletteColor(3)
	ColorANSIBlue   = PaletteColor(4)
	ColorANSICyan   = PaletteColor(6)
)

// PaletteColor returns the palette entry at index.
func PaletteColor(index uint8) Color {
	return Color{Index: index}
}

// IsDefault returns true if this is the terminal's default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// Style is the foreground and background of a cell. Styles are
// comparable with ==.
type Style struct {
	Foreground Color
	Background Color
}

// DefaultStyle returns the default terminal style.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// NewStyle creates a style with the given foreground color on the
// default background.
func NewStyle(fg Color) Style {
	return Style{Foreground: fg, Background: ColorDefault}
}

// Cell represents a single terminal cell.
type Cell struct {
	Rune rune

	// Width is the number of columns the rune occupies.
	Width int

	Style Style
}

// EmptyCell returns a blank cell with default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1, Style: DefaultStyle()}
}

// NewStyledCell creates a cell with the given rune and style.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: style}
}

// StringFromCells joins the runes of cells, skipping zero runes.
func StringFromCells(cells []Cell) string {
	runes := make([]rune, 0, len(cells))
	for _, c := range cells {
		if c.Rune != 0 {
			runes = append(runes, c.Rune)
		}
	}
	return string(runes)
}

// RuneWidth returns the display width of a rune.
// Control characters occupy no columns.
func RuneWidth(r rune) int {
	if r < 32 || r == 0x7F {
		return 0
	}
	return uniseg.StringWidth(string(r))
}

// ScreenRect is a rectangular region on screen. Top and Left are
// inclusive, Bottom and Right exclusive.
type ScreenRect struct {
	Top, Left, Bottom, Right int
}

// RectFromSize creates a rectangle from position and size.
func RectFromSize(top, left, height, width int) ScreenRect {
	return ScreenRect{Top: top, Left: left, Bottom: top + height, Right: left + width}
}

// IsEmpty returns true if the rectangle has no area.
func (r ScreenRect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains returns true if (x, y) is within the rectangle.
func (r ScreenRect) Contains(x, y int) bool {
	return y >= r.Top && y < r.Bottom &&
		x >= r.Left && x < r.Right
}
