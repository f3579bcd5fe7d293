package clockface

import (
	"strings"
	"time"

	"github.com/dshills/asciiclock/internal/renderer/core"
)

// Span is a run of text drawn with a single style.
type Span struct {
	Text  string
	Style core.Style
}

// Row is one styled row of a frame.
type Row []Span

// String returns the text of the row without styling.
func (r Row) String() string {
	var b strings.Builder
	for _, s := range r {
		b.WriteString(s.Text)
	}
	return b.String()
}

// palette maps each category to its foreground color. Empty keeps the
// terminal default.
var palette = [...]core.Color{
	Empty:         core.ColorDefault,
	CircleOutline: core.ColorANSICyan,
	NumeralOrTick: core.ColorANSIYellow,
	HourHand:      core.ColorANSIGreen,
	MinuteHand:    core.ColorANSIBlue,
	SecondHand:    core.ColorANSIRed,
}

// CategoryStyle returns the style used for a category when color is on.
func CategoryStyle(c Category) core.Style {
	if int(c) >= len(palette) {
		return core.DefaultStyle()
	}
	return core.NewStyle(palette[c])
}

// Style converts a grid into styled rows, one span per cell. With color
// off every span carries the default style.
func Style(grid *Grid, color bool) []Row {
	cells := grid.Rows()
	rows := make([]Row, len(cells))
	for y, cellRow := range cells {
		row := make(Row, len(cellRow))
		for x, cell := range cellRow {
			style := core.DefaultStyle()
			if color {
				style = CategoryStyle(cell.Category)
			}
			row[x] = Span{Text: string(cell.Char), Style: style}
		}
		rows[y] = row
	}
	return rows
}

// Render rasterizes and styles one frame.
func Render(width, height int, now time.Time, color bool) []Row {
	return Style(Rasterize(width, height, now), color)
}
