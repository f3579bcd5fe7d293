package clockface

// Category identifies what a cell depicts. It is only used to pick a color.
type Category uint8

// Cell categories.
const (
	Empty Category = iota
	CircleOutline
	NumeralOrTick
	HourHand
	MinuteHand
	SecondHand
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case Empty:
		return "empty"
	case CircleOutline:
		return "circle"
	case NumeralOrTick:
		return "numeral"
	case HourHand:
		return "hour"
	case MinuteHand:
		return "minute"
	case SecondHand:
		return "second"
	default:
		return "unknown"
	}
}

// Cell is one character position of the frame buffer.
type Cell struct {
	Char     rune
	Category Category
}

// blank is the cell every grid position starts as.
var blank = Cell{Char: ' ', Category: Empty}

// Grid is a row-major frame buffer of height rows by width columns.
type Grid struct {
	width, height int
	cells         [][]Cell
}

// NewGrid allocates a blank grid. Negative dimensions are treated as zero.
func NewGrid(width, height int) *Grid {
	width = max(width, 0)
	height = max(height, 0)

	cells := make([][]Cell, height)
	for y := range cells {
		row := make([]Cell, width)
		for x := range row {
			row[x] = blank
		}
		cells[y] = row
	}
	return &Grid{width: width, height: height, cells: cells}
}

// Size returns the grid dimensions.
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set writes a cell. Positions outside the grid are ignored.
func (g *Grid) Set(x, y int, ch rune, cat Category) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y][x] = Cell{Char: ch, Category: cat}
}

// SetIfEmpty writes a cell only if it still holds the Empty category.
// It reports whether the write happened.
func (g *Grid) SetIfEmpty(x, y int, ch rune, cat Category) bool {
	if !g.InBounds(x, y) || g.cells[y][x].Category != Empty {
		return false
	}
	g.cells[y][x] = Cell{Char: ch, Category: cat}
	return true
}

// At returns the cell at (x, y), or a blank cell outside the grid.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return blank
	}
	return g.cells[y][x]
}

// Rows returns the underlying rows. Callers must not modify them.
func (g *Grid) Rows() [][]Cell {
	return g.cells
}

// String renders the grid characters, one line per row.
func (g *Grid) String() string {
	buf := make([]rune, 0, (g.width+1)*g.height)
	for y, row := range g.cells {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for _, c := range row {
			buf = append(buf, c.Char)
		}
	}
	return string(buf)
}
