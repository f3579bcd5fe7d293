package clockface

// Line walks the integer error-accumulator line from (x0, y0) to
// (x1, y1) and calls plot for every point in order, both endpoints
// included. When the endpoints coincide plot is called exactly once.
//
// The x and y steps are tested independently, so a diagonal move happens
// whenever both conditions hold in the same iteration.
func Line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}

	err := dx + dy
	x, y := x0, y0
	for {
		plot(x, y)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// DrawLine stamps ch with the given category onto every grid cell the
// line from (x0, y0) to (x1, y1) passes through. Points outside the grid
// are skipped.
func DrawLine(g *Grid, x0, y0, x1, y1 int, ch rune, cat Category) {
	Line(x0, y0, x1, y1, func(x, y int) {
		g.Set(x, y, ch, cat)
	})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
