package app

import (
	"github.com/dshills/asciiclock/internal/clockface"
	"github.com/dshills/asciiclock/internal/renderer/backend"
	"github.com/dshills/asciiclock/internal/renderer/core"
)

// Paint draws styled rows into area from its top-left corner, clipping
// anything that falls outside it. Each rune advances by its display width.
func Paint(b backend.Backend, area core.ScreenRect, rows []clockface.Row) {
	if area.IsEmpty() {
		return
	}
	for i, row := range rows {
		y := area.Top + i
		if y >= area.Bottom {
			return
		}
		x := area.Left
		for _, span := range row {
			for _, r := range span.Text {
				cell := core.NewStyledCell(r, span.Style)
				if area.Contains(x, y) {
					b.SetCell(x, y, cell)
				}
				x += max(cell.Width, 1)
			}
			if x >= area.Right {
				break
			}
		}
	}
}
