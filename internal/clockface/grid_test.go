package clockface

import (
	"testing"
)

func TestNewGrid(t *testing.T) {
	g := NewGrid(7, 3)

	w, h := g.Size()
	if w != 7 || h != 3 {
		t.Errorf("expected size (7, 3), got (%d, %d)", w, h)
	}
	if len(g.Rows()) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(g.Rows()))
	}
	for y, row := range g.Rows() {
		if len(row) != 7 {
			t.Errorf("row %d: expected 7 cells, got %d", y, len(row))
		}
		for x, c := range row {
			if c != blank {
				t.Errorf("cell (%d,%d) should start blank, got %+v", x, y, c)
			}
		}
	}
}

func TestNewGridNegative(t *testing.T) {
	g := NewGrid(-4, -1)

	w, h := g.Size()
	if w != 0 || h != 0 {
		t.Errorf("expected size (0, 0), got (%d, %d)", w, h)
	}
	if g.String() != "" {
		t.Errorf("expected empty string, got %q", g.String())
	}
}

func TestGridSetOutOfBounds(t *testing.T) {
	g := NewGrid(2, 2)

	g.Set(-1, 0, 'x', HourHand)
	g.Set(0, -1, 'x', HourHand)
	g.Set(2, 0, 'x', HourHand)
	g.Set(0, 2, 'x', HourHand)

	if g.String() != "  \n  " {
		t.Errorf("out of bounds writes should be ignored, got %q", g.String())
	}
	if got := g.At(5, 5); got != blank {
		t.Errorf("At outside grid should be blank, got %+v", got)
	}
}

func TestGridSetIfEmpty(t *testing.T) {
	g := NewGrid(3, 1)
	g.Set(1, 0, 'o', CircleOutline)

	if g.SetIfEmpty(1, 0, 'X', NumeralOrTick) {
		t.Error("SetIfEmpty should not overwrite the outline")
	}
	if !g.SetIfEmpty(2, 0, 'X', NumeralOrTick) {
		t.Error("SetIfEmpty should write an empty cell")
	}
	if g.SetIfEmpty(3, 0, 'X', NumeralOrTick) {
		t.Error("SetIfEmpty should reject out of bounds")
	}
	if g.String() != " oX" {
		t.Errorf("expected %q, got %q", " oX", g.String())
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		c    Category
		want string
	}{
		{Empty, "empty"},
		{CircleOutline, "circle"},
		{NumeralOrTick, "numeral"},
		{HourHand, "hour"},
		{MinuteHand, "minute"},
		{SecondHand, "second"},
		{Category(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}
