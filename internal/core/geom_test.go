package core

import "testing"

func TestToGridCount(t *testing.T) {
	tests := []struct {
		name           string
		size, cellSize int
		expected       int
	}{
		{"exact fit", 640, 16, 40},
		{"floor division", 650, 16, 40},
		{"smaller than a cell", 10, 16, 0},
		{"zero cell size", 640, 0, 0},
		{"negative size", -16, 16, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToGridCount(tc.size, tc.cellSize); got != tc.expected {
				t.Errorf("ToGridCount(%d, %d) = %d, expected %d", tc.size, tc.cellSize, got, tc.expected)
			}
		})
	}
}

func TestNewGrid(t *testing.T) {
	g := NewGrid(640, 480, 16)

	if g.Cols != 40 || g.Rows != 30 {
		t.Errorf("NewGrid cols/rows = %d/%d, expected 40/30", g.Cols, g.Rows)
	}
	if g.Width() != 640 || g.Height() != 480 {
		t.Errorf("extent = %dx%d, expected 640x480", g.Width(), g.Height())
	}
	if g.Cells() != 1200 {
		t.Errorf("Cells() = %d, expected 1200", g.Cells())
	}
}

func TestGridWrap(t *testing.T) {
	g := NewGrid(640, 640, 16)

	tests := []struct {
		name     string
		in, want Point
	}{
		{"inside unchanged", Point{160, 160}, Point{160, 160}},
		{"right edge wraps to zero", Point{640, 160}, Point{0, 160}},
		{"left edge wraps to last cell", Point{-16, 160}, Point{624, 160}},
		{"top edge wraps to last row", Point{32, -16}, Point{32, 624}},
		{"bottom edge wraps to zero", Point{32, 640}, Point{32, 0}},
		{"corner wraps both axes", Point{-16, 640}, Point{624, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := g.Wrap(tc.in)
			if got != tc.want {
				t.Errorf("Wrap(%v) = %v, expected %v", tc.in, got, tc.want)
			}
			if !g.Contains(got) {
				t.Errorf("Wrap(%v) = %v is outside the grid", tc.in, got)
			}
		})
	}
}

func TestGridWrapUsesGridExtent(t *testing.T) {
	// 650 px canvas holds 40 whole cells; the last partial column is unused.
	g := NewGrid(650, 650, 16)

	if got := g.Wrap(Point{-16, 0}); got.X != 624 {
		t.Errorf("Wrap left = %d, expected 624", got.X)
	}
	if got := g.Wrap(Point{640, 0}); got.X != 0 {
		t.Errorf("Wrap right = %d, expected 0", got.X)
	}
}

func TestGridCellConversion(t *testing.T) {
	g := NewGrid(640, 640, 16)

	p := g.CellToPixel(10, 3)
	if p != (Point{160, 48}) {
		t.Errorf("CellToPixel(10, 3) = %v, expected (160, 48)", p)
	}

	col, row := g.PixelToCell(Point{175, 63})
	if col != 10 || row != 3 {
		t.Errorf("PixelToCell = (%d, %d), expected (10, 3)", col, row)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestCeilDiv(t *testing.T) {
	if CeilDiv(32, 16) != 2 {
		t.Error("CeilDiv(32, 16) should be 2")
	}
	if CeilDiv(33, 16) != 3 {
		t.Error("CeilDiv(33, 16) should be 3")
	}
	if CeilDiv(0, 16) != 0 {
		t.Error("CeilDiv(0, 16) should be 0")
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   string
		want Key
	}{
		{"ArrowLeft", KeyArrowLeft},
		{"arrowup", KeyArrowUp},
		{"right", KeyArrowRight},
		{"D", KeyArrowDown},
		{"Enter", KeyEnter},
		{"Space", KeySpace},
		{" ", KeySpace},
		{"Escape", KeyNone},
		{"", KeyNone},
	}

	for _, tc := range tests {
		if got := ParseKey(tc.in); got != tc.want {
			t.Errorf("ParseKey(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	if _, err := ParseColor("#6FDB49"); err != nil {
		t.Errorf("ParseColor valid color returned error: %v", err)
	}
	for _, bad := range []string{"6FDB49", "#6FDB4", "#GGGGGG", ""} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) should fail", bad)
		}
	}
}
