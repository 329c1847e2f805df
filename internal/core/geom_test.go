package core

import "testing"

func TestHeadingDelta(t *testing.T) {
	tests := []struct {
		h      Heading
		dl, dc int
	}{
		{HeadingUp, -1, 0},
		{HeadingDown, 1, 0},
		{HeadingLeft, 0, -1},
		{HeadingRight, 0, 1},
	}

	for _, tc := range tests {
		dl, dc := tc.h.Delta()
		if dl != tc.dl || dc != tc.dc {
			t.Errorf("%s.Delta() = (%d, %d), expected (%d, %d)", tc.h, dl, dc, tc.dl, tc.dc)
		}
	}
}

func TestHeadingOpposite(t *testing.T) {
	tests := []struct {
		a, b     Heading
		expected bool
	}{
		{HeadingUp, HeadingDown, true},
		{HeadingDown, HeadingUp, true},
		{HeadingLeft, HeadingRight, true},
		{HeadingRight, HeadingLeft, true},
		{HeadingUp, HeadingLeft, false},
		{HeadingUp, HeadingUp, false},
		{HeadingRight, HeadingDown, false},
	}

	for _, tc := range tests {
		if got := tc.a.Opposite(tc.b); got != tc.expected {
			t.Errorf("%s.Opposite(%s) = %v, expected %v", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestCellStepWrap(t *testing.T) {
	const lines, cols = 10, 20

	tests := []struct {
		name     string
		from     Cell
		h        Heading
		expected Cell
	}{
		{"right in bounds", Cell{0, 5}, HeadingRight, Cell{0, 6}},
		{"left in bounds", Cell{3, 5}, HeadingLeft, Cell{3, 4}},
		{"up in bounds", Cell{3, 5}, HeadingUp, Cell{2, 5}},
		{"down in bounds", Cell{3, 5}, HeadingDown, Cell{4, 5}},
		{"wrap up past line 0", Cell{0, 5}, HeadingUp, Cell{9, 5}},
		{"wrap down past last line", Cell{9, 5}, HeadingDown, Cell{0, 5}},
		{"wrap left past column 0", Cell{3, 0}, HeadingLeft, Cell{3, 19}},
		{"wrap right past last column", Cell{3, 19}, HeadingRight, Cell{3, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.from.Step(tc.h, lines, cols)
			if got != tc.expected {
				t.Errorf("Step(%s) = %+v, expected %+v", tc.h, got, tc.expected)
			}
		})
	}
}

func TestCellStepNeverOutOfBounds(t *testing.T) {
	// For all headings, stepping from any cell stays in the grid.
	const lines, cols = 7, 13
	headings := []Heading{HeadingUp, HeadingDown, HeadingLeft, HeadingRight}

	for line := 0; line < lines; line++ {
		for col := 0; col < cols; col++ {
			for _, h := range headings {
				got := Cell{line, col}.Step(h, lines, cols)
				if got.Line < 0 || got.Line >= lines || got.Col < 0 || got.Col >= cols {
					t.Fatalf("Step(%s) from (%d,%d) left the grid: %+v", h, line, col, got)
				}
			}
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min is broken")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max is broken")
	}
	if Abs(5) != 5 || Abs(-5) != 5 || Abs(0) != 0 {
		t.Error("Abs is broken")
	}
}
