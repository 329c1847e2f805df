// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

// Cell identifies one character position in the document grid.
type Cell struct {
	Line, Col int
}

// Heading represents the snake's direction of travel.
type Heading int

const (
	HeadingRight Heading = iota
	HeadingDown
	HeadingLeft
	HeadingUp
)

// Delta returns the unit movement for this heading as (dLine, dCol).
func (h Heading) Delta() (int, int) {
	switch h {
	case HeadingUp:
		return -1, 0
	case HeadingDown:
		return 1, 0
	case HeadingLeft:
		return 0, -1
	case HeadingRight:
		return 0, 1
	}
	return 0, 0
}

// Opposite reports whether o is the exact reverse of h.
func (h Heading) Opposite(o Heading) bool {
	return (h == HeadingUp && o == HeadingDown) ||
		(h == HeadingDown && o == HeadingUp) ||
		(h == HeadingLeft && o == HeadingRight) ||
		(h == HeadingRight && o == HeadingLeft)
}

func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	default:
		return "unknown"
	}
}

// Step returns the cell one move from c along h, wrapping at the grid
// boundaries: lines wrap over [0, lines) and columns over [0, cols).
func (c Cell) Step(h Heading, lines, cols int) Cell {
	dl, dc := h.Delta()
	return Cell{
		Line: wrap(c.Line+dl, lines),
		Col:  wrap(c.Col+dc, cols),
	}
}

// wrap maps v into [0, n) assuming v is at most one step outside.
func wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	if v < 0 {
		return n - 1
	}
	if v >= n {
		return 0
	}
	return v
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
