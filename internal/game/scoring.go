package game

// pointsPerFood derives the per-food reward from the document size.
// Computed once at session start and held constant.
func pointsPerFood(lines, linesPerPoint int) int {
	if linesPerPoint <= 0 {
		linesPerPoint = 10
	}
	p := lines / linesPerPoint
	if p < 1 {
		p = 1
	}
	return p
}

// commentBonus is the extra reward for colliding with comment text.
// Additive on top of the normal line-hiding effect.
func commentBonus(ppf int) int {
	return ppf / 2
}

// hideTicksFor converts the hide duration to whole ticks, rounding up.
func hideTicksFor(hideMS, tickMS int) uint64 {
	if tickMS <= 0 {
		tickMS = 150
	}
	t := (hideMS + tickMS - 1) / tickMS
	if t < 1 {
		t = 1
	}
	return uint64(t)
}
