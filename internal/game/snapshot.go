package game

import "github.com/vovakirdan/codesnake/internal/core"

// Snapshot captures the session state for determinism testing and replay.
type Snapshot struct {
	Tick          uint64
	Score         int
	FoodEaten     int
	SnakeLen      int
	HeadLine      int
	HeadCol       int
	Heading       core.Heading
	FoodLine      int
	FoodCol       int
	HasFood       bool
	HiddenLines   int
	PointsPerFood int
	Status        core.Status
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	headLine, headCol := 0, 0
	if len(g.snake) > 0 {
		headLine = g.snake[0].Line
		headCol = g.snake[0].Col
	}

	return Snapshot{
		Tick:          g.tick,
		Score:         g.score,
		FoodEaten:     g.foodEaten,
		SnakeLen:      len(g.snake),
		HeadLine:      headLine,
		HeadCol:       headCol,
		Heading:       g.heading,
		FoodLine:      g.food.Line,
		FoodCol:       g.food.Col,
		HasFood:       g.hasFood,
		HiddenLines:   len(g.hidden),
		PointsPerFood: g.pointsPerFood,
		Status:        g.status,
	}
}
