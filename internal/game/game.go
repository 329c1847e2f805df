// Package game implements the snake engine that runs over a text buffer.
// The buffer's lines and columns form the grid: open space is passable,
// cells holding non-whitespace text trigger a transient collision that
// hides the line, and food spawns at random free cells.
package game

import (
	"math/rand"

	"github.com/vovakirdan/codesnake/internal/buffer"
	"github.com/vovakirdan/codesnake/internal/config"
	"github.com/vovakirdan/codesnake/internal/core"
)

// Game holds all session state. It is pure logic: no terminal, no timers.
// The platform drives it by calling Step once per tick interval.
type Game struct {
	buf *buffer.Buffer
	cfg config.GameConfig
	rt  core.RuntimeConfig
	rng *rand.Rand

	tick      uint64
	score     int
	foodEaten int

	// Points per food, fixed at session start from the line count.
	pointsPerFood int

	// Snake state, head at index 0.
	snake       []core.Cell
	heading     core.Heading
	nextHeading core.Heading // Buffered heading for the next move

	food    core.Cell
	hasFood bool

	// Grid dimensions, fixed at session start. Columns use the
	// fixed-width wrap policy: the grid is as wide as the longest line,
	// bounded below by the configured minimum.
	gridLines int
	gridCols  int

	// Hidden lines: line index -> tick at which it reappears.
	hidden    map[int]uint64
	hideTicks uint64

	status   core.Status
	tooSmall bool

	// Viewport over the grid, follows the head.
	screenW   int
	screenH   int
	hudHeight int
	viewTop   int
	viewLeft  int
}

// New creates an engine over the given buffer. The session stays idle
// until Reset.
func New(buf *buffer.Buffer, cfg config.GameConfig) *Game {
	cfg.Normalize()
	return &Game{
		buf:    buf,
		cfg:    cfg,
		status: core.StatusIdle,
	}
}

// ID returns the identifier used for score storage: the document name.
func (g *Game) ID() string {
	return g.buf.Name()
}

// Reset initializes or restarts the session.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if rt.TickMS <= 0 {
		rt.TickMS = g.cfg.Game.TickMS
	}
	g.rt = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0
	g.score = 0
	g.foodEaten = 0
	g.hidden = make(map[int]uint64)
	g.viewTop = 0
	g.viewLeft = 0
	g.screenW = rt.ScreenW
	g.screenH = rt.ScreenH
	g.hudHeight = 2

	g.gridLines = g.buf.LineCount()
	g.gridCols = core.Max(g.buf.MaxLineLen(), g.cfg.Game.MinColumns)

	g.pointsPerFood = pointsPerFood(g.gridLines, g.cfg.Scoring.LinesPerPoint)
	g.hideTicks = hideTicksFor(g.cfg.Game.HideMS, rt.TickMS)

	g.tooSmall = g.screenW < minScreenW || g.screenH < g.hudHeight+minPlayRows

	g.initSnake()
	g.spawnFood()
	g.follow()
	g.status = core.StatusRunning
}

const (
	minScreenW  = 20
	minPlayRows = 3
)

// initSnake places the snake horizontally, heading right, head at the
// rightmost segment. A bounded random search prefers a run of cells free
// of text; if none is found the snake starts mid-grid anyway.
func (g *Game) initSnake() {
	length := core.Min(g.cfg.Game.InitialLength, core.Max(1, g.gridCols))
	line := g.gridLines / 2
	start := core.Max(0, (g.gridCols-length)/2)

	for range 100 {
		clear := true
		for i := range length {
			if g.buf.HasTextAt(line, start+i) {
				clear = false
				break
			}
		}
		if clear {
			break
		}
		line = g.rng.Intn(g.gridLines)
		if g.gridCols > length {
			start = g.rng.Intn(g.gridCols - length)
		}
	}

	g.snake = make([]core.Cell, length)
	for i := range length {
		g.snake[i] = core.Cell{Line: line, Col: start + length - 1 - i}
	}
	g.heading = core.HeadingRight
	g.nextHeading = core.HeadingRight
}

// occupied reports whether the snake currently occupies the cell.
func (g *Game) occupied(c core.Cell) bool {
	for _, seg := range g.snake {
		if seg == c {
			return true
		}
	}
	return false
}

// spawnFood places food at a random cell not occupied by the snake.
// Sampling is capped; the fallback scans the grid in order so the routine
// terminates even on a degenerate or fully occupied grid.
func (g *Game) spawnFood() {
	for range g.cfg.Game.SpawnAttempts {
		c := core.Cell{
			Line: g.rng.Intn(g.gridLines),
			Col:  g.rng.Intn(g.gridCols),
		}
		if !g.occupied(c) {
			g.food = c
			g.hasFood = true
			return
		}
	}

	for line := 0; line < g.gridLines; line++ {
		for col := 0; col < g.gridCols; col++ {
			c := core.Cell{Line: line, Col: col}
			if !g.occupied(c) {
				g.food = c
				g.hasFood = true
				return
			}
		}
	}

	// Snake covers the entire grid.
	g.hasFood = false
}

// Step advances the session by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.status == core.StatusTerminated {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
			TickMS:  g.rt.TickMS,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionStop) && g.status != core.StatusTerminated {
		g.terminate()
		return core.StepResult{State: g.State()}
	}

	if g.status == core.StatusTerminated {
		return core.StepResult{State: g.State()}
	}

	// Hidden lines expire on schedule even while paused.
	g.pruneHidden()

	if input.Has(core.ActionPause) {
		switch g.status {
		case core.StatusRunning:
			g.status = core.StatusPaused
		case core.StatusPaused:
			g.status = core.StatusRunning
		}
	}

	if g.status != core.StatusRunning || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.applyHeading(input)
	g.advance()

	return core.StepResult{State: g.State()}
}

// applyHeading buffers a heading change, rejecting an exact reversal into
// the snake's own body.
func (g *Game) applyHeading(input core.InputFrame) {
	h := g.nextHeading

	switch {
	case input.Has(core.ActionUp):
		h = core.HeadingUp
	case input.Has(core.ActionDown):
		h = core.HeadingDown
	case input.Has(core.ActionLeft):
		h = core.HeadingLeft
	case input.Has(core.ActionRight):
		h = core.HeadingRight
	}

	if !g.heading.Opposite(h) {
		g.nextHeading = h
	}
}

// advance moves the snake one cell: wrap, self-collision, food capture,
// text collision, in that order.
func (g *Game) advance() {
	if len(g.snake) == 0 {
		return
	}

	g.heading = g.nextHeading
	cand := g.snake[0].Step(g.heading, g.gridLines, g.gridCols)

	// Strict self-collision: the candidate is checked against the full
	// pre-move occupied set. Landing on the cell the tail is about to
	// vacate still ends the game.
	if g.occupied(cand) {
		g.terminate()
		return
	}

	g.snake = append([]core.Cell{cand}, g.snake...)

	if g.hasFood && cand == g.food {
		g.score += g.pointsPerFood
		g.foodEaten++
		g.spawnFood() // Tail kept: net length +1
	} else if len(g.snake) > 1 {
		g.snake = g.snake[:len(g.snake)-1]
	}

	// Text collision is independent of food capture. Whitespace-only
	// lines and cells past a line's last rune are open space.
	if g.buf.HasTextAt(cand.Line, cand.Col) {
		g.hidden[cand.Line] = g.tick + g.hideTicks
		if g.cfg.Scoring.CommentBonus && g.buf.InComment(cand.Line, cand.Col) {
			g.score += commentBonus(g.pointsPerFood)
		}
	}

	g.follow()
}

// pruneHidden removes hidden-line entries whose deadline has passed.
func (g *Game) pruneHidden() {
	for line, until := range g.hidden {
		if g.tick >= until {
			delete(g.hidden, line)
		}
	}
}

// terminate moves the session to its absorbing state and drops all
// transient visual effects.
func (g *Game) terminate() {
	g.status = core.StatusTerminated
	g.hidden = make(map[int]uint64)
}

// follow scrolls the viewport so the head stays visible.
func (g *Game) follow() {
	if len(g.snake) == 0 {
		return
	}
	head := g.snake[0]

	rows := core.Max(1, g.screenH-g.hudHeight)
	if head.Line < g.viewTop {
		g.viewTop = head.Line
	} else if head.Line >= g.viewTop+rows {
		g.viewTop = head.Line - rows + 1
	}

	cols := core.Max(1, g.screenW)
	if head.Col < g.viewLeft {
		g.viewLeft = head.Col
	} else if head.Col >= g.viewLeft+cols {
		g.viewLeft = head.Col - cols + 1
	}
}

// Resize updates the screen dimensions without restarting the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < g.hudHeight+minPlayRows
	g.follow()
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.status == core.StatusTerminated,
		Paused:   g.status == core.StatusPaused,
	}
}

// Status returns the session status.
func (g *Game) Status() core.Status {
	return g.status
}

// Lines returns the grid line count for this session.
func (g *Game) Lines() int {
	return g.gridLines
}

// SnakeLen returns the current snake length.
func (g *Game) SnakeLen() int {
	return len(g.snake)
}

// PointsPerFood returns the per-session food reward.
func (g *Game) PointsPerFood() int {
	return g.pointsPerFood
}

// LineHidden reports whether the given line is currently suppressed.
func (g *Game) LineHidden(line int) bool {
	_, ok := g.hidden[line]
	return ok
}
