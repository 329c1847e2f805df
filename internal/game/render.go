package game

import (
	"fmt"

	"github.com/vovakirdan/codesnake/internal/core"
)

// Render draws the current session state into the screen buffer:
// the visible slice of the document (hidden lines blanked), then food,
// then the snake, then any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBuffer(dst)
	g.renderFood(dst)
	g.renderSnake(dst)

	switch g.status {
	case core.StatusTerminated:
		g.renderOverlay(dst, fmt.Sprintf("Game Over — Score: %d", g.score), "Press R to restart, Q to quit")
	case core.StatusPaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s — Score: %d  Len: %d  Food: +%d",
		g.buf.Name(), g.score, len(g.snake), g.pointsPerFood)
	dst.DrawText(0, 0, hud, core.ColorAccent)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorDim)
}

// renderBuffer draws the visible document lines. Hidden lines are left
// blank until their deadline expires.
func (g *Game) renderBuffer(dst *core.Screen) {
	rows := dst.Height() - g.hudHeight
	for y := 0; y < rows; y++ {
		line := g.viewTop + y
		if line >= g.gridLines || g.LineHidden(line) {
			continue
		}
		row := g.buf.Line(line)
		for x := 0; x < dst.Width(); x++ {
			col := g.viewLeft + x
			if col >= len(row) {
				break
			}
			dst.SetColored(x, y+g.hudHeight, row[col], core.ColorText)
		}
	}
}

// renderFood draws the food icon if it is inside the viewport.
func (g *Game) renderFood(dst *core.Screen) {
	if !g.hasFood {
		return
	}
	x, y, ok := g.toScreen(dst, g.food)
	if ok {
		dst.SetColored(x, y, g.cfg.Icons.FoodRune(), core.ColorFood)
	}
}

// renderSnake draws the body then the head so the head wins overlaps.
func (g *Game) renderSnake(dst *core.Screen) {
	for i := len(g.snake) - 1; i >= 0; i-- {
		x, y, ok := g.toScreen(dst, g.snake[i])
		if !ok {
			continue
		}
		if i == 0 {
			dst.SetColored(x, y, g.cfg.Icons.HeadRune(), core.ColorHead)
		} else {
			dst.SetColored(x, y, g.cfg.Icons.BodyRune(), core.ColorBody)
		}
	}
}

// toScreen maps a grid cell to screen coordinates through the viewport.
func (g *Game) toScreen(dst *core.Screen, c core.Cell) (int, int, bool) {
	x := c.Col - g.viewLeft
	y := c.Line - g.viewTop + g.hudHeight
	if x < 0 || x >= dst.Width() || y < g.hudHeight || y >= dst.Height() {
		return 0, 0, false
	}
	return x, y, true
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	boxW := core.Min(maxLen+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2
	if boxX < 0 {
		boxX = 0
	}
	if boxY < 0 {
		boxY = 0
	}

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorAlert)
	dst.DrawTextCentered(boxY+1, line1, core.ColorAlert)
	dst.DrawTextCentered(boxY+3, line2, core.ColorDim)
}
