package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/codesnake/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorText:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorHead:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorBody:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorFood:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorComment: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorAlert:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
