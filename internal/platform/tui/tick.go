// Package tui provides the Bubble Tea integration: the terminal loop,
// input mapping, rendering, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation tick. It carries the generation of the
// session that scheduled it so ticks from a restarted or terminated
// session are dropped instead of mutating the new one.
type TickMsg struct {
	Time       time.Time
	Generation uint64
}

// tickCmd returns a command that delivers a TickMsg after the interval.
func tickCmd(interval time.Duration, generation uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Generation: generation}
	})
}
