package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/codesnake/internal/core"
	"github.com/vovakirdan/codesnake/internal/game"
	"github.com/vovakirdan/codesnake/internal/storage"
)

// Model is the Bubble Tea model for a single game session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState

	// generation guards against stale tick messages: every Reset bumps
	// it, and ticks scheduled by an older session are dropped.
	generation uint64

	quitting   bool
	scoreSaved bool
}

// NewModel creates a model for the given engine.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickMS <= 0 {
		cfg.TickMS = core.DefaultConfig().TickMS
	}

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the session and schedules the first tick.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.interval(), m.generation)
}

func (m Model) interval() time.Duration {
	return time.Duration(m.config.TickMS) * time.Millisecond
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveIfOver()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events without restarting the
// session; the engine just re-follows the head through the new viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Generation != m.generation {
		// Tick from a session that has already been replaced.
		return m, nil
	}

	// Restart starts a fresh session with a new generation.
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.generation++
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.interval(), m.generation)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	m.saveIfOver()

	m.inputFrame.Clear()
	return m, tickCmd(m.interval(), m.generation)
}

// saveIfOver records the run once per game over.
func (m *Model) saveIfOver() {
	if !m.gameState.GameOver || m.scoreSaved || m.gameState.Score <= 0 {
		return
	}
	if m.store != nil {
		//nolint:errcheck // Best-effort save, session continues regardless
		m.store.SaveRun(m.game.ID(), m.gameState.Score, m.game.Lines(), m.game.SnakeLen())
	}
	m.scoreSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given engine and blocks
// until the player quits. The alternate screen, input handlers, and all
// visual marks are released when Run returns.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(g, store, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
