package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/codesnake/internal/storage"
)

const maxBoardRuns = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextFile key.Binding
	PrevFile key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFile, k.PrevFile, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextFile, k.PrevFile},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextFile: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next file"),
		),
		PrevFile: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev file"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the leaderboard screen.
type ScoreboardModel struct {
	store      *storage.Store
	files      []string
	fileCursor int
	runs       []storage.RunEntry
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a scoreboard over all documents with runs.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	var files []string
	if store != nil {
		files, _ = store.Files()
	}

	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:  store,
		files:  files,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	if len(m.files) > 0 {
		m.loadRuns(m.files[0])
	}

	return m
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Lines", Width: 7},
		{Title: "Length", Width: 7},
		{Title: "Date", Width: 17},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return t
}

func (m *ScoreboardModel) tableHeight() int {
	// Title, file line, help line, padding.
	h := m.height - 6
	if h < 3 {
		h = 3
	}
	return h
}

func (m *ScoreboardModel) loadRuns(file string) {
	m.runs = nil
	if m.store != nil {
		m.runs, _ = m.store.TopRuns(file, maxBoardRuns)
	}

	rows := make([]table.Row, 0, len(m.runs))
	for i, e := range m.runs {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.Lines),
			fmt.Sprintf("%d", e.SnakeLen),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(m.tableHeight())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextFile):
			m.cycleFile(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevFile):
			m.cycleFile(-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) cycleFile(delta int) {
	if len(m.files) == 0 {
		return
	}
	m.fileCursor = (m.fileCursor + delta + len(m.files)) % len(m.files)
	m.loadRuns(m.files[m.fileCursor])
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).
		Render("High Scores")

	if len(m.files) == 0 {
		return title + "\n\nNo runs recorded yet.\n\n" + m.help.View(m.keys)
	}

	file := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).
		Render(m.files[m.fileCursor])
	header := fmt.Sprintf("%s — %s (%d/%d)", title, file, m.fileCursor+1, len(m.files))

	return header + "\n\n" + m.table.View() + "\n" + m.help.View(m.keys)
}

// GoingBack reports whether the user left via back rather than quit.
func (m ScoreboardModel) GoingBack() bool {
	return m.goingBack
}

// RunScoreboard shows the scoreboard screen. Returns true if the user
// backed out rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (bool, error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(ScoreboardModel); ok {
		return m.GoingBack(), nil
	}
	return false, nil
}
