package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// maxSessions is the number of sessions loaded per engine.
const maxSessions = 100

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextEngine key.Binding
	PrevEngine key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextEngine, k.PrevEngine, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextEngine, k.PrevEngine, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextEngine: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next engine"),
		),
		PrevEngine: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev engine"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SessionSource lists finished sessions.
type SessionSource interface {
	RecentSessions(engine string, limit int) ([]storage.SessionEntry, error)
}

// HistoryModel is the Bubble Tea model for the session log.
type HistoryModel struct {
	engines  []registry.EngineInfo
	cursor   int
	source   SessionSource
	sessions []storage.SessionEntry
	loadErr  error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history model showing the first engine.
func NewHistoryModel(source SessionSource, width, height int) HistoryModel {
	m := HistoryModel{
		engines: registry.List(),
		source:  source,
		help:    help.New(),
		keys:    DefaultHistoryKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Played", Width: 14},
		{Title: "Length", Width: 10},
		{Title: "Updates", Width: 8},
		{Title: "Session", Width: 10},
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Engine returns the name of the engine being shown.
func (m HistoryModel) Engine() string {
	if len(m.engines) == 0 {
		return ""
	}
	return m.engines[m.cursor].Name
}

// Rows returns the table rows currently shown.
func (m HistoryModel) Rows() []table.Row {
	return m.table.Rows()
}

// load reads the sessions of the current engine.
func (m *HistoryModel) load() {
	m.sessions, m.loadErr = nil, nil
	if m.source != nil && len(m.engines) > 0 {
		m.sessions, m.loadErr = m.source.RecentSessions(m.Engine(), maxSessions)
	}

	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		id := s.SessionID
		if len(id) > 8 {
			id = id[:8]
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			s.EndedAt.Format("Jan 02 15:04"),
			s.Duration().Round(time.Second).String(),
			fmt.Sprintf("%d", s.Updates),
			id,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextEngine):
			if len(m.engines) > 0 {
				m.cursor = (m.cursor + 1) % len(m.engines)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevEngine):
			if len(m.engines) > 0 {
				m.cursor = (m.cursor - 1 + len(m.engines)) % len(m.engines)
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.load()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the session log.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "HISTORY"
	if len(m.engines) > 0 {
		title = fmt.Sprintf("HISTORY - %s", m.engines[m.cursor].Title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load history:\n" + m.loadErr.Error())
	case len(m.sessions) == 0:
		return emptyStyle.Render("No games recorded yet.\nFinish a game to see it here!")
	}
	return m.table.View()
}

// centerText centers every line of text within width.
func centerText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// RunHistory runs the session log screen.
func RunHistory(source SessionSource, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(source, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
