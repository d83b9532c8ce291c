package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/logic-gates/internal/sokoban"
	"github.com/vovakirdan/logic-gates/internal/storage"
)

// Stats screen layout
const (
	minWidthForSidebar = 80
	sidebarWidth       = 30
	maxAttempts        = 100
)

// StatsKeyMap defines the key bindings for the stats screen.
type StatsKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextLevel, k.PrevLevel, k.Quit}}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev level"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// StatsModel browses the attempt log one level at a time.
type StatsModel struct {
	levels   []sokoban.Level
	cursor   int
	store    *storage.Store
	summary  map[int]storage.LevelStats
	attempts []storage.Attempt
	err      error

	theme       Theme
	table       table.Model
	help        help.Model
	keys        StatsKeyMap
	width       int
	height      int
	showSidebar bool
	quitting    bool
}

// NewStatsModel creates a stats screen over store.
func NewStatsModel(store *storage.Store, levels []sokoban.Level, theme Theme, width, height int) StatsModel {
	m := StatsModel{
		levels:      levels,
		store:       store,
		summary:     make(map[int]storage.LevelStats),
		theme:       theme,
		help:        help.New(),
		keys:        DefaultStatsKeyMap(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	if store != nil {
		all, err := store.AllLevelStats()
		if err != nil {
			m.err = err
		}
		for _, s := range all {
			m.summary[s.Level] = s
		}
	}

	m.table = m.createTable()
	m.loadAttempts()
	return m
}

func (m *StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Moves", Width: 7},
		{Title: "Quiz", Width: 8},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
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

func (m *StatsModel) loadAttempts() {
	m.attempts = nil
	if m.store != nil && len(m.levels) > 0 {
		attempts, err := m.store.LevelAttempts(m.cursor, maxAttempts)
		if err != nil {
			m.err = err
		} else {
			m.attempts = attempts
		}
	}

	rows := make([]table.Row, len(m.attempts))
	for i, a := range m.attempts {
		result := "wrong"
		if a.Correct {
			result = "correct"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", len(m.attempts)-i),
			fmt.Sprintf("%d", a.Moves),
			result,
			a.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLevel):
			if len(m.levels) > 0 {
				m.cursor = (m.cursor + 1) % len(m.levels)
				m.loadAttempts()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel):
			if len(m.levels) > 0 {
				m.cursor = (m.cursor - 1 + len(m.levels)) % len(m.levels)
				m.loadAttempts()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.loadAttempts()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats screen.
func (m StatsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "STATS"
	if len(m.levels) > 0 {
		l := m.levels[m.cursor]
		title = fmt.Sprintf("STATS - %d. %s (%s)", m.cursor+1, l.Name, l.Gate)
	}
	b.WriteString(m.theme.Title.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	panel := m.theme.Frame.Render(m.renderDetail())
	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", panel))
	} else {
		b.WriteString(panel)
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.theme.Wrong.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}

func (m StatsModel) renderSidebar() string {
	var b strings.Builder
	b.WriteString("Levels\n")
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	b.WriteString("\n")

	for i, l := range m.levels {
		text := fmt.Sprintf("%d. %s", i+1, l.Gate)
		if s, ok := m.summary[i]; ok {
			text += fmt.Sprintf("  %d/%d", s.Passes, s.Attempts)
		}
		if i == m.cursor {
			b.WriteString(m.theme.ItemActive.Render("> " + text))
		} else {
			b.WriteString(m.theme.ItemNormal.Render("  " + text))
		}
		b.WriteString("\n")
	}

	return m.theme.Frame.Width(sidebarWidth).Render(strings.TrimRight(b.String(), "\n"))
}

// renderDetail renders the level summary and its attempt table.
func (m StatsModel) renderDetail() string {
	s, ok := m.summary[m.cursor]
	if !ok || len(m.attempts) == 0 {
		return m.theme.Placeholder.Render("No attempts recorded yet.\nSolve the level and answer its quiz!")
	}

	best := "-"
	if s.BestMoves > 0 {
		best = fmt.Sprintf("%d", s.BestMoves)
	}
	line := m.theme.HUDLabel.Render("Attempts ") + m.theme.HUDValue.Render(fmt.Sprintf("%d", s.Attempts)) +
		m.theme.HUDLabel.Render("  Pass rate ") + m.theme.HUDValue.Render(fmt.Sprintf("%.0f%%", s.PassRate()*100)) +
		m.theme.HUDLabel.Render("  Best ") + m.theme.HUDValue.Render(best)

	return lipgloss.JoinVertical(lipgloss.Left, line, "", m.table.View())
}

// RunStats runs the interactive stats screen.
func RunStats(store *storage.Store, levels []sokoban.Level, theme Theme, width, height int) error {
	p := tea.NewProgram(
		NewStatsModel(store, levels, theme, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
