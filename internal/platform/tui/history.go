package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-maze/internal/storage"
)

// History layout constants
const (
	maxHistoryRuns  = 100 // Max runs to load
	historyChrome   = 8   // Rows used by title, tabs, borders and help
	minTableHeight  = 3
	historyTabCount = 2
)

// History tabs.
const (
	tabRecent = iota
	tabStats
)

// HistorySource is the read side of the run store.
type HistorySource interface {
	RecentRuns(limit int) ([]storage.Run, error)
	AlgorithmStats() ([]storage.AlgorithmStats, error)
}

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
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
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next view"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev view"),
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

// HistoryModel is the Bubble Tea model for the run history screen. It has
// a tab of recent runs and a tab of per-algorithm statistics.
type HistoryModel struct {
	source    HistorySource
	runs      []storage.Run
	stats     []storage.AlgorithmStats
	err       error
	tab       int
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewHistoryModel creates a new history model. A nil source shows an
// empty history.
func NewHistoryModel(source HistorySource, width, height int) HistoryModel {
	m := HistoryModel{
		source: source,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.load()
	m.table = m.createTable()
	return m
}

// load reads runs and statistics from the source.
func (m *HistoryModel) load() {
	m.runs, m.stats, m.err = nil, nil, nil
	if m.source == nil {
		return
	}

	runs, err := m.source.RecentRuns(maxHistoryRuns)
	if err != nil {
		m.err = err
		return
	}
	stats, err := m.source.AlgorithmStats()
	if err != nil {
		m.err = err
		return
	}
	m.runs, m.stats = runs, stats
}

// createTable builds the table for the current tab.
func (m *HistoryModel) createTable() table.Model {
	var columns []table.Column
	var rows []table.Row

	if m.tab == tabRecent {
		columns = []table.Column{
			{Title: "Date", Width: 12},
			{Title: "Generator", Width: 12},
			{Title: "Solver", Width: 8},
			{Title: "Size", Width: 7},
			{Title: "Gen", Width: 6},
			{Title: "Solve", Width: 6},
			{Title: "Path", Width: 5},
			{Title: "User", Width: 10},
		}
		rows = make([]table.Row, len(m.runs))
		for i, r := range m.runs {
			rows[i] = table.Row{
				r.CreatedAt.Format("Jan 02 15:04"),
				r.Generator,
				r.Solver,
				fmt.Sprintf("%dx%d", r.Width, r.Height),
				fmt.Sprintf("%d", r.GenerateSteps),
				fmt.Sprintf("%d", r.SolveSteps),
				pathCell(r),
				r.Session,
			}
		}
	} else {
		columns = []table.Column{
			{Title: "Generator", Width: 12},
			{Title: "Solver", Width: 8},
			{Title: "Runs", Width: 5},
			{Title: "Solved", Width: 6},
			{Title: "Avg gen", Width: 8},
			{Title: "Avg solve", Width: 9},
			{Title: "Avg path", Width: 8},
			{Title: "Last", Width: 12},
		}
		rows = make([]table.Row, len(m.stats))
		for i, s := range m.stats {
			rows[i] = table.Row{
				s.Generator,
				s.Solver,
				fmt.Sprintf("%d", s.Runs),
				fmt.Sprintf("%d", s.Solved),
				fmt.Sprintf("%.1f", s.AvgGenerate),
				fmt.Sprintf("%.1f", s.AvgSolve),
				fmt.Sprintf("%.1f", s.AvgPathLength),
				s.LastRun.Format("Jan 02 15:04"),
			}
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight(m.height-historyChrome)),
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

// tableHeight clamps the table height to something usable.
func tableHeight(h int) int {
	if h < minTableHeight {
		return minTableHeight
	}
	return h
}

func pathCell(r storage.Run) string {
	if !r.Solved {
		return "-"
	}
	return fmt.Sprintf("%d", r.PathLength)
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

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % historyTabCount
			m.table = m.createTable()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + historyTabCount - 1) % historyTabCount
			m.table = m.createTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("RUN HISTORY"), m.width))
	b.WriteString("\n\n")

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	tabs := []string{"Recent runs", "Algorithms"}
	for i := range tabs {
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(tabs[i])
		} else {
			tabs[i] = tabStyle.Render(tabs[i])
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	content := tableStyle.Render(m.renderTableContent())
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty/error message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.err != nil {
		return emptyStyle.Render("Could not read history:\n" + m.err.Error())
	}
	if len(m.runs) == 0 {
		return emptyStyle.Render("No runs recorded yet.\nLet a maze get solved to see it here!")
	}

	return m.table.View()
}

// Tab returns the index of the visible tab.
func (m HistoryModel) Tab() int {
	return m.tab
}

// Rows returns the rows of the visible table.
func (m HistoryModel) Rows() []table.Row {
	return m.table.Rows()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}
