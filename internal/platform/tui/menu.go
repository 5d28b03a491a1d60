package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

// Menu columns.
const (
	columnGenerators = iota
	columnSolvers
)

const menuColumnWidth = 30

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	menuColumnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(menuColumnWidth).
			Padding(0, 1)
	menuActiveColumnStyle = menuColumnStyle.
				BorderForeground(lipgloss.Color("57"))
	menuCursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	menuHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the algorithm picker: one column
// of generators, one of solvers.
type MenuModel struct {
	generators  []registry.Info
	solvers     []registry.Info
	genCursor   int
	solCursor   int
	column      int
	width       int
	height      int
	config      core.RuntimeConfig
	keys        MenuKeyMap
	help        help.Model
	quitting    bool
	selected    bool
	openHistory bool
}

// NewMenuModel creates a new menu model. The cursors start on the given
// algorithm IDs when they are registered.
func NewMenuModel(cfg core.RuntimeConfig, generator, solver string) MenuModel {
	m := MenuModel{
		generators: registry.Generators(),
		solvers:    registry.Solvers(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keys:       DefaultMenuKeyMap(),
		help:       help.New(),
	}
	m.help.Width = cfg.ScreenW
	m.genCursor = indexOf(m.generators, generator)
	m.solCursor = indexOf(m.solvers, solver)
	return m
}

func indexOf(infos []registry.Info, id string) int {
	for i, info := range infos {
		if info.ID == id {
			return i
		}
	}
	return 0
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.column = columnGenerators

	case key.Matches(msg, m.keys.Right):
		m.column = columnSolvers

	case key.Matches(msg, m.keys.Up):
		if m.column == columnGenerators {
			m.genCursor = max(m.genCursor-1, 0)
		} else {
			m.solCursor = max(m.solCursor-1, 0)
		}

	case key.Matches(msg, m.keys.Down):
		if m.column == columnGenerators {
			m.genCursor = min(m.genCursor+1, max(len(m.generators)-1, 0))
		} else {
			m.solCursor = min(m.solCursor+1, max(len(m.solvers)-1, 0))
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.generators) > 0 && len(m.solvers) > 0 {
			m.selected = true
		}

	case key.Matches(msg, m.keys.History):
		m.openHistory = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("M A Z E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a generator and a solver", m.width))
	b.WriteString("\n\n")

	gen := m.renderColumn("Generators", m.generators, m.genCursor, m.column == columnGenerators)
	sol := m.renderColumn("Solvers", m.solvers, m.solCursor, m.column == columnSolvers)
	columns := lipgloss.JoinHorizontal(lipgloss.Top, gen, "  ", sol)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, columns))
	b.WriteString("\n\n")

	b.WriteString(menuHelpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) renderColumn(title string, infos []registry.Info, cursor int, active bool) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", menuColumnWidth-4))
	b.WriteString("\n")

	for i, info := range infos {
		line := "  " + info.Title
		if i == cursor {
			line = menuCursorStyle.Render("> " + info.Title)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(infos) == 0 {
		b.WriteString(fmt.Sprintf("  no %s registered\n", strings.ToLower(title)))
	}

	style := menuColumnStyle
	if active {
		style = menuActiveColumnStyle
	}
	return style.Render(strings.TrimSuffix(b.String(), "\n"))
}

// Generator returns the ID under the generator cursor.
func (m MenuModel) Generator() string {
	if len(m.generators) == 0 {
		return ""
	}
	return m.generators[m.genCursor].ID
}

// Solver returns the ID under the solver cursor.
func (m MenuModel) Solver() string {
	if len(m.solvers) == 0 {
		return ""
	}
	return m.solvers[m.solCursor].ID
}

// Selected reports whether the user confirmed a pair of algorithms.
func (m MenuModel) Selected() bool {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the run history.
func (m MenuModel) WantsHistory() bool {
	return m.openHistory
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
