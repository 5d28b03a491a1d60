package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maze/internal/logging"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

// Session screens.
const (
	screenMenu = iota
	screenVisualizer
	screenHistory
)

// SessionModel manages the full flow of one session:
// menu -> visualizer -> menu, and menu -> history -> menu.
// This is the top-level model used for SSH sessions and the local menu.
type SessionModel struct {
	base     Options
	store    *storage.Store
	screen   int
	menu     MenuModel
	viz      *Model
	history  HistoryModel
	quitting bool
}

// NewSessionModel creates a new session model. base is the template for
// every visualizer started from the menu; its Generator and Solver preselect
// the menu cursors. store may be nil. The seed is resolved once, so every
// visualizer of the session replays the same mazes.
func NewSessionModel(base Options, store *storage.Store) SessionModel {
	base.RuntimeConfig = base.Resolved()
	if base.Logger == nil {
		base.Logger = logging.Discard()
	}
	return SessionModel{
		base:  base,
		store: store,
		menu:  NewMenuModel(base.RuntimeConfig, base.Generator, base.Solver),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.base.ScreenW = wsm.Width
		m.base.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenVisualizer:
		return m.updateVisualizer(msg)
	case screenHistory:
		return m.updateHistory(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsHistory() {
		m.history = NewHistoryModel(m.historySource(), m.base.ScreenW, m.base.ScreenH)
		m.screen = screenHistory
		return m, m.history.Init()
	}

	if m.menu.Selected() {
		viz, err := m.newVisualizer(m.menu.Generator(), m.menu.Solver())
		if err != nil {
			// Shouldn't happen since the menu only shows registered algorithms
			m.base.Logger.Error("cannot start visualizer", "error", err)
			m.menu = NewMenuModel(m.base.RuntimeConfig, m.menu.Generator(), m.menu.Solver())
			return m, nil
		}
		m.viz = &viz
		m.screen = screenVisualizer
		return m, m.viz.Init()
	}

	return m, cmd
}

// newVisualizer builds a visualizer for the chosen algorithms.
func (m SessionModel) newVisualizer(generator, solver string) (Model, error) {
	gen, err := registry.Generator(generator)
	if err != nil {
		return Model{}, err
	}
	sol, err := registry.Solver(solver)
	if err != nil {
		return Model{}, err
	}

	opts := m.base
	opts.Generator = generator
	opts.Solver = solver
	opts.GeneratorFactory = gen
	opts.SolverFactory = sol
	opts.Store = nil
	if m.store != nil {
		opts.Store = m.store
	}

	viz := NewModel(opts)
	viz.EnableBack()
	return viz, nil
}

// historySource returns the store as a history source, or nil.
func (m SessionModel) historySource() HistorySource {
	if m.store == nil {
		return nil
	}
	return m.store
}

// updateVisualizer handles updates when a maze is running.
func (m SessionModel) updateVisualizer(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.viz.Update(msg)
	if viz, ok := newModel.(Model); ok {
		m.viz = &viz
	}

	if m.viz.BackToMenu() {
		m.menu = NewMenuModel(m.base.RuntimeConfig, m.viz.opts.Generator, m.viz.opts.Solver)
		m.viz = nil
		m.screen = screenMenu
		return m, m.menu.Init()
	}

	if m.viz.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateHistory handles updates when the history screen is open.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if history, ok := newModel.(HistoryModel); ok {
		m.history = history
	}

	if m.history.IsGoingBack() {
		m.menu = NewMenuModel(m.base.RuntimeConfig, m.menu.Generator(), m.menu.Solver())
		m.screen = screenMenu
		return m, m.menu.Init()
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenVisualizer:
		if m.viz != nil {
			return m.viz.View()
		}
	case screenHistory:
		return m.history.View()
	}
	return m.menu.View()
}

// Screen returns the active screen.
func (m SessionModel) Screen() int {
	return m.screen
}

// RunSession runs the menu-driven flow locally until the user quits.
func RunSession(base Options, store *storage.Store) error {
	p := tea.NewProgram(
		NewSessionModel(base, store),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
