package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/logging"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/phase"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

// Screen layout in terminal rows.
const (
	headerRows    = 2 // title/state line, algorithm line
	buttonGapRows = 1 // blank row between maze and buttons
	buttonRows    = 1
	helpRows      = 1

	// maxFrameDelta bounds the catch-up after the process was suspended.
	maxFrameDelta = time.Second

	fallbackGridSize = 20

	// Bounds for the speed keys.
	minStepInterval = time.Millisecond
	maxStepInterval = 2 * time.Second
)

// RunSaver stores finished run summaries. *storage.Store implements it.
type RunSaver interface {
	SaveRun(r storage.Run) (string, error)
}

// Options configures a visualizer.
type Options struct {
	Generator        string // registry ID, shown and stored
	Solver           string
	GeneratorFactory maze.GeneratorFactory
	SolverFactory    maze.SolverFactory

	// Width and Height of the maze in cells. Zero fits the terminal.
	Width  int
	Height int

	Layout  maze.Layout
	Palette maze.Palette

	// Screen size, host tick rate and seed.
	core.RuntimeConfig

	Interval    time.Duration // time per algorithm step
	StartPaused bool
	Instant     bool // complete both phases before the first frame
	StepLimit   int  // Complete budget, 0 = phase.DefaultStepLimit

	Session       string // "local" or the ssh user
	ScreenshotDir string // default ~/.maze/screenshots
	NoScreenshots bool

	Store  RunSaver
	Logger *log.Logger
}

// Model is the Bubble Tea model for the maze visualizer.
type Model struct {
	opts     Options
	ctrl     *phase.Controller
	pacer    *phase.Pacer
	screen   *core.Screen
	buttons  *ButtonBar
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	lastTick time.Time
	frame    time.Duration
	width    int
	height   int
	originX  int
	saved    bool
	notice   string
	quitting bool
	back     bool
}

// NewModel creates a visualizer for the given options.
func NewModel(opts Options) Model {
	opts.RuntimeConfig = opts.Resolved()
	if opts.Interval <= 0 {
		opts.Interval = phase.DefaultInterval
	}
	if opts.Layout == (maze.Layout{}) {
		opts.Layout = maze.DefaultLayout()
	}
	opts.Layout = opts.Layout.Clamped()
	if opts.Palette.Tags == nil {
		opts.Palette = maze.DefaultPalette()
	}
	if opts.Session == "" {
		opts.Session = "local"
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	m := Model{
		opts:   opts,
		pacer:  phase.NewPacer(opts.Interval),
		screen: core.NewScreen(opts.ScreenW, max(opts.ScreenH-helpRows, 0)),
		buttons: &ButtonBar{
			Gap: 1,
			Buttons: []Button{
				{Label: "Instant Generate", Command: core.CommandInstant},
				{Label: "Play", Command: core.CommandTogglePause},
				{Label: "Reset", Command: core.CommandReset},
				{Label: "Step", Command: core.CommandStep},
			},
		},
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
		frame:  opts.FrameInterval(),
		width:  opts.ScreenW,
		height: opts.ScreenH,
	}
	m.help.Width = opts.ScreenW
	if opts.NoScreenshots {
		m.keys.Screenshot.SetEnabled(false)
	}

	w, h := m.gridSize()
	m.ctrl = phase.NewController(phase.Config{
		Width:     w,
		Height:    h,
		Layout:    opts.Layout,
		Seed:      opts.Seed,
		Generator: opts.GeneratorFactory,
		Solver:    opts.SolverFactory,
	})
	if opts.StartPaused {
		m.pacer.Pause()
	}
	m.logger.Info("visualizer started",
		"generator", opts.Generator,
		"solver", opts.Solver,
		"width", w,
		"height", h,
		"seed", opts.Seed,
	)

	if opts.Instant {
		m.instant()
		m.instant()
	}
	m.sync()
	return m
}

// gridSize returns the configured maze size, fitting the terminal for any
// dimension left at zero.
func (m Model) gridSize() (int, int) {
	w, h := m.opts.Width, m.opts.Height
	if w > 0 && h > 0 {
		return w, h
	}
	fw, fh := fitGrid(m.width, m.height, m.opts.Layout)
	if w <= 0 {
		w = fw
	}
	if h <= 0 {
		h = fh
	}
	return w, h
}

// fitGrid returns the largest maze that fits a terminal of the given size.
// An unknown size (zero) falls back to a 20x20 maze.
func fitGrid(screenW, screenH int, l maze.Layout) (int, int) {
	if screenW <= 0 || screenH <= 0 {
		return fallbackGridSize, fallbackGridSize
	}
	l = l.Clamped()
	availW := screenW - l.Border
	availH := screenH - headerRows - buttonGapRows - buttonRows - helpRows - l.Border
	w := availW / (l.TileWidth + l.Border)
	h := availH / (l.TileHeight + l.Border)
	return max(w, 1), max(h, 1)
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.FrameInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		return m.apply(m.keys.Command(msg))

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m.apply(m.buttons.HitTest(msg.X, msg.Y))
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// apply executes a command from a key or a button.
func (m Model) apply(cmd core.Command) (tea.Model, tea.Cmd) {
	switch cmd {
	case core.CommandQuit:
		m.quitting = true
		return m, tea.Quit

	case core.CommandBack:
		m.back = true
		return m, nil

	case core.CommandTogglePause:
		if m.ctrl.Phase() == phase.Idle {
			return m, nil
		}
		paused := m.pacer.Toggle()
		m.logger.Debug("pause toggled", "paused", paused)

	case core.CommandInstant:
		if m.ctrl.Phase() == phase.Idle {
			return m, nil
		}
		m.instant()

	case core.CommandReset:
		m.reset()

	case core.CommandStep:
		if !m.pacer.Paused() || m.ctrl.Phase() == phase.Idle {
			return m, nil
		}
		before := m.ctrl.Phase()
		m.ctrl.Advance()
		m.observe(before)

	case core.CommandScreenshot:
		m.saveScreenshot()
		return m, nil

	case core.CommandFaster:
		m.setInterval(m.pacer.Interval() / 2)

	case core.CommandSlower:
		m.setInterval(m.pacer.Interval() * 2)
	}

	m.sync()
	return m, nil
}

// instant drains the current phase.
func (m *Model) instant() {
	before := m.ctrl.Phase()
	n, err := m.ctrl.Complete(m.opts.StepLimit)
	if err != nil {
		m.logger.Warn("instant completion stopped", "phase", before, "steps", n, "error", err)
		m.notice = "step limit reached"
		return
	}
	m.logger.Debug("instant completion", "phase", before, "steps", n)
	m.observe(before)
}

// setInterval changes the animation speed within the speed key bounds.
func (m *Model) setInterval(d time.Duration) {
	d = min(max(d, minStepInterval), maxStepInterval)
	m.pacer.SetInterval(d)
	m.logger.Debug("speed changed", "interval", d)
}

// StepsPerSecond is the current animation speed.
func (m Model) StepsPerSecond() float64 {
	return float64(time.Second) / float64(m.pacer.Interval())
}

// reset starts a new run, paused, like a fresh start.
func (m *Model) reset() {
	m.ctrl.Reset()
	m.pacer.Reset()
	m.pacer.Pause()
	m.saved = false
	m.notice = ""
	m.logger.Info("reset", "run", m.ctrl.Run())
}

// observe logs phase changes since before and records finished runs.
func (m *Model) observe(before phase.Phase) {
	after := m.ctrl.Phase()
	if after == before {
		return
	}
	m.logger.Info("phase changed",
		"from", before,
		"to", after,
		"run", m.ctrl.Run(),
		"steps", m.ctrl.Steps(before),
	)
	if after == phase.Idle {
		m.recordRun()
	}
}

// recordRun stores the finished run once.
func (m *Model) recordRun() {
	if m.saved {
		return
	}
	m.saved = true

	run := m.Summary()
	if m.opts.Store == nil {
		return
	}
	id, err := m.opts.Store.SaveRun(run)
	if err != nil {
		m.logger.Warn("could not store run", "error", err)
		return
	}
	m.logger.Info("run stored", "id", id, "solved", run.Solved, "path", run.PathLength)
}

// Summary describes the current run.
func (m Model) Summary() storage.Run {
	g := m.ctrl.Grid()
	path := g.Path()
	return storage.Run{
		Session:       m.opts.Session,
		Generator:     m.opts.Generator,
		Solver:        m.opts.Solver,
		Width:         g.Width(),
		Height:        g.Height(),
		Seed:          m.ctrl.Seed(),
		GenerateSteps: m.ctrl.Steps(phase.Generating),
		SolveSteps:    m.ctrl.Steps(phase.Solving),
		PathLength:    len(path),
		Solved:        len(path) > 0,
	}
}

// sync updates button labels, enabled state and key bindings to match the
// controller and pacer, then lays the buttons out.
func (m *Model) sync() {
	idle := m.ctrl.Phase() == phase.Idle
	paused := m.pacer.Paused()

	if b := m.buttons.Find(core.CommandInstant); b != nil {
		b.Label = "Instant Generate"
		if m.ctrl.Phase() != phase.Generating {
			b.Label = "Instant Solve"
		}
		b.Disabled = idle
	}
	if b := m.buttons.Find(core.CommandTogglePause); b != nil {
		b.Label = "Play"
		if !paused {
			b.Label = "Pause"
		}
		b.Disabled = idle
	}
	if b := m.buttons.Find(core.CommandStep); b != nil {
		b.Disabled = idle || !paused
	}

	m.keys.Pause.SetEnabled(!idle)
	m.keys.Instant.SetEnabled(!idle)
	m.keys.Step.SetEnabled(!idle && paused)

	g := m.ctrl.Grid()
	m.originX = core.Center(m.width, g.PixelWidth())
	y := headerRows + g.PixelHeight() + buttonGapRows
	m.buttons.Layout(0, y)
	m.buttons.Layout(core.Center(m.width, m.buttons.Width()), y)
}

// handleResize processes window resize events. A fitted maze is rebuilt
// when the terminal can hold a different size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 0))
	m.help.Width = msg.Width

	g := m.ctrl.Grid()
	if w, h := m.gridSize(); w != g.Width() || h != g.Height() {
		m.ctrl.Resize(w, h)
		m.pacer.Reset()
		m.pacer.Pause()
		m.saved = false
		m.logger.Info("grid resized", "width", w, "height", h)
	}

	m.sync()
	return m, nil
}

// handleTick advances the pacer by the time since the previous frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	delta := m.opts.FrameInterval()
	if !m.lastTick.IsZero() {
		delta = now.Sub(m.lastTick)
	}
	m.lastTick = now
	m.frame = delta
	if delta > maxFrameDelta {
		delta = maxFrameDelta
	}

	before := m.ctrl.Phase()
	m.pacer.Update(delta, m.ctrl)
	m.observe(before)
	m.sync()

	return m, tickCmd(m.opts.FrameInterval())
}

// required returns the terminal size needed to show the whole frame.
func (m Model) required() (w, h int) {
	g := m.ctrl.Grid()
	return max(g.PixelWidth(), m.buttons.Width()),
		headerRows + g.PixelHeight() + buttonGapRows + buttonRows + helpRows
}

// tooSmall reports whether the terminal cannot show the whole frame.
func (m Model) tooSmall() bool {
	w, h := m.required()
	return m.width < w || m.height < h
}

// draw renders the frame into the screen buffer.
func (m Model) draw() {
	m.screen.Clear()
	g := m.ctrl.Grid()

	if m.tooSmall() {
		needW, needH := m.required()
		y := m.screen.Height() / 2
		m.screen.DrawTextCentered(y-1, "Terminal too small")
		m.screen.DrawTextCentered(y, fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, m.width, m.height))
		return
	}

	ox := m.originX
	fps, ms := 0, int(m.frame/time.Millisecond)
	if m.frame > 0 {
		fps = int(time.Second / m.frame)
	}
	title := fmt.Sprintf("Maze - %d fps (%dms)", fps, ms)
	m.screen.DrawText(ox, 0, title)

	// Right-aligned to the maze, but never over the title.
	state := m.ctrl.Phase().String()
	if m.pacer.Paused() {
		state += " (paused)"
	}
	sx := max(ox+g.PixelWidth()-utf8.RuneCountInString(state), ox+utf8.RuneCountInString(title)+1)
	m.screen.DrawText(sx, 0, state)

	info := fmt.Sprintf("%s → %s  %dx%d  run %d  %.4g steps/s",
		m.opts.Generator, m.opts.Solver, g.Width(), g.Height(), m.ctrl.Run(), m.StepsPerSecond())
	m.screen.DrawTextStyled(ox, 1, info, core.ColorGray, core.ColorDefault)

	g.Render(m.screen, ox, headerRows, m.opts.Palette)
	m.buttons.Draw(m.screen)

	if m.notice != "" {
		x := core.Center(m.screen.Width(), utf8.RuneCountInString(m.notice))
		m.screen.DrawTextStyled(x, headerRows+g.PixelHeight(), m.notice, core.ColorYellow, core.ColorDefault)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.notice = "screenshot failed"
			return
		}
		dir = filepath.Join(home, ".maze", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		m.notice = "screenshot failed"
		return
	}

	filename := fmt.Sprintf("maze_%s_run%d.txt", time.Now().Format("20060102_150405"), m.ctrl.Run())
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		m.notice = "screenshot failed"
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.notice = "saved " + filename
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Controller exposes the run state.
func (m Model) Controller() *phase.Controller {
	return m.ctrl
}

// Paused reports whether the animation is paused.
func (m Model) Paused() bool {
	return m.pacer.Paused()
}

// Buttons returns the current button row.
func (m Model) Buttons() []Button {
	return m.buttons.Buttons
}

// Notice returns the transient status message, if any.
func (m Model) Notice() string {
	return m.notice
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// EnableBack turns on the back-to-menu binding for embedded use.
func (m *Model) EnableBack() {
	m.keys.Back.SetEnabled(true)
}

// Run starts the Bubble Tea program for a single visualizer.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
