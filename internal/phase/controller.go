// Package phase drives a maze run through its two stepping phases and
// paces those steps against wall-clock time.
//
// Everything here runs on the caller's goroutine: a step never blocks, and
// reset simply drops the in-flight algorithm state.
package phase

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

// Phase is the controller's current mode.
type Phase int

const (
	Generating Phase = iota
	Solving
	Idle
)

// String returns the phase name shown in the status line.
func (p Phase) String() string {
	switch p {
	case Generating:
		return "Generating"
	case Solving:
		return "Solving"
	case Idle:
		return "Idle"
	default:
		return "Unknown"
	}
}

// ErrStepLimit is returned by Complete when a phase does not finish within
// the step budget, which means the plugged-in algorithm never calls Finish.
var ErrStepLimit = errors.New("phase: step limit reached")

// DefaultStepLimit is the Complete budget used when none is given. It
// grows with cells times (width+height): a random walk along a 1xN or Nx2
// corridor needs on the order of N² steps to reach the maze.
func DefaultStepLimit(width, height int) int {
	width, height = max(width, 1), max(height, 1)
	return 8*width*height*(width+height) + 1024
}

// Config describes the runs a Controller builds.
type Config struct {
	Width     int
	Height    int
	Layout    maze.Layout
	Seed      int64
	Generator maze.GeneratorFactory
	Solver    maze.SolverFactory
}

// Controller owns one grid, one generator and one solver, and forwards
// steps to whichever algorithm the current phase calls for.
type Controller struct {
	cfg       Config
	rng       *rand.Rand
	grid      *maze.Grid
	generator maze.Generator
	solver    maze.Solver
	phase     Phase
	steps     [Idle + 1]int
	run       int
}

// NewController builds a controller in the Generating phase.
// The rng is seeded once, so successive resets produce different mazes
// while a whole session stays reproducible for a given seed.
func NewController(cfg Config) *Controller {
	c := &Controller{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
	c.Reset()
	return c
}

// Reset discards the grid, generator and solver, builds fresh ones and
// returns to Generating.
func (c *Controller) Reset() {
	c.grid = maze.New(c.cfg.Width, c.cfg.Height, maze.WithLayout(c.cfg.Layout))
	c.generator = c.cfg.Generator(c.grid, c.rng)
	c.solver = c.cfg.Solver(c.grid, c.Start(), c.End())
	c.phase = Generating
	c.steps = [Idle + 1]int{}
	c.run++
}

// Resize changes the grid dimensions used from now on and starts a new run.
func (c *Controller) Resize(width, height int) {
	c.cfg.Width = width
	c.cfg.Height = height
	c.Reset()
}

// Advance performs one step of the active algorithm. It returns true when a
// phase boundary was crossed by this step, and always true when Idle.
func (c *Controller) Advance() bool {
	switch c.phase {
	case Generating:
		c.generator.Step()
		c.steps[Generating]++
		if c.grid.Finished() {
			c.grid.ClearFinished()
			c.phase = Solving
			return true
		}
	case Solving:
		c.solver.Step()
		c.steps[Solving]++
		if c.grid.Finished() {
			c.grid.ClearFinished()
			c.phase = Idle
			return true
		}
	default:
		return true
	}
	return false
}

// Complete drains the current phase synchronously. It returns the number of
// steps taken. If limit steps pass without a phase boundary it stops and
// returns ErrStepLimit, leaving the phase unchanged. A limit <= 0 selects
// DefaultStepLimit.
func (c *Controller) Complete(limit int) (int, error) {
	if limit <= 0 {
		limit = DefaultStepLimit(c.grid.Width(), c.grid.Height())
	}
	n := 0
	for {
		if c.phase == Idle {
			return n, nil
		}
		if n >= limit {
			return n, fmt.Errorf("%w: %d steps in %s", ErrStepLimit, n, c.phase)
		}
		n++
		if c.Advance() {
			return n, nil
		}
	}
}

// CompleteRun drains every remaining phase until Idle, applying limit to
// each phase separately. It returns the total number of steps taken.
func (c *Controller) CompleteRun(limit int) (int, error) {
	total := 0
	for c.phase != Idle {
		n, err := c.Complete(limit)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Grid returns the grid of the current run.
func (c *Controller) Grid() *maze.Grid {
	return c.grid
}

// Steps returns how many steps were performed in phase p during this run.
func (c *Controller) Steps(p Phase) int {
	if p < Generating || p > Idle {
		return 0
	}
	return c.steps[p]
}

// Run returns the 1-based number of the current run; it grows on Reset.
func (c *Controller) Run() int {
	return c.run
}

// Seed returns the seed the controller's rng was created with.
func (c *Controller) Seed() int64 {
	return c.cfg.Seed
}

// Start is the solver's start cell, the top-left corner.
func (c *Controller) Start() maze.Coord {
	return maze.C(0, 0)
}

// End is the solver's target cell, the bottom-right corner.
func (c *Controller) End() maze.Coord {
	return maze.C(c.grid.Width()-1, c.grid.Height()-1)
}
