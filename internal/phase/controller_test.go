package phase_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/phase"
)

// eastGenerator connects (0,0) east, then finishes.
type eastGenerator struct {
	grid *maze.Grid
}

func (g *eastGenerator) Step() {
	g.grid.Connect(0, 0, maze.East)
	g.grid.Finish(nil)
}

// scriptedSolver reaches its end cell after three steps.
type scriptedSolver struct {
	grid       *maze.Grid
	start, end maze.Coord
	step       int
}

func (s *scriptedSolver) Step() {
	s.step++
	switch s.step {
	case 1:
		s.grid.SetTag(s.start.X, s.start.Y, maze.TagVisited)
		s.grid.SetSteps(s.start.X, s.start.Y, 0)
	case 2:
		s.grid.SetTag(1, 0, maze.TagVisited)
		s.grid.SetSteps(1, 0, 1)
	case 3:
		s.grid.Finish([]maze.Coord{s.start, maze.C(1, 0), s.end})
	}
}

// stuckGenerator never finishes.
type stuckGenerator struct{}

func (stuckGenerator) Step() {}

type factories struct {
	generators int
	solvers    int
	lastSolver *scriptedSolver
}

func (f *factories) config(w, h int) phase.Config {
	return phase.Config{
		Width:  w,
		Height: h,
		Layout: maze.DefaultLayout(),
		Seed:   7,
		Generator: func(g *maze.Grid, _ *rand.Rand) maze.Generator {
			f.generators++
			return &eastGenerator{grid: g}
		},
		Solver: func(g *maze.Grid, start, end maze.Coord) maze.Solver {
			f.solvers++
			f.lastSolver = &scriptedSolver{grid: g, start: start, end: end}
			return f.lastSolver
		},
	}
}

func TestControllerStartsGenerating(t *testing.T) {
	f := &factories{}
	c := phase.NewController(f.config(2, 2))

	assert.Equal(t, phase.Generating, c.Phase())
	assert.Equal(t, 1, f.generators)
	assert.Equal(t, 1, f.solvers)
	assert.Equal(t, 1, c.Run())
	assert.Equal(t, maze.C(0, 0), c.Start())
	assert.Equal(t, maze.C(1, 1), c.End())
	assert.Equal(t, maze.C(1, 1), f.lastSolver.end)
}

func TestGeneratorFinishMovesToSolving(t *testing.T) {
	f := &factories{}
	c := phase.NewController(f.config(2, 2))

	crossed := c.Advance()

	assert.True(t, crossed)
	assert.True(t, c.Grid().Connected(0, 0, maze.East))
	assert.Equal(t, phase.Solving, c.Phase())
	assert.False(t, c.Grid().Finished(), "finish signal must be consumed")
	assert.Equal(t, 1, c.Steps(phase.Generating))
}

func TestSolverFinishMovesToIdle(t *testing.T) {
	f := &factories{}
	c := phase.NewController(f.config(2, 2))
	require.True(t, c.Advance())

	assert.False(t, c.Advance())
	assert.False(t, c.Advance())
	assert.Equal(t, phase.Solving, c.Phase())
	assert.True(t, c.Advance())

	assert.Equal(t, phase.Idle, c.Phase())
	assert.Equal(t, 3, c.Steps(phase.Solving))
	path := c.Grid().Path()
	require.NotEmpty(t, path)
	assert.Equal(t, maze.C(0, 0), path[0])
	assert.Equal(t, maze.C(1, 1), path[len(path)-1])
	assert.False(t, c.Grid().Finished())
}

func TestIdleAlwaysReportsBoundary(t *testing.T) {
	f := &factories{}
	c := phase.NewController(f.config(2, 2))
	_, err := c.Complete(0)
	require.NoError(t, err)
	_, err = c.Complete(0)
	require.NoError(t, err)
	require.Equal(t, phase.Idle, c.Phase())

	for i := 0; i < 3; i++ {
		assert.True(t, c.Advance())
	}
	assert.Equal(t, 0, c.Steps(phase.Idle))
	assert.Equal(t, 3, c.Steps(phase.Solving), "idle advances do no work")
}

func TestCompleteDrainsOnePhase(t *testing.T) {
	f := &factories{}
	c := phase.NewController(f.config(2, 2))

	n, err := c.Complete(0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, phase.Solving, c.Phase())

	n, err = c.Complete(0)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, phase.Idle, c.Phase())

	n, err = c.Complete(0)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCompleteStepLimit(t *testing.T) {
	cfg := (&factories{}).config(3, 3)
	cfg.Generator = func(*maze.Grid, *rand.Rand) maze.Generator { return stuckGenerator{} }
	c := phase.NewController(cfg)

	n, err := c.Complete(50)
	require.ErrorIs(t, err, phase.ErrStepLimit)
	assert.Equal(t, 50, n)
	assert.Equal(t, phase.Generating, c.Phase())
	assert.Equal(t, 50, c.Steps(phase.Generating))
}

func TestCompleteRunReachesIdle(t *testing.T) {
	f := &factories{}
	c := phase.NewController(f.config(2, 2))

	n, err := c.CompleteRun(0)
	require.NoError(t, err)
	assert.Equal(t, 1+3, n)
	assert.Equal(t, phase.Idle, c.Phase())

	n, err = c.CompleteRun(0)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCompleteRunStopsAtLimit(t *testing.T) {
	cfg := (&factories{}).config(3, 3)
	cfg.Generator = func(*maze.Grid, *rand.Rand) maze.Generator { return stuckGenerator{} }
	c := phase.NewController(cfg)

	n, err := c.CompleteRun(10)
	require.ErrorIs(t, err, phase.ErrStepLimit)
	assert.Equal(t, 10, n)
	assert.Equal(t, phase.Generating, c.Phase())
}

func TestDefaultStepLimitGrowsWithGrid(t *testing.T) {
	assert.Greater(t, phase.DefaultStepLimit(20, 20), phase.DefaultStepLimit(2, 2))
	assert.Greater(t, phase.DefaultStepLimit(1, 1), 0)
	assert.Equal(t, phase.DefaultStepLimit(1, 1), phase.DefaultStepLimit(0, -3))
	// Quadratic along a corridor, not linear in the cell count.
	assert.GreaterOrEqual(t, phase.DefaultStepLimit(1, 200), 8*200*200)
	assert.GreaterOrEqual(t, phase.DefaultStepLimit(200, 2), 8*200*200)
}

func TestResetMidSolving(t *testing.T) {
	f := &factories{}
	c := phase.NewController(f.config(4, 3))
	require.True(t, c.Advance())
	c.Advance()
	require.Equal(t, phase.Solving, c.Phase())
	old := c.Grid()

	c.Reset()

	assert.Equal(t, phase.Generating, c.Phase())
	assert.NotSame(t, old, c.Grid())
	assert.Equal(t, 4, c.Grid().Width())
	assert.Equal(t, 3, c.Grid().Height())
	assert.Zero(t, c.Grid().OpenCount())
	assert.False(t, c.Grid().Connected(0, 0, maze.East))
	assert.Equal(t, 2, f.generators)
	assert.Equal(t, 2, f.solvers)
	assert.Zero(t, c.Steps(phase.Generating))
	assert.Zero(t, c.Steps(phase.Solving))
	assert.Equal(t, 2, c.Run())
}

func TestResizeStartsNewRun(t *testing.T) {
	f := &factories{}
	c := phase.NewController(f.config(2, 2))
	require.True(t, c.Advance())

	c.Resize(6, 3)

	assert.Equal(t, phase.Generating, c.Phase())
	assert.Equal(t, 6, c.Grid().Width())
	assert.Equal(t, 3, c.Grid().Height())
	assert.Equal(t, maze.C(5, 2), c.End())
	assert.Equal(t, maze.C(5, 2), f.lastSolver.end)
	assert.Equal(t, 2, c.Run())
}

func TestPhaseNeverMovesBackward(t *testing.T) {
	f := &factories{}
	c := phase.NewController(f.config(2, 2))
	rng := rand.New(rand.NewSource(1))

	prev := c.Phase()
	for i := 0; i < 500; i++ {
		reset := false
		switch rng.Intn(10) {
		case 0:
			c.Reset()
			reset = true
		case 1:
			_, err := c.Complete(0)
			require.NoError(t, err)
		default:
			c.Advance()
		}

		cur := c.Phase()
		if reset {
			require.Equal(t, phase.Generating, cur)
		} else {
			require.GreaterOrEqual(t, cur, prev, "phase went from %v to %v", prev, cur)
			require.LessOrEqual(t, cur-prev, phase.Phase(1), "phase skipped from %v to %v", prev, cur)
		}
		prev = cur
	}
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "Generating", phase.Generating.String())
	assert.Equal(t, "Solving", phase.Solving.String())
	assert.Equal(t, "Idle", phase.Idle.String())
	assert.Equal(t, "Unknown", phase.Phase(9).String())
}
