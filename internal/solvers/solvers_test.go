package solvers_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/vovakirdan/tui-maze/internal/generators"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/solvers"
)

// carve builds a finished maze with the named generator.
func carve(t *testing.T, id string, w, h int, seed int64) *maze.Grid {
	t.Helper()
	f, err := registry.Generator(id)
	require.NoError(t, err)

	g := maze.New(w, h)
	gen := f(g, rand.New(rand.NewSource(seed)))
	for !g.Finished() {
		gen.Step()
	}
	g.ClearFinished()
	return g
}

func solve(t *testing.T, s maze.Solver, g *maze.Grid) int {
	t.Helper()
	limit := 4*g.Width()*g.Height() + 8
	for n := 1; n <= limit; n++ {
		s.Step()
		if g.Finished() {
			return n
		}
	}
	t.Fatalf("solver did not finish within %d steps", limit)
	return 0
}

func assertRoute(t *testing.T, g *maze.Grid, path []maze.Coord, start, end maze.Coord) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, start, path[0])
	assert.Equal(t, end, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		d, ok := path[i-1].DirectionTo(path[i])
		require.True(t, ok, "%v and %v are not adjacent", path[i-1], path[i])
		assert.True(t, g.Connected(path[i-1].X, path[i-1].Y, d), "wall between %v and %v", path[i-1], path[i])
	}
}

func TestSolversFindRoute(t *testing.T) {
	solverInfos := registry.Solvers()
	require.GreaterOrEqual(t, len(solverInfos), 2)

	for _, si := range solverInfos {
		sf, err := registry.Solver(si.ID)
		require.NoError(t, err)

		t.Run(si.ID, func(t *testing.T) {
			for _, gi := range registry.Generators() {
				for _, sz := range []struct{ w, h int }{{1, 1}, {2, 2}, {9, 5}, {15, 15}} {
					g := carve(t, gi.ID, sz.w, sz.h, 4)
					start, end := maze.C(0, 0), maze.C(sz.w-1, sz.h-1)
					solve(t, sf(g, start, end), g)
					assertRoute(t, g, g.Path(), start, end)
				}
			}
		})
	}
}

func TestBFSFindsShortestRoute(t *testing.T) {
	// Open room: every edge carved, so the shortest route is w+h-1 cells.
	g := maze.New(5, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			g.Connect(x, y, maze.East)
			g.Connect(x, y, maze.South)
		}
	}
	solve(t, solvers.NewBFS(g, maze.C(0, 0), maze.C(4, 3)), g)

	assert.Len(t, g.Path(), 5+4-1)
	assert.Equal(t, 7, g.Steps(4, 3))
	assert.Equal(t, 0, g.Steps(0, 0))
}

func TestBFSLabelsDistance(t *testing.T) {
	g := maze.New(6, 1)
	for x := 0; x < 5; x++ {
		g.Connect(x, 0, maze.East)
	}
	solve(t, solvers.NewBFS(g, maze.C(0, 0), maze.C(5, 0)), g)

	for x := 0; x < 6; x++ {
		assert.Equal(t, x, g.Steps(x, 0), "distance of (%d,0)", x)
	}
}

func TestDFSLabelsVisitOrder(t *testing.T) {
	// A T junction at (1,0): east is tried before south, so (1,1) is never entered.
	g := maze.New(3, 2)
	g.Connect(0, 0, maze.East)
	g.Connect(1, 0, maze.East)
	g.Connect(1, 0, maze.South)
	g.Connect(2, 0, maze.South)

	solve(t, solvers.NewDFS(g, maze.C(0, 0), maze.C(2, 1)), g)

	assert.Equal(t, 0, g.Steps(0, 0))
	assert.Equal(t, 1, g.Steps(1, 0))
	assert.Equal(t, 2, g.Steps(2, 0))
	assert.Equal(t, 3, g.Steps(2, 1))
	assert.Equal(t, maze.UnlabeledSteps, g.Steps(1, 1))
	assert.Equal(t, maze.UnlabeledSteps, g.Steps(0, 1))
	assert.Equal(t, []maze.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}}, g.Path())
}

func TestUnreachableEndFinishesWithoutPath(t *testing.T) {
	ctors := map[string]func(*maze.Grid, maze.Coord, maze.Coord) maze.Solver{
		"bfs": func(g *maze.Grid, s, e maze.Coord) maze.Solver { return solvers.NewBFS(g, s, e) },
		"dfs": func(g *maze.Grid, s, e maze.Coord) maze.Solver { return solvers.NewDFS(g, s, e) },
	}
	for name, ctor := range ctors {
		g := maze.New(2, 2)
		g.Connect(0, 0, maze.East)

		n := solve(t, ctor(g, maze.C(0, 0), maze.C(1, 1)), g)
		assert.Nil(t, g.Path(), name)
		assert.Greater(t, n, 1, name)
		assert.Equal(t, maze.TagNeutral, g.Tag(0, 0), name)
	}
}

func TestSolverIgnoresStepsAfterFinish(t *testing.T) {
	g := maze.New(1, 1)
	s := solvers.NewBFS(g, maze.C(0, 0), maze.C(0, 0))
	s.Step()
	require.True(t, g.Finished())
	g.ClearFinished()

	s.Step()
	assert.False(t, g.Finished())
	assert.Equal(t, []maze.Coord{{X: 0, Y: 0}}, g.Path())
}
