package generators_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/generators"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/phase"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

var sizes = []struct{ w, h int }{
	{1, 1},
	{1, 6},
	{6, 1},
	{2, 2},
	{7, 4},
	{12, 12},
}

// generate steps f until the grid reports completion.
func generate(t *testing.T, f maze.GeneratorFactory, w, h int, seed int64) (*maze.Grid, int) {
	t.Helper()
	g := maze.New(w, h)
	gen := f(g, rand.New(rand.NewSource(seed)))

	limit := phase.DefaultStepLimit(w, h)
	for n := 1; n <= limit; n++ {
		gen.Step()
		if g.Finished() {
			return g, n
		}
	}
	t.Fatalf("%dx%d seed %d: generator did not finish in %d steps", w, h, seed, limit)
	return nil, 0
}

// reachable counts cells connected to (0,0).
func reachable(g *maze.Grid) int {
	seen := map[maze.Coord]bool{maze.C(0, 0): true}
	queue := []maze.Coord{maze.C(0, 0)}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(c.X, c.Y) {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(seen)
}

func TestGeneratorsProducePerfectMazes(t *testing.T) {
	gens := registry.Generators()
	require.GreaterOrEqual(t, len(gens), 3)

	for _, info := range gens {
		f, err := registry.Generator(info.ID)
		require.NoError(t, err)

		t.Run(info.ID, func(t *testing.T) {
			for _, sz := range sizes {
				for seed := int64(1); seed <= 3; seed++ {
					g, _ := generate(t, f, sz.w, sz.h, seed)
					cells := sz.w * sz.h
					assert.Equal(t, cells-1, g.OpenCount(), "%dx%d seed %d passages", sz.w, sz.h, seed)
					assert.Equal(t, cells, reachable(g), "%dx%d seed %d reachability", sz.w, sz.h, seed)
				}
			}
		})
	}
}

func TestGeneratorsLeaveNeutralGrid(t *testing.T) {
	for _, info := range registry.Generators() {
		f, _ := registry.Generator(info.ID)
		g, _ := generate(t, f, 5, 5, 11)
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				assert.Equal(t, maze.TagNeutral, g.Tag(x, y), "%s (%d,%d)", info.ID, x, y)
			}
		}
		assert.Equal(t, maze.NoCoord, g.Highlighted(), info.ID)
		assert.Nil(t, g.Path(), info.ID)
	}
}

func TestGeneratorsAreDeterministicPerSeed(t *testing.T) {
	for _, info := range registry.Generators() {
		f, _ := registry.Generator(info.ID)
		a, na := generate(t, f, 8, 6, 99)
		b, nb := generate(t, f, 8, 6, 99)
		assert.Equal(t, na, nb, info.ID)
		for y := 0; y < 6; y++ {
			for x := 0; x < 8; x++ {
				ca, _ := a.At(x, y)
				cb, _ := b.At(x, y)
				assert.Equal(t, ca.ConnectedEast, cb.ConnectedEast, "%s (%d,%d)", info.ID, x, y)
				assert.Equal(t, ca.ConnectedSouth, cb.ConnectedSouth, "%s (%d,%d)", info.ID, x, y)
			}
		}
	}
}

func TestStepAfterFinishIsNoop(t *testing.T) {
	g := maze.New(3, 3)
	gen := generators.NewBacktracker(g, rand.New(rand.NewSource(5)))
	for !g.Finished() {
		gen.Step()
	}
	g.ClearFinished()
	open := g.OpenCount()

	gen.Step()
	assert.False(t, g.Finished())
	assert.Equal(t, open, g.OpenCount())
}

func TestBacktrackerStepCount(t *testing.T) {
	// Every cell is pushed once and popped once, plus the seeding step.
	f, err := registry.Generator("backtracker")
	require.NoError(t, err)
	_, n := generate(t, f, 6, 4, 3)
	assert.Equal(t, 2*6*4, n)
}

func TestKruskalStopsAtSpanningTree(t *testing.T) {
	g := maze.New(4, 4)
	k := generators.NewKruskal(g, rand.New(rand.NewSource(8)))
	steps := 0
	for !g.Finished() {
		k.Step()
		steps++
		require.LessOrEqual(t, steps, 2*4*3+1)
	}
	assert.Equal(t, 15, g.OpenCount())
}

func TestWilsonTagsOnlyCarvedCells(t *testing.T) {
	g := maze.New(6, 6)
	w := generators.NewWilson(g, rand.New(rand.NewSource(21)))
	for i := 0; i < 200 && !g.Finished(); i++ {
		w.Step()
		for y := 0; y < 6; y++ {
			for x := 0; x < 6; x++ {
				if g.Tag(x, y) != maze.TagUnvisited {
					continue
				}
				// Unvisited cells have no carved passages.
				assert.Empty(t, g.Neighbors(x, y), "(%d,%d) step %d", x, y, i)
			}
		}
	}
}
