// Package generators holds the maze carving algorithms. Each one performs a
// bounded amount of work per Step so the platform can animate it, and calls
// Finish on the grid once every cell is connected.
package generators

import (
	"math/rand"

	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

func init() {
	registry.RegisterGenerator("backtracker", "Recursive Backtracker", func(g *maze.Grid, rng *rand.Rand) maze.Generator {
		return NewBacktracker(g, rng)
	})
	registry.RegisterGenerator("kruskal", "Randomized Kruskal", func(g *maze.Grid, rng *rand.Rand) maze.Generator {
		return NewKruskal(g, rng)
	})
	registry.RegisterGenerator("wilson", "Wilson (loop-erased walk)", func(g *maze.Grid, rng *rand.Rand) maze.Generator {
		return NewWilson(g, rng)
	})
}

// exits returns the directions from c that stay on the grid.
func exits(g *maze.Grid, c maze.Coord) []maze.Direction {
	out := make([]maze.Direction, 0, 4)
	for _, d := range maze.Directions {
		n := c.Step(d)
		if g.InBounds(n.X, n.Y) {
			out = append(out, d)
		}
	}
	return out
}

func randomCell(g *maze.Grid, rng *rand.Rand) maze.Coord {
	return maze.C(rng.Intn(g.Width()), rng.Intn(g.Height()))
}

// done clears the highlight and signals completion.
func done(g *maze.Grid) {
	g.Highlight(maze.NoCoord.X, maze.NoCoord.Y)
	g.Finish(nil)
}
