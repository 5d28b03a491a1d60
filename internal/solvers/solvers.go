// Package solvers holds the maze search algorithms. A solver walks open
// passages from the start cell, labels what it reaches and calls Finish
// with the route once it stands on the end cell. When the end cannot be
// reached it calls Finish(nil).
package solvers

import (
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

func init() {
	registry.RegisterSolver("bfs", "Breadth-first search", func(g *maze.Grid, start, end maze.Coord) maze.Solver {
		return NewBFS(g, start, end)
	})
	registry.RegisterSolver("dfs", "Depth-first search", func(g *maze.Grid, start, end maze.Coord) maze.Solver {
		return NewDFS(g, start, end)
	})
}

func finish(g *maze.Grid, path []maze.Coord) {
	g.Highlight(maze.NoCoord.X, maze.NoCoord.Y)
	g.Finish(path)
}
