package generators

import (
	"math/rand"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

// Backtracker is the recursive backtracker: a randomized depth-first walk
// that carves into an unvisited neighbor, or backs up one cell when there
// is none. Cells on the stack are tagged frontier and popped cells visited.
type Backtracker struct {
	grid    *maze.Grid
	rng     *rand.Rand
	visited []bool
	stack   []maze.Coord
	started bool
	done    bool
}

// NewBacktracker creates a backtracker bound to g.
func NewBacktracker(g *maze.Grid, rng *rand.Rand) *Backtracker {
	return &Backtracker{
		grid:    g,
		rng:     rng,
		visited: make([]bool, g.Width()*g.Height()),
	}
}

func (b *Backtracker) seen(c maze.Coord) bool {
	return b.visited[c.Y*b.grid.Width()+c.X]
}

func (b *Backtracker) push(c maze.Coord) {
	b.visited[c.Y*b.grid.Width()+c.X] = true
	b.stack = append(b.stack, c)
	b.grid.SetTag(c.X, c.Y, maze.TagCurrent)
	b.grid.Highlight(c.X, c.Y)
}

// Step carves one passage or backtracks one cell.
func (b *Backtracker) Step() {
	if b.done {
		return
	}
	if !b.started {
		b.started = true
		b.push(randomCell(b.grid, b.rng))
		return
	}

	top := b.stack[len(b.stack)-1]
	var open []maze.Direction
	for _, d := range exits(b.grid, top) {
		if !b.seen(top.Step(d)) {
			open = append(open, d)
		}
	}

	if len(open) == 0 {
		b.stack = b.stack[:len(b.stack)-1]
		b.grid.SetTag(top.X, top.Y, maze.TagVisited)
		if len(b.stack) == 0 {
			b.done = true
			done(b.grid)
			return
		}
		next := b.stack[len(b.stack)-1]
		b.grid.SetTag(next.X, next.Y, maze.TagCurrent)
		b.grid.Highlight(next.X, next.Y)
		return
	}

	d := open[b.rng.Intn(len(open))]
	b.grid.Connect(top.X, top.Y, d)
	b.grid.SetTag(top.X, top.Y, maze.TagFrontier)
	b.push(top.Step(d))
}
