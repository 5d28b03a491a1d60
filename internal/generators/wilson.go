package generators

import (
	"math/rand"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

type wilsonMode int

const (
	wilsonSeed wilsonMode = iota
	wilsonPick
	wilsonWalk
	wilsonCarve
)

// Wilson builds a uniform spanning tree with loop-erased random walks. A
// walk starts from a cell outside the maze and wanders until it hits the
// maze; each cell remembers only its latest exit, which erases loops. The
// walk is then carved into the maze one cell per Step.
type Wilson struct {
	grid      *maze.Grid
	rng       *rand.Rand
	mode      wilsonMode
	inMaze    []bool
	exit      []maze.Direction
	remaining []int
	added     int
	start     maze.Coord
	cur       maze.Coord
	walked    []maze.Coord
	done      bool
}

// NewWilson creates a Wilson generator bound to g.
func NewWilson(g *maze.Grid, rng *rand.Rand) *Wilson {
	n := g.Width() * g.Height()
	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}
	return &Wilson{
		grid:      g,
		rng:       rng,
		inMaze:    make([]bool, n),
		exit:      make([]maze.Direction, n),
		remaining: remaining,
	}
}

func (w *Wilson) idx(c maze.Coord) int {
	return c.Y*w.grid.Width() + c.X
}

func (w *Wilson) add(c maze.Coord) {
	w.inMaze[w.idx(c)] = true
	w.added++
	w.grid.SetTag(c.X, c.Y, maze.TagVisited)
}

// pickOutside removes and returns a random cell not yet in the maze.
func (w *Wilson) pickOutside() (maze.Coord, bool) {
	for len(w.remaining) > 0 {
		i := w.rng.Intn(len(w.remaining))
		cell := w.remaining[i]
		last := len(w.remaining) - 1
		w.remaining[i] = w.remaining[last]
		w.remaining = w.remaining[:last]
		if !w.inMaze[cell] {
			return maze.C(cell%w.grid.Width(), cell/w.grid.Width()), true
		}
	}
	return maze.NoCoord, false
}

// Step seeds the maze, starts a walk, takes one walk step, or carves one
// cell of a finished walk.
func (w *Wilson) Step() {
	if w.done {
		return
	}
	switch w.mode {
	case wilsonSeed:
		w.add(randomCell(w.grid, w.rng))
		w.mode = wilsonPick
		w.finishIfFull()
	case wilsonPick:
		c, ok := w.pickOutside()
		if !ok {
			w.finishIfFull()
			return
		}
		w.start, w.cur = c, c
		w.walked = append(w.walked[:0], c)
		w.grid.SetTag(c.X, c.Y, maze.TagCurrent)
		w.grid.Highlight(c.X, c.Y)
		w.mode = wilsonWalk
	case wilsonWalk:
		dirs := exits(w.grid, w.cur)
		d := dirs[w.rng.Intn(len(dirs))]
		w.exit[w.idx(w.cur)] = d
		w.grid.SetTag(w.cur.X, w.cur.Y, maze.TagFrontier)
		w.cur = w.cur.Step(d)
		w.grid.Highlight(w.cur.X, w.cur.Y)
		if w.inMaze[w.idx(w.cur)] {
			w.cur = w.start
			w.mode = wilsonCarve
			return
		}
		w.walked = append(w.walked, w.cur)
		w.grid.SetTag(w.cur.X, w.cur.Y, maze.TagCurrent)
	case wilsonCarve:
		d := w.exit[w.idx(w.cur)]
		w.grid.Connect(w.cur.X, w.cur.Y, d)
		w.add(w.cur)
		w.cur = w.cur.Step(d)
		w.grid.Highlight(w.cur.X, w.cur.Y)
		if !w.inMaze[w.idx(w.cur)] {
			return
		}
		// Cells erased from the walk go back to unvisited.
		for _, c := range w.walked {
			if !w.inMaze[w.idx(c)] {
				w.grid.SetTag(c.X, c.Y, maze.TagUnvisited)
			}
		}
		w.mode = wilsonPick
		w.finishIfFull()
	}
}

func (w *Wilson) finishIfFull() {
	if w.added == len(w.inMaze) {
		w.done = true
		done(w.grid)
	}
}
