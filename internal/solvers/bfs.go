package solvers

import (
	"slices"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

type queueItem struct {
	at    maze.Coord
	depth int
}

// BFS explores the maze in rings of equal distance from the start and
// labels every cell it reaches with that distance. Each Step dequeues one
// cell and enqueues its unseen open neighbors.
type BFS struct {
	grid   *maze.Grid
	start  maze.Coord
	end    maze.Coord
	queue  []queueItem
	seen   []bool
	parent []maze.Coord
	last   maze.Coord
	done   bool
}

// NewBFS creates a breadth-first solver bound to g.
func NewBFS(g *maze.Grid, start, end maze.Coord) *BFS {
	n := g.Width() * g.Height()
	s := &BFS{
		grid:   g,
		start:  start,
		end:    end,
		queue:  make([]queueItem, 0, n),
		seen:   make([]bool, n),
		parent: make([]maze.Coord, n),
		last:   maze.NoCoord,
	}
	if g.InBounds(start.X, start.Y) {
		s.enqueue(start, 0, maze.NoCoord)
	}
	return s
}

func (s *BFS) idx(c maze.Coord) int {
	return c.Y*s.grid.Width() + c.X
}

func (s *BFS) enqueue(c maze.Coord, depth int, parent maze.Coord) {
	s.seen[s.idx(c)] = true
	s.parent[s.idx(c)] = parent
	s.grid.SetSteps(c.X, c.Y, depth)
	s.grid.SetTag(c.X, c.Y, maze.TagFrontier)
	s.queue = append(s.queue, queueItem{at: c, depth: depth})
}

// Step visits the next queued cell.
func (s *BFS) Step() {
	if s.done {
		return
	}
	if s.last != maze.NoCoord {
		s.grid.SetTag(s.last.X, s.last.Y, maze.TagVisited)
	}
	if len(s.queue) == 0 {
		s.done = true
		finish(s.grid, nil)
		return
	}

	item := s.queue[0]
	s.queue = s.queue[1:]
	s.last = item.at
	s.grid.SetTag(item.at.X, item.at.Y, maze.TagCurrent)
	s.grid.Highlight(item.at.X, item.at.Y)

	if item.at == s.end {
		s.done = true
		finish(s.grid, s.route())
		return
	}

	for _, n := range s.grid.Neighbors(item.at.X, item.at.Y) {
		if !s.seen[s.idx(n)] {
			s.enqueue(n, item.depth+1, item.at)
		}
	}
}

// route follows parent links back from the end cell.
func (s *BFS) route() []maze.Coord {
	var path []maze.Coord
	for c := s.end; c != maze.NoCoord; c = s.parent[s.idx(c)] {
		path = append(path, c)
	}
	slices.Reverse(path)
	return path
}
