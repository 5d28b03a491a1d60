package solvers

import (
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// DFS follows one corridor as deep as it goes and backs up at dead ends.
// Cells are labeled with the order they were entered; the stack is the
// current route, so it becomes the path when the end is reached.
type DFS struct {
	grid  *maze.Grid
	end   maze.Coord
	stack []maze.Coord
	seen  []bool
	order int
	done  bool
}

// NewDFS creates a depth-first solver bound to g.
func NewDFS(g *maze.Grid, start, end maze.Coord) *DFS {
	s := &DFS{
		grid: g,
		end:  end,
		seen: make([]bool, g.Width()*g.Height()),
	}
	if g.InBounds(start.X, start.Y) {
		s.push(start)
	}
	return s
}

func (s *DFS) push(c maze.Coord) {
	s.seen[c.Y*s.grid.Width()+c.X] = true
	s.grid.SetSteps(c.X, c.Y, s.order)
	s.order++
	s.stack = append(s.stack, c)
	s.grid.SetTag(c.X, c.Y, maze.TagCurrent)
	s.grid.Highlight(c.X, c.Y)
}

// Step enters one new cell or retreats from a dead end.
func (s *DFS) Step() {
	if s.done {
		return
	}
	if len(s.stack) == 0 {
		s.done = true
		finish(s.grid, nil)
		return
	}

	top := s.stack[len(s.stack)-1]
	if top == s.end {
		s.done = true
		finish(s.grid, s.stack)
		return
	}

	for _, n := range s.grid.Neighbors(top.X, top.Y) {
		if !s.seen[n.Y*s.grid.Width()+n.X] {
			s.grid.SetTag(top.X, top.Y, maze.TagVisited)
			s.push(n)
			return
		}
	}

	s.stack = s.stack[:len(s.stack)-1]
	s.grid.SetTag(top.X, top.Y, maze.TagDead)
	if len(s.stack) > 0 {
		next := s.stack[len(s.stack)-1]
		s.grid.SetTag(next.X, next.Y, maze.TagCurrent)
		s.grid.Highlight(next.X, next.Y)
	}
}
