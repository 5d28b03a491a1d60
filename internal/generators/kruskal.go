package generators

import (
	"math/rand"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

// disjointSet is a union-find forest over cell indices with path
// compression and union by rank.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	s := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range s.parent {
		s.parent[i] = i
	}
	return s
}

func (s *disjointSet) find(i int) int {
	if s.parent[i] != i {
		s.parent[i] = s.find(s.parent[i])
	}
	return s.parent[i]
}

// union merges the sets of a and b. It returns false if they were already
// the same set.
func (s *disjointSet) union(a, b int) bool {
	x, y := s.find(a), s.find(b)
	if x == y {
		return false
	}
	switch {
	case s.rank[x] > s.rank[y]:
		s.parent[y] = x
	case s.rank[x] < s.rank[y]:
		s.parent[x] = y
	default:
		s.parent[y] = x
		s.rank[x]++
	}
	return true
}

type wall struct {
	from maze.Coord
	dir  maze.Direction
}

// Kruskal considers every interior wall once, in random order, and opens it
// when the cells on either side are not yet connected. One wall per Step.
type Kruskal struct {
	grid    *maze.Grid
	sets    *disjointSet
	walls   []wall
	next    int
	carved  int
	done    bool
	touched maze.Coord
}

// NewKruskal creates a Kruskal generator bound to g. The wall order is
// drawn from rng up front.
func NewKruskal(g *maze.Grid, rng *rand.Rand) *Kruskal {
	w, h := g.Width(), g.Height()
	walls := make([]wall, 0, 2*w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x+1 < w {
				walls = append(walls, wall{from: maze.C(x, y), dir: maze.East})
			}
			if y+1 < h {
				walls = append(walls, wall{from: maze.C(x, y), dir: maze.South})
			}
		}
	}
	rng.Shuffle(len(walls), func(i, j int) {
		walls[i], walls[j] = walls[j], walls[i]
	})

	return &Kruskal{
		grid:    g,
		sets:    newDisjointSet(w * h),
		walls:   walls,
		touched: maze.NoCoord,
	}
}

// Step examines the next wall.
func (k *Kruskal) Step() {
	if k.done {
		return
	}
	if k.touched != maze.NoCoord {
		k.grid.SetTag(k.touched.X, k.touched.Y, maze.TagVisited)
	}

	w := k.grid.Width()
	if k.carved == w*k.grid.Height()-1 || k.next >= len(k.walls) {
		k.done = true
		done(k.grid)
		return
	}

	wl := k.walls[k.next]
	k.next++
	to := wl.from.Step(wl.dir)
	k.grid.Highlight(wl.from.X, wl.from.Y)
	k.touched = wl.from
	if !k.sets.union(wl.from.Y*w+wl.from.X, to.Y*w+to.X) {
		k.grid.SetTag(wl.from.X, wl.from.Y, maze.TagDead)
		return
	}
	k.grid.Connect(wl.from.X, wl.from.Y, wl.dir)
	k.carved++
	k.grid.SetTag(wl.from.X, wl.from.Y, maze.TagCurrent)
	k.grid.SetTag(to.X, to.Y, maze.TagVisited)
}
