// Package maze provides the maze grid model, the compass directions used to
// address its edges, and the step interfaces that generation and solving
// algorithms implement.
//
// The package is UI-agnostic and never fails on bad coordinates: mutators
// ignore out-of-range cells and queries return a sentinel.
package maze

// UnlabeledSteps is the Steps value of a cell no algorithm has labeled.
const UnlabeledSteps = 1

// Cell is one grid position. Only the east and south edges are stored;
// the north and west edges belong to the neighbors above and to the left.
type Cell struct {
	ConnectedEast  bool
	ConnectedSouth bool
	Steps          int // distance or visit-order label, UnlabeledSteps by default
	Tag            Tag
}

// Layout describes the on-screen size of a tile and of the walls between
// tiles, in screen cells.
type Layout struct {
	TileWidth  int
	TileHeight int
	Border     int
}

// DefaultLayout is three columns per tile, one row per tile, one-cell walls.
func DefaultLayout() Layout {
	return Layout{TileWidth: 3, TileHeight: 1, Border: 1}
}

// Option configures a Grid at construction.
type Option func(*Grid)

// Clamped returns l with non-positive tile sizes raised to 1 and a
// negative border raised to 0.
func (l Layout) Clamped() Layout {
	l.TileWidth = max(l.TileWidth, 1)
	l.TileHeight = max(l.TileHeight, 1)
	l.Border = max(l.Border, 0)
	return l
}

// WithLayout sets the grid's screen layout, clamped.
func WithLayout(l Layout) Option {
	return func(g *Grid) {
		g.layout = l.Clamped()
	}
}

// Grid is a width×height maze. Cells are stored row-major: index = y*W + x.
type Grid struct {
	width       int
	height      int
	cells       []Cell
	highlighted Coord
	path        []Coord
	finished    bool
	layout      Layout
}

// New creates a grid with every edge closed. Width and height below 1 are
// raised to 1.
func New(width, height int, opts ...Option) *Grid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	g := &Grid{
		width:       width,
		height:      height,
		cells:       make([]Cell, width*height),
		highlighted: NoCoord,
		layout:      DefaultLayout(),
	}
	for i := range g.cells {
		g.cells[i].Steps = UnlabeledSteps
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// canonical rewrites a North or West edge as the South or East edge of the
// neighbor that stores it.
func canonical(x, y int, d Direction) (int, int, Direction) {
	switch d {
	case North:
		return x, y - 1, South
	case West:
		return x - 1, y, East
	}
	return x, y, d
}

// edgeIndex resolves an edge request to the index of the owning cell.
// ok is false if either endpoint of the edge is off the grid.
func (g *Grid) edgeIndex(x, y int, d Direction) (idx int, dir Direction, ok bool) {
	if !d.Valid() {
		return 0, d, false
	}
	cx, cy, cd := canonical(x, y, d)
	if !g.InBounds(cx, cy) {
		return 0, cd, false
	}
	// The far end of an east/south edge must exist too.
	if cd == East && cx+1 >= g.width {
		return 0, cd, false
	}
	if cd == South && cy+1 >= g.height {
		return 0, cd, false
	}
	return g.index(cx, cy), cd, true
}

// Connect opens the edge between (x, y) and its neighbor in direction d.
// Requests that leave the grid are ignored.
func (g *Grid) Connect(x, y int, d Direction) {
	idx, cd, ok := g.edgeIndex(x, y, d)
	if !ok {
		return
	}
	if cd == South {
		g.cells[idx].ConnectedSouth = true
	} else {
		g.cells[idx].ConnectedEast = true
	}
}

// Connected reports whether the edge between (x, y) and its neighbor in
// direction d is open. Edges that leave the grid are never open.
func (g *Grid) Connected(x, y int, d Direction) bool {
	idx, cd, ok := g.edgeIndex(x, y, d)
	if !ok {
		return false
	}
	if cd == South {
		return g.cells[idx].ConnectedSouth
	}
	return g.cells[idx].ConnectedEast
}

// Neighbors returns the cells reachable from (x, y) through open edges,
// in North, East, South, West order.
func (g *Grid) Neighbors(x, y int) []Coord {
	if !g.InBounds(x, y) {
		return nil
	}
	out := make([]Coord, 0, 4)
	for _, d := range Directions {
		if g.Connected(x, y, d) {
			out = append(out, C(x, y).Step(d))
		}
	}
	return out
}

// OpenCount returns the number of open edges in the grid.
// A perfect maze has exactly width*height-1.
func (g *Grid) OpenCount() int {
	n := 0
	for _, c := range g.cells {
		if c.ConnectedEast {
			n++
		}
		if c.ConnectedSouth {
			n++
		}
	}
	return n
}

// At returns a copy of the cell at (x, y); ok is false out of range.
func (g *Grid) At(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{Steps: -1}, false
	}
	return g.cells[g.index(x, y)], true
}

// Steps returns the cell's label, or -1 out of range.
func (g *Grid) Steps(x, y int) int {
	if !g.InBounds(x, y) {
		return -1
	}
	return g.cells[g.index(x, y)].Steps
}

// SetSteps sets the cell's label.
func (g *Grid) SetSteps(x, y, steps int) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.index(x, y)].Steps = steps
}

// SetTag sets the cell's display state.
func (g *Grid) SetTag(x, y int, t Tag) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.index(x, y)].Tag = t
}

// Tag returns the cell's display state, or TagUnvisited out of range.
func (g *Grid) Tag(x, y int) Tag {
	if !g.InBounds(x, y) {
		return TagUnvisited
	}
	return g.cells[g.index(x, y)].Tag
}

// Highlight marks (x, y) as the active cell. The coordinate is stored as
// given; an off-grid highlight matches no cell.
func (g *Grid) Highlight(x, y int) {
	g.highlighted = C(x, y)
}

// Highlighted returns the active cell, NoCoord by default.
func (g *Grid) Highlighted() Coord {
	return g.highlighted
}

// Finish signals that the running algorithm is done. It attaches path (nil
// for none) and resets every cell to TagNeutral. Algorithms call it at most
// once per phase.
func (g *Grid) Finish(path []Coord) {
	if path != nil {
		g.path = append([]Coord(nil), path...)
	} else {
		g.path = nil
	}
	g.finished = true
	for i := range g.cells {
		g.cells[i].Tag = TagNeutral
	}
}

// Finished reports whether Finish was called since the last ClearFinished.
func (g *Grid) Finished() bool {
	return g.finished
}

// ClearFinished consumes the finish signal.
func (g *Grid) ClearFinished() {
	g.finished = false
}

// Path returns a copy of the solution path attached by Finish, or nil.
func (g *Grid) Path() []Coord {
	if g.path == nil {
		return nil
	}
	return append([]Coord(nil), g.path...)
}

// Layout returns the grid's screen layout.
func (g *Grid) Layout() Layout {
	return g.layout
}

// PixelWidth returns the rendered width in screen cells, walls included.
func (g *Grid) PixelWidth() int {
	return g.width*(g.layout.TileWidth+g.layout.Border) + g.layout.Border
}

// PixelHeight returns the rendered height in screen cells, walls included.
func (g *Grid) PixelHeight() int {
	return g.height*(g.layout.TileHeight+g.layout.Border) + g.layout.Border
}

// TileOrigin returns the top-left screen offset of the tile at (x, y),
// relative to the grid's own origin.
func (g *Grid) TileOrigin(x, y int) (px, py int) {
	px = x*(g.layout.TileWidth+g.layout.Border) + g.layout.Border
	py = y*(g.layout.TileHeight+g.layout.Border) + g.layout.Border
	return px, py
}
