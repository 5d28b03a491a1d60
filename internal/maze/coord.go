package maze

import "fmt"

// Coord is a cell position on the grid, 0-based.
type Coord struct {
	X int
	Y int
}

// NoCoord is the sentinel for "no cell", used by the highlight.
var NoCoord = Coord{X: -1, Y: -1}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the neighbor of c in direction d. The result may be off grid.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// DirectionTo returns the direction leading from c to an adjacent cell.
// ok is false when other is not one of the four neighbors of c.
func (c Coord) DirectionTo(other Coord) (d Direction, ok bool) {
	for _, dir := range Directions {
		if c.Step(dir) == other {
			return dir, true
		}
	}
	return North, false
}
