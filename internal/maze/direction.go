package maze

// Direction is one of the four compass directions on the grid.
// Y grows downward, so North is (0, -1).
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every direction in clockwise order starting at North.
var Directions = [4]Direction{North, East, South, West}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Opposite returns the reverse direction. Opposite is an involution:
// d.Opposite().Opposite() == d for every valid d.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the (dx, dy) offset for one step in this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool {
	return d <= West
}
