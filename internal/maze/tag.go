package maze

// Tag is a cell's visualization state. It is not a color: the renderer maps
// tags to colors through a Palette.
type Tag uint8

const (
	TagUnvisited Tag = iota // default for a fresh grid
	TagNeutral              // every cell after Finish
	TagVisited
	TagFrontier
	TagCurrent
	TagDead
	TagSolved
	tagCount
)

// String returns the tag name as used in configuration files.
func (t Tag) String() string {
	switch t {
	case TagUnvisited:
		return "unvisited"
	case TagNeutral:
		return "neutral"
	case TagVisited:
		return "visited"
	case TagFrontier:
		return "frontier"
	case TagCurrent:
		return "current"
	case TagDead:
		return "dead"
	case TagSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// ParseTag converts a configuration name to a Tag.
func ParseTag(s string) (Tag, bool) {
	for t := TagUnvisited; t < tagCount; t++ {
		if t.String() == s {
			return t, true
		}
	}
	return TagUnvisited, false
}
