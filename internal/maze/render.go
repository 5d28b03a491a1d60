package maze

import (
	"strconv"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// Palette maps display state to screen colors.
type Palette struct {
	Tags      map[Tag]core.Color
	Wall      core.Color
	Highlight core.Color
	Path      core.Color
	Label     core.Color
}

// DefaultPalette mirrors the classic look: gray unvisited cells, white
// finished cells, a green active cell and a red solution path on black walls.
func DefaultPalette() Palette {
	return Palette{
		Tags: map[Tag]core.Color{
			TagUnvisited: core.ColorLightGray,
			TagNeutral:   core.ColorBrightWhite,
			TagVisited:   core.ColorCyan,
			TagFrontier:  core.ColorYellow,
			TagCurrent:   core.ColorBrightGreen,
			TagDead:      core.ColorGray,
			TagSolved:    core.ColorOrange,
		},
		Wall:      core.ColorBlack,
		Highlight: core.ColorGreen,
		Path:      core.ColorRed,
		Label:     core.ColorBlack,
	}
}

func (p Palette) tagColor(t Tag) core.Color {
	if c, ok := p.Tags[t]; ok {
		return c
	}
	return p.Tags[TagUnvisited]
}

// Render draws the grid onto dst with its top-left corner at (ox, oy).
// Tiles take their cell's tag color, open edges are painted through the
// wall, labels other than UnlabeledSteps are centered in their tile and the
// solution path is traced over tile centers.
func (g *Grid) Render(dst *core.Screen, ox, oy int, pal Palette) {
	l := g.layout
	dst.FillRect(core.NewRect(ox, oy, g.PixelWidth(), g.PixelHeight()), core.Cell{Rune: ' ', Bg: pal.Wall})

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			cell := g.cells[g.index(x, y)]
			px, py := g.TileOrigin(x, y)
			px += ox
			py += oy

			color := pal.tagColor(cell.Tag)
			if g.highlighted.X == x && g.highlighted.Y == y {
				color = pal.Highlight
			}
			fill := core.Cell{Rune: ' ', Bg: color}

			w := l.TileWidth
			if cell.ConnectedEast {
				w += l.Border
			}
			dst.FillRect(core.NewRect(px, py, w, l.TileHeight), fill)
			if cell.ConnectedSouth {
				dst.FillRect(core.NewRect(px, py+l.TileHeight, l.TileWidth, l.Border), fill)
			}

			if cell.Steps != UnlabeledSteps {
				g.drawLabel(dst, px, py, cell.Steps, pal.Label, color)
			}
		}
	}

	g.drawPath(dst, ox, oy, pal.Path)
}

func (g *Grid) drawLabel(dst *core.Screen, px, py, steps int, fg, bg core.Color) {
	l := g.layout
	text := strconv.Itoa(steps)
	if len(text) > l.TileWidth {
		text = "…"
	}
	tx := px + (l.TileWidth-len([]rune(text)))/2
	ty := py + l.TileHeight/2
	dst.DrawTextStyled(tx, ty, text, fg, bg)
}

// tileCenter returns the absolute screen position of a tile's center.
func (g *Grid) tileCenter(c Coord, ox, oy int) (int, int) {
	px, py := g.TileOrigin(c.X, c.Y)
	return ox + px + g.layout.TileWidth/2, oy + py + g.layout.TileHeight/2
}

func (g *Grid) drawPath(dst *core.Screen, ox, oy int, fg core.Color) {
	if len(g.path) == 0 {
		return
	}

	mark := func(x, y int, r rune) {
		c := dst.GetCell(x, y)
		c.Rune = r
		c.Fg = fg
		dst.SetCell(x, y, c)
	}

	for i := 1; i < len(g.path); i++ {
		ax, ay := g.tileCenter(g.path[i-1], ox, oy)
		bx, by := g.tileCenter(g.path[i], ox, oy)
		switch {
		case ay == by:
			for x := min(ax, bx) + 1; x < max(ax, bx); x++ {
				mark(x, ay, '─')
			}
		case ax == bx:
			for y := min(ay, by) + 1; y < max(ay, by); y++ {
				mark(ax, y, '│')
			}
		}
	}

	for _, c := range g.path {
		if !g.InBounds(c.X, c.Y) {
			continue
		}
		x, y := g.tileCenter(c, ox, oy)
		mark(x, y, '•')
	}
}
