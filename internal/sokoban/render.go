package sokoban

import (
	"strings"

	"github.com/vovakirdan/logic-gates/internal/core"
)

// TileWidth is how many screen columns one grid cell occupies. Terminal cells
// are roughly twice as tall as wide, so two columns keep the map square.
const TileWidth = 2

// Glyph is the two-column picture of one tile.
type Glyph struct {
	Text  string
	Color core.Color
}

// Glyphs used by Render. Variables so tests and themes can swap them.
var (
	GlyphWall        = Glyph{"██", core.ColorWall}
	GlyphFloor       = Glyph{"  ", core.ColorFloor}
	GlyphTarget      = Glyph{"()", core.ColorTarget}
	GlyphBox         = Glyph{"[]", core.ColorBox}
	GlyphBoxOnTarget = Glyph{"[]", core.ColorBoxOnTarget}
	GlyphPlayer      = Glyph{"@@", core.ColorPlayer}
)

// glyphAt picks the glyph for a cell. Box before player before target.
func (g *Grid) glyphAt(x, y int) (Glyph, bool) {
	p := core.C(x, y)
	switch {
	case g.boxIndex(p) >= 0:
		if g.IsTarget(x, y) {
			return GlyphBoxOnTarget, true
		}
		return GlyphBox, true
	case p == g.player:
		return GlyphPlayer, true
	case g.IsTarget(x, y):
		return GlyphTarget, true
	case y < len(g.terrain) && x < len(g.terrain[y]):
		if g.terrain[y][x] == TileWall {
			return GlyphWall, true
		}
		return GlyphFloor, true
	}
	return Glyph{}, false
}

// Render draws the grid into dst with its top-left corner at (ox, oy).
// Cells past the end of a short row are left untouched.
func (g *Grid) Render(dst *core.Screen, ox, oy int) {
	for y := range g.terrain {
		for x := 0; x < g.width; x++ {
			gl, ok := g.glyphAt(x, y)
			if !ok {
				continue
			}
			dst.DrawTextColored(ox+x*TileWidth, oy+y, gl.Text, gl.Color)
		}
	}
}

// RenderSize returns the screen area Render needs.
func (g *Grid) RenderSize() (w, h int) {
	return g.width * TileWidth, len(g.terrain)
}

// RenderASCII returns the grid in the level file alphabet, with '*' for a box
// on a target and '+' for the player on a target. Used by tests and the
// levels command.
func (g *Grid) RenderASCII() string {
	var sb strings.Builder
	for y, row := range g.terrain {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, ch := range row {
			p := core.C(x, y)
			target := ch == TileTarget
			switch {
			case g.boxIndex(p) >= 0 && target:
				sb.WriteRune('*')
			case g.boxIndex(p) >= 0:
				sb.WriteRune(TileBox)
			case p == g.player && target:
				sb.WriteRune('+')
			case p == g.player:
				sb.WriteRune(TilePlayer)
			default:
				sb.WriteRune(ch)
			}
		}
	}
	return sb.String()
}
