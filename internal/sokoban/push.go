package sokoban

import "github.com/vovakirdan/logic-gates/internal/core"

// MovePlayer tries to move the player one cell in direction d, pushing a box
// if one is in the way. It is the only path that mutates boxes, the player or
// the move counter.
//
// The move is rejected, leaving the grid untouched, when the target cell is a
// wall, or when it holds a box whose destination is a wall or another box.
func (g *Grid) MovePlayer(d core.Dir) bool {
	next := g.player.Step(d)
	if g.IsWall(next.X, next.Y) {
		return false
	}

	if i := g.boxIndex(next); i >= 0 {
		dest := next.Step(d)
		if g.IsWall(dest.X, dest.Y) || g.IsBox(dest.X, dest.Y) {
			return false
		}
		g.boxes[i] = dest
	}

	g.player = next
	g.moves++
	return true
}
