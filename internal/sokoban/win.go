package sokoban

// CheckWin reports whether every target is covered by a box. Boxes left off
// targets do not matter. The result is recomputed on every call.
func (g *Grid) CheckWin() bool {
	for _, t := range g.targets {
		if g.boxIndex(t) < 0 {
			return false
		}
	}
	return true
}
