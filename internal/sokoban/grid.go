package sokoban

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/logic-gates/internal/core"
	"github.com/vovakirdan/logic-gates/internal/gates"
)

// Layout alphabet.
const (
	TileWall   = '#'
	TilePlayer = '@'
	TileBox    = '$'
	TileTarget = '.'
	TileFloor  = ' '
)

var (
	// ErrNoPlayer means the layout has no '@' start position.
	ErrNoPlayer = errors.New("sokoban: layout has no player start")
	// ErrMultiplePlayers means the layout has more than one '@'.
	ErrMultiplePlayers = errors.New("sokoban: layout has more than one player start")
)

// Grid is the mutable state of one level instance.
//
// Walls and targets never change after Parse. Boxes and the player move only
// through MovePlayer. Boxes have no identity beyond their position.
type Grid struct {
	name    string
	gate    gates.Gate
	terrain [][]rune // '@' and '$' cleared to floor, '.' and '#' kept
	width   int      // Longest row
	walls   map[core.Coord]struct{}
	targets []core.Coord
	boxes   []core.Coord
	player  core.Coord
	moves   int
}

// Parse builds a fresh Grid from a level definition.
func Parse(l Level) (*Grid, error) {
	g := &Grid{
		name:    l.Name,
		gate:    l.Gate,
		terrain: make([][]rune, len(l.Layout)),
		walls:   make(map[core.Coord]struct{}),
	}

	found := false
	for y, row := range l.Layout {
		cells := []rune(row)
		if len(cells) > g.width {
			g.width = len(cells)
		}

		for x, ch := range cells {
			p := core.C(x, y)
			switch ch {
			case TilePlayer:
				if found {
					return nil, fmt.Errorf("%w: second start at %v", ErrMultiplePlayers, p)
				}
				found = true
				g.player = p
				cells[x] = TileFloor
			case TileBox:
				g.boxes = append(g.boxes, p)
				cells[x] = TileFloor
			case TileTarget:
				g.targets = append(g.targets, p)
			case TileWall:
				g.walls[p] = struct{}{}
			}
		}
		g.terrain[y] = cells
	}

	if !found {
		return nil, ErrNoPlayer
	}
	return g, nil
}

// MustParse parses a level that is known to be valid.
func MustParse(l Level) *Grid {
	g, err := Parse(l)
	if err != nil {
		panic(fmt.Sprintf("sokoban: level %q: %v", l.Name, err))
	}
	return g
}

// IsWall reports whether (x, y) blocks movement. Anything outside the parsed
// rows, or past the end of its own row, counts as wall, so map edges need no
// special handling.
func (g *Grid) IsWall(x, y int) bool {
	if y < 0 || y >= len(g.terrain) || x < 0 || x >= len(g.terrain[y]) {
		return true
	}
	return g.terrain[y][x] == TileWall
}

// IsBox reports whether a box currently sits at (x, y).
func (g *Grid) IsBox(x, y int) bool {
	return g.boxIndex(core.C(x, y)) >= 0
}

// IsTarget reports whether (x, y) is a target cell.
func (g *Grid) IsTarget(x, y int) bool {
	p := core.C(x, y)
	for _, t := range g.targets {
		if t == p {
			return true
		}
	}
	return false
}

func (g *Grid) boxIndex(p core.Coord) int {
	for i, b := range g.boxes {
		if b == p {
			return i
		}
	}
	return -1
}

// Name returns the level name.
func (g *Grid) Name() string {
	return g.name
}

// Gate returns the gate taught by the level.
func (g *Grid) Gate() gates.Gate {
	return g.gate
}

// Player returns the player position.
func (g *Grid) Player() core.Coord {
	return g.player
}

// Moves returns the number of accepted moves since the grid was parsed.
func (g *Grid) Moves() int {
	return g.moves
}

// Size returns the grid dimensions: the longest row and the row count.
func (g *Grid) Size() (w, h int) {
	return g.width, len(g.terrain)
}

// Boxes returns a copy of the box positions in parse order.
func (g *Grid) Boxes() []core.Coord {
	out := make([]core.Coord, len(g.boxes))
	copy(out, g.boxes)
	return out
}

// Targets returns a copy of the target positions in parse order.
func (g *Grid) Targets() []core.Coord {
	out := make([]core.Coord, len(g.targets))
	copy(out, g.targets)
	return out
}

// Walls returns the wall positions sorted row by row.
func (g *Grid) Walls() []core.Coord {
	out := make([]core.Coord, 0, len(g.walls))
	for p := range g.walls {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Solved returns how many targets are currently covered.
func (g *Grid) Solved() int {
	n := 0
	for _, t := range g.targets {
		if g.boxIndex(t) >= 0 {
			n++
		}
	}
	return n
}

// Snapshot is a read-only copy of the grid for the presentation layer.
type Snapshot struct {
	Name    string
	Gate    gates.Gate
	Width   int
	Height  int
	Walls   []core.Coord
	Boxes   []core.Coord
	Targets []core.Coord
	Player  core.Coord
	Moves   int
}

// Snapshot returns a copy of the current state.
func (g *Grid) Snapshot() Snapshot {
	return Snapshot{
		Name:    g.name,
		Gate:    g.gate,
		Width:   g.width,
		Height:  len(g.terrain),
		Walls:   g.Walls(),
		Boxes:   g.Boxes(),
		Targets: g.Targets(),
		Player:  g.player,
		Moves:   g.moves,
	}
}
