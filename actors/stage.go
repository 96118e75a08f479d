package actors

import (
	"math"
	"sort"

	"github.com/automoto/dashjam/gamemath"
	"github.com/automoto/dashjam/physics"
)

// TileType is the material of a painted cell.
type TileType int

const (
	TileDirt TileType = iota
	TileStone
)

// Cell is an integer stage coordinate. Cell (x, y) covers [x, x+1) × [y, y+1).
type Cell struct {
	X, Y int
}

// CellAt returns the cell containing p.
func CellAt(p gamemath.Vec) Cell {
	return Cell{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}

// Center returns the world position of the middle of the cell.
func (c Cell) Center() gamemath.Vec {
	return gamemath.Vec{X: float64(c.X) + 0.5, Y: float64(c.Y) + 0.5}
}

// Tile is one painted cell.
type Tile struct {
	ID   physics.ID
	Type TileType
}

// Stage is a sparse grid of solid tiles. Every tile takes part in physics as
// its own immovable wall.
type Stage struct {
	tiles map[Cell]Tile
}

func NewStage() *Stage {
	return &Stage{tiles: make(map[Cell]Tile)}
}

// Paint fills c with a tile of type t. Repainting keeps the tile's id.
func (s *Stage) Paint(c Cell, t TileType) physics.ID {
	if tile, ok := s.tiles[c]; ok {
		tile.Type = t
		s.tiles[c] = tile
		return tile.ID
	}
	id := physics.NewID()
	s.tiles[c] = Tile{ID: id, Type: t}
	return id
}

// PaintRect paints every cell in the inclusive rectangle and returns how many
// tiles were created.
func (s *Stage) PaintRect(x0, y0, x1, y1 int, t TileType) int {
	created := 0
	for x := min(x0, x1); x <= max(x0, x1); x++ {
		for y := min(y0, y1); y <= max(y0, y1); y++ {
			if _, ok := s.tiles[Cell{x, y}]; !ok {
				created++
			}
			s.Paint(Cell{x, y}, t)
		}
	}
	return created
}

// Erase removes the tile at c and reports whether there was one.
func (s *Stage) Erase(c Cell) bool {
	if _, ok := s.tiles[c]; !ok {
		return false
	}
	delete(s.tiles, c)
	return true
}

func (s *Stage) Tile(c Cell) (Tile, bool) {
	t, ok := s.tiles[c]
	return t, ok
}

func (s *Stage) Len() int {
	return len(s.tiles)
}

// Cells returns the painted cells ordered by row, then column.
func (s *Stage) Cells() []Cell {
	cells := make([]Cell, 0, len(s.tiles))
	for c := range s.tiles {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

// TileBox returns the unit box of cell c.
func TileBox(c Cell) gamemath.BoundingBox {
	return gamemath.BoundingBox{Center: c.Center(), Width: 1, Height: 1}
}

func (s *Stage) Bodies() []physics.Entry {
	entries := make([]physics.Entry, 0, len(s.tiles))
	for c, t := range s.tiles {
		entries = append(entries, physics.Entry{
			ID: t.ID,
			Object: physics.Object{
				Box:          TileBox(c),
				Type:         physics.Wall,
				CollidesWith: physics.AllTypes(),
				MoveBy:       physics.NewTypeSet(physics.Wall),
			},
		})
	}
	return entries
}

func (s *Stage) PrePhysics() {}

// Resolve is a no-op: tiles never move.
func (s *Stage) Resolve(physics.ID, gamemath.Vec, gamemath.Vec, []physics.Contact) {}
