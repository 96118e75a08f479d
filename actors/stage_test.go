package actors_test

import (
	"testing"

	"github.com/automoto/dashjam/actors"
	"github.com/automoto/dashjam/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStagePaintAndErase(t *testing.T) {
	s := actors.NewStage()
	c := actors.Cell{X: -1, Y: 2}

	id := s.Paint(c, actors.TileDirt)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, id, s.Paint(c, actors.TileStone), "repainting keeps the id")
	tile, ok := s.Tile(c)
	require.True(t, ok)
	assert.Equal(t, actors.TileStone, tile.Type)

	assert.True(t, s.Erase(c))
	assert.False(t, s.Erase(c))
	assert.Equal(t, 0, s.Len())
	assert.NotEqual(t, id, s.Paint(c, actors.TileDirt), "a new paint gets a new id")
}

func TestStageBodiesAreUnitWalls(t *testing.T) {
	s := actors.NewStage()
	require.Equal(t, 3, s.PaintRect(0, 0, 2, 0, actors.TileDirt))
	require.Equal(t, 0, s.PaintRect(0, 0, 1, 0, actors.TileStone))

	bodies := s.Bodies()
	require.Len(t, bodies, 3)
	for _, b := range bodies {
		o := b.Object
		assert.False(t, o.CanMove)
		assert.Equal(t, physics.Wall, o.Type)
		assert.Equal(t, 1.0, o.Box.Width)
		assert.Equal(t, 1.0, o.Box.Height)
		assert.Equal(t, 0.5, o.Box.Center.Y)
	}

	cells := s.Cells()
	assert.Equal(t, []actors.Cell{{X: 0}, {X: 1}, {X: 2}}, cells)
	assert.Equal(t, vec(2.5, 0.5), cells[2].Center())
}

func TestCellAtFloorsNegativeCoordinates(t *testing.T) {
	assert.Equal(t, actors.Cell{X: -1, Y: 0}, actors.CellAt(vec(-0.2, 0.9)))
	assert.Equal(t, actors.Cell{X: 3, Y: -2}, actors.CellAt(vec(3, -1.5)))
}
