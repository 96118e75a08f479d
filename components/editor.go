package components

import (
	"github.com/automoto/dashjam/actors"
	"github.com/yohamta/donburi"
)

// EditorData holds the stage editor cursor and brush.
type EditorData struct {
	Cursor actors.Cell
	Brush  actors.TileType
}

var Editor = donburi.NewComponentType[EditorData]()
