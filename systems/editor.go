package systems

import (
	"log"

	"github.com/automoto/dashjam/actors"
	"github.com/automoto/dashjam/components"
	cfg "github.com/automoto/dashjam/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEditor tracks the cursor cell and, in edit mode, paints tiles with the
// primary action and erases them with the secondary one.
func UpdateEditor(ecs *ecs.ECS) {
	frame, in := GetFrame(ecs)

	stageEntry, ok := components.Stage.First(ecs.World)
	if !ok {
		return
	}
	editor := components.Editor.Get(stageEntry)
	editor.Cursor = actors.CellAt(in.Mouse)

	if frame.Mode != components.ModeEdit {
		return
	}

	stage := components.Stage.Get(stageEntry).Stage
	c := editor.Cursor
	switch {
	case in.Held(cfg.ActionPrimary):
		if _, exists := stage.Tile(c); !exists {
			id := stage.Paint(c, editor.Brush)
			log.Printf("[stage] painted (%d, %d) as %s", c.X, c.Y, id)
		}
	case in.Held(cfg.ActionSecondary):
		if stage.Erase(c) {
			log.Printf("[stage] erased (%d, %d)", c.X, c.Y)
		}
	}
}
