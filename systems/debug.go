package systems

import (
	"github.com/automoto/dashjam/actors"
	"github.com/automoto/dashjam/components"
	cfg "github.com/automoto/dashjam/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the resolver's candidates from the last frame and the
// editor cursor.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	frame, _ := GetFrame(ecs)
	debug := components.PhysicsDebug.Get(components.PhysicsDebug.MustFirst(ecs.World))

	for _, a := range debug.Attempts {
		if a.Accepted {
			strokeBox(screen, a.Box, cfg.Colors.AcceptedAttempt)
			continue
		}
		strokeBox(screen, a.Box, cfg.Colors.Attempt)
	}

	if frame.Mode == components.ModeEdit {
		editor := components.Editor.Get(components.Editor.MustFirst(ecs.World))
		fillBox(screen, actors.TileBox(editor.Cursor), cfg.Colors.Cursor)
	}
}
