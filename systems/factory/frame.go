package factory

import (
	"github.com/automoto/dashjam/archetypes"
	"github.com/automoto/dashjam/components"
	cfg "github.com/automoto/dashjam/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFrame spawns the singleton holding frame time, input and physics
// diagnostics.
func CreateFrame(ecs *ecs.ECS, mode components.Mode) *donburi.Entry {
	frame := archetypes.Frame.Spawn(ecs)
	components.Frame.SetValue(frame, components.FrameData{Mode: mode})
	components.PhysicsDebug.SetValue(frame, components.PhysicsDebugData{Trace: cfg.Debug.TraceResolver})
	return frame
}
