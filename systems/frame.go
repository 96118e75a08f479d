package systems

import (
	"github.com/automoto/dashjam/components"
	"github.com/automoto/dashjam/input"
	"github.com/yohamta/donburi/ecs"
)

// LayerDefault is the only render layer.
const LayerDefault ecs.LayerID = iota

// GetFrame returns the frame singleton and the input snapshot stored on it.
func GetFrame(ecs *ecs.ECS) (*components.FrameData, *input.Snapshot) {
	entry := components.Frame.MustFirst(ecs.World)
	return components.Frame.Get(entry), components.Input.Get(entry)
}
