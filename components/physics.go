package components

import (
	"github.com/automoto/dashjam/physics"
	"github.com/yohamta/donburi"
)

// PhysicsDebugData collects the resolver's candidates for the last frame when
// Trace is set.
type PhysicsDebugData struct {
	Trace    bool
	Attempts []physics.Attempt
}

var PhysicsDebug = donburi.NewComponentType[PhysicsDebugData]()
