package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput moves the raw input the host polled into the input snapshot,
// shifting the previous frame into Previous.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	frame, in := GetFrame(ecs)
	in.Advance(frame.Raw)
}
