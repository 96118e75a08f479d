package systems

import (
	"github.com/automoto/dashjam/components"
	"github.com/automoto/dashjam/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies advances every enemy's patrol.
func UpdateEnemies(ecs *ecs.ECS) {
	frame, _ := GetFrame(ecs)
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		components.Enemy.Get(e).Actor.Update(frame.DeltaTime)
	})
}
