package systems

import (
	"github.com/automoto/dashjam/components"
	"github.com/automoto/dashjam/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles ages projectiles; expired ones are removed by UpdateDeaths.
func UpdateProjectiles(ecs *ecs.ECS) {
	frame, _ := GetFrame(ecs)
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		components.Projectile.Get(e).Actor.Update(frame.DeltaTime)
	})
}
