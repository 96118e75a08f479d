package systems

import (
	"log"

	"github.com/automoto/dashjam/components"
	"github.com/automoto/dashjam/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths marks entities whose actor died this frame and removes every
// marked entity from the world.
func UpdateDeaths(ecs *ecs.ECS) {
	var marked []*donburi.Entry
	var causes []string
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if components.Enemy.Get(e).Actor.Dead() && !e.HasComponent(components.Death) {
			marked = append(marked, e)
			causes = append(causes, "stomped")
		}
	})
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		if components.Projectile.Get(e).Actor.Dead() && !e.HasComponent(components.Death) {
			marked = append(marked, e)
			causes = append(causes, "spent")
		}
	})
	for i, e := range marked {
		donburi.Add(e, components.Death, &components.DeathData{Cause: causes[i]})
	}

	var removed []donburi.Entity
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(tags.Enemy) {
			log.Printf("[world] removing enemy %s (%s)", components.Enemy.Get(e).Actor.ID(), components.Death.Get(e).Cause)
		}
		removed = append(removed, e.Entity())
	})
	for _, entity := range removed {
		ecs.World.Remove(entity)
	}
}
