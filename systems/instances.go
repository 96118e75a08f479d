package systems

import (
	"github.com/automoto/dashjam/actors"
	"github.com/automoto/dashjam/components"
	"github.com/automoto/dashjam/gamemath"
	"github.com/automoto/dashjam/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Instance is one drawable box, as center and half extent.
type Instance struct {
	Box        gamemath.BoundingBox
	Center     gamemath.Vec
	HalfExtent gamemath.Vec
	Type       physics.ObjType
}

func newInstance(box gamemath.BoundingBox, t physics.ObjType) Instance {
	return Instance{Box: box, Center: box.Center, HalfExtent: box.HalfExtent(), Type: t}
}

// Instances lists every live box in the world: tiles first, then players,
// enemies and projectiles.
func Instances(ecs *ecs.ECS) []Instance {
	var out []Instance
	components.Stage.Each(ecs.World, func(e *donburi.Entry) {
		for _, c := range components.Stage.Get(e).Stage.Cells() {
			out = append(out, newInstance(actors.TileBox(c), physics.Wall))
		}
	})
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		out = append(out, newInstance(components.Player.Get(e).Actor.Box(), physics.Player))
	})
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if enemy := components.Enemy.Get(e).Actor; !enemy.Dead() {
			out = append(out, newInstance(enemy.Box(), physics.Enemy))
		}
	})
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		if p := components.Projectile.Get(e).Actor; !p.Dead() {
			out = append(out, newInstance(p.Box(), p.Type()))
		}
	})
	return out
}
