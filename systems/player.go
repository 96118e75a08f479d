package systems

import (
	"github.com/automoto/dashjam/components"
	cfg "github.com/automoto/dashjam/config"
	"github.com/automoto/dashjam/gamemath"
	"github.com/automoto/dashjam/input"
	"github.com/automoto/dashjam/physics"
	"github.com/automoto/dashjam/systems/factory"
	"github.com/automoto/dashjam/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type shot struct {
	origin   gamemath.Vec
	fallback gamemath.Vec
	kind     physics.ProjectileKind
}

// UpdatePlayer runs each player's state machines and fires projectiles
// toward the mouse.
func UpdatePlayer(ecs *ecs.ECS) {
	frame, in := GetFrame(ecs)

	var shots []shot
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Player.Get(e).Actor
		p.Update(frame.DeltaTime, *in)

		if kind, ok := handleShootInput(*in); ok {
			shots = append(shots, shot{
				origin:   p.Box().Center,
				fallback: gamemath.Vec{X: p.Facing()},
				kind:     kind,
			})
		}
	})

	// spawned after the query so the player archetype is not touched mid-iteration
	for _, s := range shots {
		factory.CreateProjectile(ecs, s.origin, in.Mouse, s.fallback, s.kind, physics.Enemy)
	}
}

func handleShootInput(in input.Snapshot) (physics.ProjectileKind, bool) {
	switch {
	case in.JustPressed(cfg.ActionPrimary):
		return physics.ProjectileBasic, true
	case in.JustPressed(cfg.ActionSecondary):
		return physics.ProjectileSlowing, true
	}
	return 0, false
}
