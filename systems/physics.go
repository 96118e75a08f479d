package systems

import (
	"github.com/automoto/dashjam/components"
	"github.com/automoto/dashjam/gamemath"
	"github.com/automoto/dashjam/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics gathers every body, runs the resolver over a fresh snapshot
// and hands each result back to the actor owning the id.
func UpdatePhysics(ecs *ecs.ECS) {
	frame, _ := GetFrame(ecs)
	debug := components.PhysicsDebug.Get(components.PhysicsDebug.MustFirst(ecs.World))

	bodies := collectBodies(ecs)
	for _, b := range bodies {
		b.PrePhysics()
	}
	snap, route := newRouter(bodies)

	var resolver physics.Resolver
	debug.Attempts = debug.Attempts[:0]
	if debug.Trace {
		resolver.Trace = func(a physics.Attempt) {
			debug.Attempts = append(debug.Attempts, a)
		}
	}
	resolver.Simulate(frame.DeltaTime, snap, route)
}

// collectBodies returns every actor taking part in physics, the stage first.
func collectBodies(ecs *ecs.ECS) []physics.Body {
	var bodies []physics.Body
	components.Stage.Each(ecs.World, func(e *donburi.Entry) {
		bodies = append(bodies, components.Stage.Get(e).Stage)
	})
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		bodies = append(bodies, components.Player.Get(e).Actor)
	})
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		bodies = append(bodies, components.Enemy.Get(e).Actor)
	})
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		bodies = append(bodies, components.Projectile.Get(e).Actor)
	})
	return bodies
}

// newRouter builds the snapshot for bodies and a callback that routes each
// result to the body that contributed the id. Unknown ids are ignored.
func newRouter(bodies []physics.Body) (physics.Snapshot, physics.ResolveFunc) {
	snap := physics.NewSnapshot(bodies...)
	owners := make(map[physics.ID]physics.Body, len(snap))
	for _, b := range bodies {
		for _, entry := range b.Bodies() {
			owners[entry.ID] = b
		}
	}

	route := func(id physics.ID, delta, resolve gamemath.Vec, _ physics.Object, contacts []physics.Contact) {
		owner, ok := owners[id]
		if !ok {
			return
		}
		owner.Resolve(id, delta, resolve, contacts)
	}
	return snap, route
}
