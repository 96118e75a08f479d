package actors_test

import (
	"github.com/automoto/dashjam/gamemath"
	"github.com/automoto/dashjam/physics"
)

// step runs one physics frame over bodies, routing results by id.
func step(dt float64, bodies ...physics.Body) {
	for _, b := range bodies {
		b.PrePhysics()
	}
	snap := physics.NewSnapshot(bodies...)
	owners := make(map[physics.ID]physics.Body)
	for _, b := range bodies {
		for _, e := range b.Bodies() {
			owners[e.ID] = b
		}
	}
	physics.Simulate(dt, snap, func(id physics.ID, delta, resolve gamemath.Vec, _ physics.Object, contacts []physics.Contact) {
		if owner, ok := owners[id]; ok {
			owner.Resolve(id, delta, resolve, contacts)
		}
	})
}

func vec(x, y float64) gamemath.Vec {
	return gamemath.Vec{X: x, Y: y}
}
