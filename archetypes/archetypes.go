package archetypes

import (
	"github.com/automoto/dashjam/components"
	"github.com/automoto/dashjam/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
	)
	Stage = newArchetype(
		tags.Stage,
		components.Stage,
		components.Editor,
	)
	Frame = newArchetype(
		components.Frame,
		components.Input,
		components.PhysicsDebug,
		components.Banner,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.World.Create(
		append(a.components, cs...)...,
	))
	return e
}
