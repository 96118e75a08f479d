package factory

import (
	"github.com/automoto/dashjam/actors"
	"github.com/automoto/dashjam/archetypes"
	"github.com/automoto/dashjam/components"
	cfg "github.com/automoto/dashjam/config"
	"github.com/automoto/dashjam/gamemath"
	"github.com/automoto/dashjam/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a projectile at origin flying toward target. It hits
// entities of type hits and walls. When origin and target coincide it flies
// along fallback.
func CreateProjectile(ecs *ecs.ECS, origin, target, fallback gamemath.Vec, kind physics.ProjectileKind, hits physics.ObjType) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	speed := cfg.Projectile.Speed
	if kind == physics.ProjectileSlowing {
		speed = cfg.Projectile.SlowingSpeed
	}
	velocity := gamemath.AimVelocity(origin, target, speed, fallback)

	components.Projectile.SetValue(p, components.ProjectileData{
		Actor: actors.NewProjectile(origin, velocity, kind, hits, cfg.Projectile),
	})
	return p
}
