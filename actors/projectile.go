package actors

import (
	cfg "github.com/automoto/dashjam/config"
	"github.com/automoto/dashjam/gamemath"
	"github.com/automoto/dashjam/physics"
)

// Projectile flies in a straight line until it touches its target type, a
// wall, or runs out of lifetime. It is never blocked.
type Projectile struct {
	id       physics.ID
	kind     physics.ProjectileKind
	target   physics.ObjType
	box      gamemath.BoundingBox
	velocity gamemath.Vec
	age      float64
	lifetime float64
	dead     bool
}

func NewProjectile(origin, velocity gamemath.Vec, kind physics.ProjectileKind, target physics.ObjType, c cfg.ProjectileConfig) *Projectile {
	return &Projectile{
		id:       physics.NewID(),
		kind:     kind,
		target:   target,
		box:      gamemath.MustBoundingBox(origin, c.Size, c.Size),
		velocity: velocity,
		lifetime: c.Lifetime,
	}
}

func (p *Projectile) ID() physics.ID               { return p.id }
func (p *Projectile) Box() gamemath.BoundingBox    { return p.box }
func (p *Projectile) Kind() physics.ProjectileKind { return p.kind }
func (p *Projectile) Type() physics.ObjType        { return physics.Projectile(p.kind) }
func (p *Projectile) Dead() bool                   { return p.dead }

// Update ages the projectile and marks it dead once its lifetime is over.
func (p *Projectile) Update(dt float64) {
	p.age += dt
	if p.age >= p.lifetime {
		p.dead = true
	}
}

func (p *Projectile) Bodies() []physics.Entry {
	if p.dead {
		return nil
	}
	return []physics.Entry{{
		ID: p.id,
		Object: physics.Object{
			Box:          p.box,
			Velocity:     p.velocity,
			CanMove:      true,
			Type:         p.Type(),
			CollidesWith: physics.NewTypeSet(p.target, physics.Wall),
		},
	}}
}

func (p *Projectile) PrePhysics() {}

func (p *Projectile) Resolve(id physics.ID, delta, resolve gamemath.Vec, contacts []physics.Contact) {
	if id != p.id {
		return
	}
	p.box.Add(delta.Add(resolve))
	if len(contacts) > 0 {
		p.dead = true
	}
}
