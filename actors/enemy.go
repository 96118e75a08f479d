package actors

import (
	"math"

	cfg "github.com/automoto/dashjam/config"
	"github.com/automoto/dashjam/gamemath"
	"github.com/automoto/dashjam/physics"
)

// BasicEnemy patrols left and right, turning around at walls.
type BasicEnemy struct {
	id  physics.ID
	cfg cfg.EnemyConfig

	box        gamemath.BoundingBox
	frameStart gamemath.BoundingBox
	velocity   gamemath.Vec
	direction  Direction
	aerial     AerialState
	slowTimer  float64
	dead       bool

	// player ids touched this frame, cleared in PrePhysics
	playerContacts []physics.ID
}

// NewBasicEnemy creates an enemy centered at pos heading in dir.
func NewBasicEnemy(pos gamemath.Vec, dir Direction, c cfg.EnemyConfig) *BasicEnemy {
	box := gamemath.MustBoundingBox(pos, c.Width, c.Height)
	return &BasicEnemy{
		id:         physics.NewID(),
		cfg:        c,
		box:        box,
		frameStart: box,
		direction:  dir,
		aerial:     Falling,
	}
}

func (e *BasicEnemy) ID() physics.ID               { return e.id }
func (e *BasicEnemy) Box() gamemath.BoundingBox    { return e.box }
func (e *BasicEnemy) Velocity() gamemath.Vec       { return e.velocity }
func (e *BasicEnemy) Direction() Direction         { return e.direction }
func (e *BasicEnemy) Aerial() AerialState          { return e.aerial }
func (e *BasicEnemy) Dead() bool                   { return e.dead }
func (e *BasicEnemy) Slowed() bool                 { return e.slowTimer > 0 }
func (e *BasicEnemy) PlayerContacts() []physics.ID { return e.playerContacts }

// FrameStartBox is the box before the current frame's physics move.
func (e *BasicEnemy) FrameStartBox() gamemath.BoundingBox { return e.frameStart }

// Kill marks the enemy for removal.
func (e *BasicEnemy) Kill() {
	e.dead = true
}

// Update eases toward the patrol speed and the fall speed.
func (e *BasicEnemy) Update(dt float64) {
	if e.slowTimer > 0 {
		e.slowTimer = math.Max(0, e.slowTimer-dt)
	}

	speed := e.cfg.PatrolSpeed
	if e.Slowed() {
		speed *= e.cfg.SlowFactor
	}
	target := float64(e.direction) * speed
	e.velocity.X = gamemath.Approach(e.velocity.X, target, e.cfg.HorizontalAccel*dt)
	e.velocity.Y = gamemath.Approach(e.velocity.Y, e.cfg.FallSpeed, e.cfg.VerticalAccel*dt)
}

func (e *BasicEnemy) Bodies() []physics.Entry {
	if e.dead {
		return nil
	}
	return []physics.Entry{{
		ID: e.id,
		Object: physics.Object{
			Box:          e.box,
			Velocity:     e.velocity,
			CanMove:      true,
			Type:         physics.Enemy,
			CollidesWith: physics.NewTypeSet(physics.Player, physics.Wall) | physics.AllProjectiles(),
			MoveBy:       physics.NewTypeSet(physics.Wall),
		},
	}}
}

func (e *BasicEnemy) PrePhysics() {
	e.frameStart = e.box
	if e.aerial == OnGround {
		e.aerial = Falling
	}
	e.playerContacts = e.playerContacts[:0]
}

func (e *BasicEnemy) Resolve(id physics.ID, delta, resolve gamemath.Vec, contacts []physics.Contact) {
	if id != e.id {
		return
	}
	e.box.Add(delta.Add(resolve))

	if resolve.X != 0 {
		e.direction = e.direction.Reverse()
		e.velocity.X = -e.velocity.X
	}
	if resolve.Y < 0 {
		e.velocity.Y = math.Min(e.velocity.Y, 0)
		e.aerial = OnGround
	} else if resolve.Y > 0 {
		e.velocity.Y = math.Max(e.velocity.Y, 0)
	}

	for _, c := range contacts {
		switch {
		case c.Type == physics.Player:
			e.addPlayerContact(c.ID)
		case c.Type.IsProjectile():
			e.velocity.Y = e.cfg.KnockbackSpeed
			e.aerial = Falling
			if c.Type.Projectile == physics.ProjectileSlowing {
				e.slowTimer = e.cfg.SlowDuration
			}
		}
	}
}

func (e *BasicEnemy) addPlayerContact(id physics.ID) {
	for _, seen := range e.playerContacts {
		if seen == id {
			return
		}
	}
	e.playerContacts = append(e.playerContacts, id)
}
