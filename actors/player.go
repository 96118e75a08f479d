package actors

import (
	"math"

	cfg "github.com/automoto/dashjam/config"
	"github.com/automoto/dashjam/gamemath"
	"github.com/automoto/dashjam/input"
	"github.com/automoto/dashjam/physics"
)

// Player is the controllable actor. Its vertical, horizontal and dash
// sub-states are updated independently every frame.
type Player struct {
	id  physics.ID
	cfg cfg.PlayerConfig

	box        gamemath.BoundingBox
	frameStart gamemath.BoundingBox // set in PrePhysics, before the move
	velocity   gamemath.Vec

	aerial     AerialState
	holdTimer  float64
	horizontal HorizontalState
	dash       DashInfo
	dashDir    gamemath.Vec
	dashSpeed  float64
	facing     float64
}

// NewPlayer creates a falling player centered at pos.
func NewPlayer(pos gamemath.Vec, c cfg.PlayerConfig) *Player {
	box := gamemath.MustBoundingBox(pos, c.Width, c.Height)
	return &Player{
		id:         physics.NewID(),
		cfg:        c,
		box:        box,
		frameStart: box,
		aerial:     Falling,
		dash:       DashInfo{NumDashesLeft: c.MaxDashes},
		facing:     1,
	}
}

func (p *Player) ID() physics.ID              { return p.id }
func (p *Player) Box() gamemath.BoundingBox   { return p.box }
func (p *Player) Velocity() gamemath.Vec      { return p.velocity }
func (p *Player) Aerial() AerialState         { return p.aerial }
func (p *Player) Horizontal() HorizontalState { return p.horizontal }
func (p *Player) Dash() DashInfo              { return p.dash }
func (p *Player) Facing() float64             { return p.facing }
func (p *Player) SetVelocity(v gamemath.Vec)  { p.velocity = v }
func (p *Player) SetAerial(s AerialState)     { p.aerial = s }

// FrameStartBox is the box before the current frame's physics move.
func (p *Player) FrameStartBox() gamemath.BoundingBox { return p.frameStart }

// Update advances the three sub-machines from input. It runs before physics.
func (p *Player) Update(dt float64, in input.Snapshot) {
	if p.aerial == OnGround && !p.dash.Dashing {
		p.dash.NumDashesLeft = p.cfg.MaxDashes
	}

	p.updateAerial(dt, in)
	p.updateHorizontal(dt, in)
	p.updateDash(dt, in)
}

func (p *Player) updateAerial(dt float64, in input.Snapshot) {
	switch p.aerial {
	case OnGround:
		if in.JustPressed(cfg.ActionJump) && !p.dash.Dashing {
			p.aerial = Jumping
			p.holdTimer = 0
			// a jump starts at full speed
			p.velocity.Y = p.cfg.JumpSpeed
			return
		}
	case Jumping:
		p.holdTimer += dt
		released := !in.Held(cfg.ActionJump) && p.holdTimer >= p.cfg.JumpMinHold
		if released || p.holdTimer >= p.cfg.JumpMaxHold {
			p.aerial = Falling
		}
	}

	if p.dash.Dashing {
		return
	}
	target := p.cfg.FallSpeed
	if p.aerial == Jumping {
		target = p.cfg.JumpSpeed
	}
	p.velocity.Y = gamemath.Approach(p.velocity.Y, target, p.cfg.VerticalAccel*dt)
}

func (p *Player) updateHorizontal(dt float64, in input.Snapshot) {
	left := in.Held(cfg.ActionMoveLeft)
	right := in.Held(cfg.ActionMoveRight)

	switch {
	case in.JustPressed(cfg.ActionMoveRight):
		if p.horizontal == MovingLeft || p.horizontal == TurningLeft {
			p.horizontal = TurningRight
		} else {
			p.horizontal = MovingRight
		}
	case in.JustPressed(cfg.ActionMoveLeft):
		if p.horizontal == MovingRight || p.horizontal == TurningRight {
			p.horizontal = TurningLeft
		} else {
			p.horizontal = MovingLeft
		}
	case !left && !right:
		if p.horizontal != Stopped {
			p.horizontal = Stopping
		}
	case right && !left && p.horizontal.heading() <= 0:
		// the other key was released, or a wall stopped us
		if p.horizontal.heading() < 0 {
			p.horizontal = TurningRight
		} else {
			p.horizontal = MovingRight
		}
	case left && !right && p.horizontal.heading() >= 0:
		if p.horizontal.heading() > 0 {
			p.horizontal = TurningLeft
		} else {
			p.horizontal = MovingLeft
		}
	}

	switch p.horizontal {
	case MovingLeft, TurningLeft:
		p.facing = -1
	case MovingRight, TurningRight:
		p.facing = 1
	}

	if p.dash.Dashing {
		return
	}

	target := p.targetSpeed()
	accel := p.cfg.HorizontalAccel
	if p.aerial == OnGround && (p.horizontal.turning() || p.horizontal == Stopping) {
		accel *= p.cfg.GroundTurnMultiplier
	}
	p.velocity.X = gamemath.Approach(p.velocity.X, target, accel*dt)
	p.horizontal = deriveHorizontal(p.velocity.X, target)
}

func (p *Player) targetSpeed() float64 {
	switch p.horizontal {
	case MovingLeft:
		return -p.cfg.MoveSpeed
	case MovingRight:
		return p.cfg.MoveSpeed
	case TurningLeft:
		return -p.cfg.TurnSpeed
	case TurningRight:
		return p.cfg.TurnSpeed
	}
	return 0
}

// deriveHorizontal maps the signs of velocity and target speed to a state.
func deriveHorizontal(vx, target float64) HorizontalState {
	switch {
	case target == 0 && vx == 0:
		return Stopped
	case target == 0:
		return Stopping
	case target > 0 && vx < 0:
		return TurningRight
	case target > 0:
		return MovingRight
	case vx > 0:
		return TurningLeft
	default:
		return MovingLeft
	}
}

func (p *Player) updateDash(dt float64, in input.Snapshot) {
	switch {
	case p.dash.Dashing:
		p.dash.DashingTimeElapsed += dt
		elapsed := p.dash.DashingTimeElapsed
		switch {
		case elapsed < p.cfg.DashPeakTime:
			p.dashSpeed = math.Max(0, p.dashSpeed-p.cfg.DashDecay*dt)
		case elapsed < p.cfg.DashTime:
			p.dashSpeed = math.Max(0, p.dashSpeed-p.cfg.DashSlowdown*dt)
		case elapsed >= p.cfg.DashTime+p.cfg.DashHangTime:
			p.endDash()
			return
		}
		// during the hang window the last speed is held
		p.velocity = p.dashDir.Scale(p.dashSpeed)
	case p.dash.CoolingDown:
		p.dash.CooldownTimeElapsed += dt
		if p.dash.CooldownTimeElapsed >= p.cfg.DashCooldown {
			p.dash.CoolingDown = false
		}
	}

	if !in.JustPressed(cfg.ActionDash) || p.dash.Dashing || p.dash.CoolingDown || p.dash.NumDashesLeft <= 0 {
		return
	}
	p.dash.NumDashesLeft--
	p.dash.Dashing = true
	p.dash.DashingTimeElapsed = 0
	p.dashDir = gamemath.DashDirection(
		in.Held(cfg.ActionMoveLeft), in.Held(cfg.ActionMoveRight),
		in.Held(cfg.ActionMoveUp), in.Held(cfg.ActionMoveDown),
		p.facing,
	)
	p.dashSpeed = p.cfg.DashSpeed
	p.velocity = p.dashDir.Scale(p.dashSpeed)
	if p.aerial == Jumping {
		p.aerial = Falling
	}
}

func (p *Player) endDash() {
	p.dash.Dashing = false
	p.dash.CoolingDown = true
	p.dash.CooldownTimeElapsed = 0
}

// Bounce launches the player upward after a successful stomp.
func (p *Player) Bounce() {
	p.velocity.Y = p.cfg.StompBounce
	p.aerial = Falling
}

func (p *Player) Bodies() []physics.Entry {
	return []physics.Entry{{
		ID: p.id,
		Object: physics.Object{
			Box:          p.box,
			Velocity:     p.velocity,
			CanMove:      true,
			Type:         physics.Player,
			CollidesWith: physics.NewTypeSet(physics.Wall, physics.Enemy),
			MoveBy:       physics.NewTypeSet(physics.Wall),
		},
	}}
}

// PrePhysics assumes the player left the ground until a landing says otherwise.
func (p *Player) PrePhysics() {
	p.frameStart = p.box
	if p.aerial == OnGround {
		p.aerial = Falling
	}
}

func (p *Player) Resolve(id physics.ID, delta, resolve gamemath.Vec, _ []physics.Contact) {
	if id != p.id {
		return
	}
	p.box.Add(delta.Add(resolve))

	if resolve.Y < 0 {
		p.velocity.Y = math.Min(p.velocity.Y, 0)
		p.aerial = OnGround
		if !p.dash.Dashing {
			p.dash.NumDashesLeft = p.cfg.MaxDashes
		}
	} else if resolve.Y > 0 {
		p.velocity.Y = math.Max(p.velocity.Y, 0)
		if p.aerial == Jumping {
			p.aerial = Falling
		}
	}
	if resolve.X != 0 {
		p.velocity.X = 0
		p.horizontal = Stopped
	}

	if p.dash.Dashing {
		if resolve.X != 0 {
			p.dashDir.X = 0
		}
		if resolve.Y != 0 {
			p.dashDir.Y = 0
		}
		if p.dashDir.IsZero() {
			p.endDash()
		}
	}
}
