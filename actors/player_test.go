package actors_test

import (
	"testing"

	"github.com/automoto/dashjam/actors"
	cfg "github.com/automoto/dashjam/config"
	"github.com/automoto/dashjam/gamemath"
	"github.com/automoto/dashjam/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 0.05

func TestPlayerLandsOnGround(t *testing.T) {
	stage := actors.NewStage()
	stage.PaintRect(-2, 1, 2, 1, actors.TileDirt)

	p := actors.NewPlayer(vec(0.5, 0.4), cfg.Player)
	p.SetVelocity(vec(0, 5))

	var in input.Snapshot
	p.Update(dt, in)
	step(dt, p, stage)

	require.Equal(t, actors.OnGround, p.Aerial())
	assert.LessOrEqual(t, p.Velocity().Y, 0.0)
	assert.Less(t, p.Box().Bottom(), 1.0, "player should rest above the ground row")
	assert.InDelta(t, 1.0, p.Box().Bottom(), 0.001)
}

func TestPlayerStaysGroundedWhileStanding(t *testing.T) {
	stage := actors.NewStage()
	stage.PaintRect(-2, 1, 2, 1, actors.TileDirt)
	p := actors.NewPlayer(vec(0.5, 0.4), cfg.Player)

	var in input.Snapshot
	for i := 0; i < 30; i++ {
		in = in.Press()
		p.Update(dt, in)
		step(dt, p, stage)
	}
	require.Equal(t, actors.OnGround, p.Aerial())
	assert.InDelta(t, 1.0, p.Box().Bottom(), 0.001)
}

func TestPlayerPrePhysicsDemotesGround(t *testing.T) {
	p := actors.NewPlayer(vec(0, 0), cfg.Player)
	p.SetAerial(actors.OnGround)
	p.PrePhysics()
	assert.Equal(t, actors.Falling, p.Aerial())
}

func TestPlayerFrameStartBoxIsPreMove(t *testing.T) {
	p := actors.NewPlayer(vec(0, 0), cfg.Player)
	p.SetVelocity(vec(0, cfg.Player.FallSpeed))
	start := p.Box()

	step(1.0/30, p)

	assert.Equal(t, start, p.FrameStartBox())
	assert.Greater(t, p.Box().Center.Y, start.Center.Y)
}

func TestPlayerJumpStartsAtFullSpeed(t *testing.T) {
	p := actors.NewPlayer(vec(0, 0), cfg.Player)
	p.SetAerial(actors.OnGround)

	var in input.Snapshot
	p.Update(dt, in.Press(cfg.ActionJump))

	require.Equal(t, actors.Jumping, p.Aerial())
	assert.Equal(t, cfg.Player.JumpSpeed, p.Velocity().Y)
}

func TestPlayerJumpHoldWindow(t *testing.T) {
	p := actors.NewPlayer(vec(0, 0), cfg.Player)
	p.SetAerial(actors.OnGround)

	var in input.Snapshot
	in = in.Press(cfg.ActionJump)
	p.Update(dt, in)

	for i := 0; i < 3; i++ {
		in = in.Press(cfg.ActionJump)
		p.Update(dt, in)
	}
	require.Equal(t, actors.Jumping, p.Aerial(), "holding jump keeps the jump going")

	for i := 0; i < 10; i++ {
		in = in.Press(cfg.ActionJump)
		p.Update(dt, in)
	}
	assert.Equal(t, actors.Falling, p.Aerial(), "the hold window is capped")
}

func TestPlayerEarlyReleaseHonoursMinimumHold(t *testing.T) {
	p := actors.NewPlayer(vec(0, 0), cfg.Player)
	p.SetAerial(actors.OnGround)

	var in input.Snapshot
	in = in.Press(cfg.ActionJump)
	p.Update(dt, in)

	in = in.Press()
	p.Update(dt, in)
	require.Equal(t, actors.Jumping, p.Aerial(), "released before the minimum hold")

	in = in.Press()
	p.Update(dt, in)
	assert.Equal(t, actors.Falling, p.Aerial())
}

func TestPlayerReleasingTurnKeyResumesHeldDirection(t *testing.T) {
	p := actors.NewPlayer(vec(0, 0), cfg.Player)

	var in input.Snapshot
	for i := 0; i < 20; i++ {
		in = in.Press(cfg.ActionMoveRight)
		p.Update(dt, in)
	}
	in = in.Press(cfg.ActionMoveRight, cfg.ActionMoveLeft)
	p.Update(dt, in)
	require.Equal(t, actors.TurningLeft, p.Horizontal())

	for i := 0; i < 40; i++ {
		in = in.Press(cfg.ActionMoveRight)
		p.Update(dt, in)
	}
	assert.Greater(t, p.Velocity().X, 0.0)
	assert.Equal(t, actors.MovingRight, p.Horizontal())
	assert.Equal(t, 1.0, p.Facing())
}

func TestPlayerReleasingHeldKeyAfterLateTurnKeepsTurn(t *testing.T) {
	p := actors.NewPlayer(vec(0, 0), cfg.Player)

	var in input.Snapshot
	for i := 0; i < 20; i++ {
		in = in.Press(cfg.ActionMoveRight)
		p.Update(dt, in)
	}
	in = in.Press(cfg.ActionMoveRight, cfg.ActionMoveLeft)
	p.Update(dt, in)

	for i := 0; i < 40; i++ {
		in = in.Press(cfg.ActionMoveLeft)
		p.Update(dt, in)
	}
	assert.Less(t, p.Velocity().X, 0.0)
	assert.Equal(t, actors.MovingLeft, p.Horizontal())
	assert.Equal(t, -1.0, p.Facing())
}

func TestPlayerTurnsAndStops(t *testing.T) {
	p := actors.NewPlayer(vec(0, 0), cfg.Player)

	var in input.Snapshot
	for i := 0; i < 20; i++ {
		in = in.Press(cfg.ActionMoveRight)
		p.Update(dt, in)
	}
	require.Equal(t, actors.MovingRight, p.Horizontal())
	require.InDelta(t, cfg.Player.MoveSpeed, p.Velocity().X, 1e-9)

	in = in.Press(cfg.ActionMoveLeft)
	p.Update(dt, in)
	require.Equal(t, actors.TurningLeft, p.Horizontal())
	assert.Greater(t, p.Velocity().X, 0.0)

	for i := 0; i < 20; i++ {
		in = in.Press(cfg.ActionMoveLeft)
		p.Update(dt, in)
	}
	require.Equal(t, actors.MovingLeft, p.Horizontal())
	assert.InDelta(t, -cfg.Player.MoveSpeed, p.Velocity().X, 1e-9)
	assert.Equal(t, -1.0, p.Facing())

	in = in.Press()
	p.Update(dt, in)
	require.Equal(t, actors.Stopping, p.Horizontal())
	for i := 0; i < 20; i++ {
		in = in.Press()
		p.Update(dt, in)
	}
	assert.Equal(t, actors.Stopped, p.Horizontal())
	assert.Equal(t, 0.0, p.Velocity().X)
}

func TestPlayerResolveReactions(t *testing.T) {
	p := actors.NewPlayer(vec(0, 0), cfg.Player)
	p.SetVelocity(vec(4, -3))

	p.Resolve(p.ID(), vec(0.2, -0.1), vec(0, 0.05), nil)
	assert.Equal(t, 0.0, p.Velocity().Y, "ceiling bump clamps upward velocity")
	assert.InDelta(t, 0.2, p.Box().Center.X, 1e-9)
	assert.InDelta(t, -0.05, p.Box().Center.Y, 1e-9)

	p.Resolve(p.ID(), vec(0, 0), vec(-0.1, 0), nil)
	assert.Equal(t, 0.0, p.Velocity().X)
	assert.Equal(t, actors.Stopped, p.Horizontal())

	p.SetVelocity(vec(0, 6))
	p.Resolve(p.ID(), vec(0, 0), vec(0, -0.1), nil)
	assert.Equal(t, actors.OnGround, p.Aerial())
	assert.Equal(t, 0.0, p.Velocity().Y)
}

func TestPlayerIgnoresForeignIDs(t *testing.T) {
	p := actors.NewPlayer(vec(0, 0), cfg.Player)
	other := actors.NewPlayer(vec(0, 0), cfg.Player)
	p.Resolve(other.ID(), vec(5, 5), vec(0, -1), nil)
	assert.Equal(t, vec(0, 0), p.Box().Center)
	assert.Equal(t, actors.Falling, p.Aerial())
}

func TestPlayerDashChargeEconomy(t *testing.T) {
	p := actors.NewPlayer(vec(0, 0), cfg.Player)
	require.Equal(t, 1, p.Dash().NumDashesLeft)

	var in input.Snapshot
	in = in.Press(cfg.ActionDash, cfg.ActionMoveRight)
	p.Update(dt, in)
	require.True(t, p.Dash().Dashing)
	require.Equal(t, 0, p.Dash().NumDashesLeft)
	require.Equal(t, cfg.Player.DashSpeed, p.Velocity().X)

	// let the dash and its cooldown run out without landing
	for i := 0; i < 60; i++ {
		in = in.Press()
		p.Update(1.0/60, in)
	}
	require.False(t, p.Dash().Dashing)
	require.False(t, p.Dash().CoolingDown)

	prev := in
	twin := *p
	in = prev.Press(cfg.ActionDash, cfg.ActionMoveRight)
	p.Update(dt, in)
	twin.Update(dt, prev.Press(cfg.ActionMoveRight))
	assert.False(t, p.Dash().Dashing, "no charge left before landing")
	assert.Equal(t, 0, p.Dash().NumDashesLeft)
	assert.Equal(t, twin.Velocity(), p.Velocity(), "rejected dash moves like a plain update")
	assert.Equal(t, twin.Horizontal(), p.Horizontal())

	p.Resolve(p.ID(), vec(0, 0), vec(0, -0.01), nil)
	require.Equal(t, actors.OnGround, p.Aerial())
	assert.Equal(t, cfg.Player.MaxDashes, p.Dash().NumDashesLeft)

	in = in.Press()
	p.Update(dt, in)
	in = in.Press(cfg.ActionDash)
	p.Update(dt, in)
	assert.True(t, p.Dash().Dashing, "charge is usable again after landing")
}

func TestPlayerJumpIgnoredWhileDashing(t *testing.T) {
	p := actors.NewPlayer(vec(0, 0), cfg.Player)
	p.SetAerial(actors.OnGround)

	var in input.Snapshot
	in = in.Press(cfg.ActionDash, cfg.ActionMoveRight)
	p.Update(dt, in)
	require.True(t, p.Dash().Dashing)

	in = in.Press(cfg.ActionJump, cfg.ActionMoveRight)
	p.Update(0.01, in)
	require.True(t, p.Dash().Dashing)
	assert.Equal(t, actors.OnGround, p.Aerial())
	assert.Equal(t, 0.0, p.Velocity().Y)
	assert.Greater(t, p.Velocity().X, 0.0)
}

func TestPlayerDiagonalDash(t *testing.T) {
	p := actors.NewPlayer(vec(0, 0), cfg.Player)

	var in input.Snapshot
	p.Update(dt, in.Press(cfg.ActionDash, cfg.ActionMoveLeft, cfg.ActionMoveUp))

	want := gamemath.Vec{X: -1, Y: -1}.Scale(cfg.Player.DashSpeed * gamemath.InvSqrt2)
	assert.InDelta(t, want.X, p.Velocity().X, 1e-9)
	assert.InDelta(t, want.Y, p.Velocity().Y, 1e-9)
}

func TestPlayerDashSlowsDown(t *testing.T) {
	p := actors.NewPlayer(vec(0, 0), cfg.Player)

	var in input.Snapshot
	in = in.Press(cfg.ActionDash, cfg.ActionMoveRight)
	p.Update(0.01, in)

	speeds := []float64{p.Velocity().X}
	for i := 0; i < 14; i++ {
		in = in.Press(cfg.ActionMoveRight)
		p.Update(0.01, in)
		speeds = append(speeds, p.Velocity().X)
	}
	for i := 1; i < len(speeds); i++ {
		assert.LessOrEqual(t, speeds[i], speeds[i-1], "dash speed never increases")
	}
	early := speeds[0] - speeds[3]
	late := speeds[10] - speeds[13]
	assert.Greater(t, late, early, "slowdown after the peak is faster than the decay before it")
}

func TestPlayerWallEndsHorizontalDash(t *testing.T) {
	p := actors.NewPlayer(vec(0, 0), cfg.Player)

	var in input.Snapshot
	p.Update(dt, in.Press(cfg.ActionDash, cfg.ActionMoveRight))
	require.True(t, p.Dash().Dashing)

	p.Resolve(p.ID(), vec(0.5, 0), vec(-0.2, 0), nil)
	assert.False(t, p.Dash().Dashing)
	assert.True(t, p.Dash().CoolingDown)
	assert.Equal(t, 0.0, p.Velocity().X)
}
