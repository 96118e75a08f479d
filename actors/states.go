package actors

// AerialState is the vertical sub-state shared by players and enemies.
type AerialState int

const (
	Falling AerialState = iota
	OnGround
	Jumping
)

func (s AerialState) String() string {
	switch s {
	case OnGround:
		return "OnGround"
	case Jumping:
		return "Jumping"
	}
	return "Falling"
}

// HorizontalState is derived from the player's velocity each frame.
type HorizontalState int

const (
	Stopped HorizontalState = iota
	Stopping
	MovingLeft
	MovingRight
	TurningLeft
	TurningRight
)

func (s HorizontalState) String() string {
	switch s {
	case Stopping:
		return "Stopping"
	case MovingLeft:
		return "MovingLeft"
	case MovingRight:
		return "MovingRight"
	case TurningLeft:
		return "TurningLeft"
	case TurningRight:
		return "TurningRight"
	}
	return "Stopped"
}

func (s HorizontalState) turning() bool {
	return s == TurningLeft || s == TurningRight
}

// heading is +1 when s targets the right, -1 for the left and 0 otherwise.
func (s HorizontalState) heading() int {
	switch s {
	case MovingRight, TurningRight:
		return 1
	case MovingLeft, TurningLeft:
		return -1
	}
	return 0
}

// Direction is a patrol heading.
type Direction int

const (
	DirectionLeft  Direction = -1
	DirectionRight Direction = 1
)

func (d Direction) Reverse() Direction {
	return -d
}

// DashInfo tracks the dash sub-machine.
type DashInfo struct {
	NumDashesLeft       int
	Dashing             bool
	DashingTimeElapsed  float64
	CoolingDown         bool
	CooldownTimeElapsed float64
}
