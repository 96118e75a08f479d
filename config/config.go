package config

import "image/color"

// PlayerConfig contains all player-related configuration values.
// Distances are world units (one stage cell), times are seconds and
// velocities are units per second with y pointing down.
type PlayerConfig struct {
	// Dimensions
	Width  float64
	Height float64

	// Vertical movement
	JumpSpeed     float64 // target vertical velocity while jumping (negative is up)
	FallSpeed     float64 // target vertical velocity otherwise
	VerticalAccel float64
	JumpMinHold   float64 // jump lasts at least this long once started
	JumpMaxHold   float64 // holding jump longer than this starts the fall

	// Horizontal movement
	MoveSpeed            float64
	TurnSpeed            float64 // target speed while reversing direction
	HorizontalAccel      float64
	GroundTurnMultiplier float64 // accel multiplier when turning or stopping on the ground

	// Dash
	MaxDashes    int
	DashSpeed    float64
	DashDecay    float64 // speed lost per second before DashPeakTime
	DashSlowdown float64 // speed lost per second after DashPeakTime
	DashPeakTime float64
	DashTime     float64 // length of the burst, DashPeakTime included
	DashHangTime float64 // velocity is held after the burst for this long
	DashCooldown float64

	// Combat
	StompBounce float64 // vertical velocity after a successful stomp
}

// EnemyConfig contains patrolling enemy configuration.
type EnemyConfig struct {
	Width           float64
	Height          float64
	PatrolSpeed     float64
	HorizontalAccel float64
	FallSpeed       float64
	VerticalAccel   float64
	KnockbackSpeed  float64 // vertical velocity forced by a projectile hit
	SlowFactor      float64 // patrol speed multiplier after a slowing hit
	SlowDuration    float64
}

// ProjectileConfig contains projectile configuration.
type ProjectileConfig struct {
	Size         float64
	Speed        float64
	SlowingSpeed float64
	Lifetime     float64
}

// StompConfig contains the stomp rule threshold.
type StompConfig struct {
	// Ratio of the combined half-heights the stomper's center must be above
	// the stomped center by.
	Ratio float64
}

// ColorConfig holds the flat colors used to draw each kind of box.
type ColorConfig struct {
	Background        color.RGBA
	Player            color.RGBA
	Enemy             color.RGBA
	Projectile        color.RGBA
	SlowingProjectile color.RGBA
	Wall              color.RGBA
	Cursor            color.RGBA
	Attempt           color.RGBA
	AcceptedAttempt   color.RGBA
	Text              color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width         int
	Height        int
	PixelsPerUnit float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	TraceResolver bool // Record resolver candidates for drawing
	StartInEditor bool
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Projectile ProjectileConfig
var Stomp StompConfig
var Colors ColorConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:         960,
		Height:        540,
		PixelsPerUnit: 32,
	}

	Player = PlayerConfig{
		Width:  0.7,
		Height: 0.9,

		JumpSpeed:     -8.0,
		FallSpeed:     12.0,
		VerticalAccel: 40.0,
		JumpMinHold:   0.08,
		JumpMaxHold:   0.3,

		MoveSpeed:            6.0,
		TurnSpeed:            9.0,
		HorizontalAccel:      30.0,
		GroundTurnMultiplier: 3.0,

		MaxDashes:    1,
		DashSpeed:    18.0,
		DashDecay:    25.0,
		DashSlowdown: 120.0,
		DashPeakTime: 0.08,
		DashTime:     0.15,
		DashHangTime: 0.06,
		DashCooldown: 0.3,

		StompBounce: -8.0,
	}

	Enemy = EnemyConfig{
		Width:           0.9,
		Height:          0.9,
		PatrolSpeed:     2.0,
		HorizontalAccel: 20.0,
		FallSpeed:       12.0,
		VerticalAccel:   40.0,
		KnockbackSpeed:  -10.0,
		SlowFactor:      0.4,
		SlowDuration:    2.0,
	}

	Projectile = ProjectileConfig{
		Size:         0.25,
		Speed:        14.0,
		SlowingSpeed: 9.0,
		Lifetime:     1.5,
	}

	Stomp = StompConfig{
		Ratio: 0.8,
	}

	Colors = ColorConfig{
		Background:        color.RGBA{R: 24, G: 20, B: 37, A: 255},
		Player:            color.RGBA{R: 232, G: 183, B: 150, A: 255},
		Enemy:             color.RGBA{R: 181, G: 80, B: 136, A: 255},
		Projectile:        color.RGBA{R: 254, G: 231, B: 97, A: 255},
		SlowingProjectile: color.RGBA{R: 44, G: 232, B: 245, A: 255},
		Wall:              color.RGBA{R: 116, G: 63, B: 57, A: 255},
		Cursor:            color.RGBA{R: 255, G: 255, B: 255, A: 96},
		Attempt:           color.RGBA{R: 255, G: 0, B: 68, A: 80},
		AcceptedAttempt:   color.RGBA{R: 99, G: 199, B: 77, A: 120},
		Text:              color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}

	Debug = DebugConfig{}
}
