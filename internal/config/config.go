package config

import "time"

// Play field in logical units. The origin is the bottom-left corner and y grows upward.
const (
	FieldWidth  = 800
	FieldHeight = 700
	DeadZone    = 64 // Margin a body may drift past an edge before wrapping
)

// Ship
const (
	ShipRadius   = 30
	ShipImpulse  = 0.25 // Velocity added per thrusting tick
	ShipMaxSpeed = 10
	ShipTurnRate = 5 // Degrees per tick
	ShipLives    = 3
)

// Bullets
const (
	BulletRadius = 5
	BulletSpeed  = 10
	BulletRate   = 10 // Minimum ticks between shots
)

// Asteroids
const (
	SmallRadius  = 20
	MediumRadius = 30
	LargeRadius  = 50

	SmallSpeed  = 4
	MediumSpeed = 3
	LargeSpeed  = 2
)

// RecoveryTicks is how long a respawned ship is immune to losing another life.
const RecoveryTicks = 200

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Terminal rendering is clamped to this size and centered in larger terminals.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 70
)

// Environment variables
const (
	EnvWave     = "PLANETOIDS_WAVE"
	EnvLogLevel = "PLANETOIDS_LOG_LEVEL"
	EnvLogFile  = "PLANETOIDS_LOG_FILE"
	EnvLives    = "PLANETOIDS_LIVES"
	EnvScoring  = "PLANETOIDS_SCORING" // "kill" scores every destroyed asteroid
)
