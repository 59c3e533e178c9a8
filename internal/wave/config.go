package wave

import (
	"errors"
	"fmt"

	"github.com/tomz197/planetoids/internal/config"
	"github.com/tomz197/planetoids/internal/object"
)

// ErrInvalidConfig is wrapped by errors from Config.Validate.
var ErrInvalidConfig = errors.New("invalid wave config")

// Config holds the tuning a wave runs with. It is a plain value; a wave keeps
// its own copy.
type Config struct {
	Field         object.Field
	Ship          object.ShipSpec
	BulletSpeed   float64
	BulletRadius  float64
	FireRate      int // Minimum ticks between shots
	Lives         int
	RecoveryTicks int // Ticks after a respawn during which hits cost no life
	Sizes         object.SizeTable

	// ScorePerKill awards a point per destroyed asteroid instead of one point
	// per tick in which anything was destroyed.
	ScorePerKill bool
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		Field: object.Field{
			Width:    config.FieldWidth,
			Height:   config.FieldHeight,
			DeadZone: config.DeadZone,
		},
		Ship: object.ShipSpec{
			Radius:   config.ShipRadius,
			Impulse:  config.ShipImpulse,
			MaxSpeed: config.ShipMaxSpeed,
			TurnRate: config.ShipTurnRate,
		},
		BulletSpeed:   config.BulletSpeed,
		BulletRadius:  config.BulletRadius,
		FireRate:      config.BulletRate,
		Lives:         config.ShipLives,
		RecoveryTicks: config.RecoveryTicks,
		Sizes: object.NewSizeTable(
			object.SizeSpec{Radius: config.SmallRadius, Speed: config.SmallSpeed},
			object.SizeSpec{Radius: config.MediumRadius, Speed: config.MediumSpeed},
			object.SizeSpec{Radius: config.LargeRadius, Speed: config.LargeSpeed},
		),
	}
}

// ConfigFromEnv returns DefaultConfig adjusted by PLANETOIDS_LIVES and
// PLANETOIDS_SCORING. A malformed variable is an error wrapping
// ErrInvalidConfig.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	lives, err := config.GetEnvInt(config.EnvLives, cfg.Lives)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	cfg.Lives = lives
	cfg.ScorePerKill = config.GetEnv(config.EnvScoring, "") == "kill"
	return cfg, nil
}

// Validate rejects tuning the engine cannot run with.
func (c Config) Validate() error {
	checks := []struct {
		ok    bool
		field string
	}{
		{c.Field.Width > 0, "field.width"},
		{c.Field.Height > 0, "field.height"},
		{c.Field.DeadZone >= 0, "field.dead_zone"},
		{c.Ship.Radius > 0, "ship.radius"},
		{c.Ship.Impulse >= 0, "ship.impulse"},
		{c.Ship.MaxSpeed > 0, "ship.max_speed"},
		{c.BulletSpeed > 0, "bullet_speed"},
		{c.BulletRadius > 0, "bullet_radius"},
		{c.FireRate >= 0, "fire_rate"},
		{c.Lives > 0, "lives"},
		{c.RecoveryTicks >= 0, "recovery_ticks"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.field)
		}
	}
	for s := object.Small; s <= object.Large; s++ {
		spec := c.Sizes.Spec(s)
		if !(spec.Radius > 0) || spec.Speed < 0 {
			return fmt.Errorf("%w: sizes.%s", ErrInvalidConfig, s)
		}
	}
	return nil
}

// maxRadius returns the largest asteroid radius in the table.
func (c Config) maxRadius() float64 {
	r := 0.0
	for s := object.Small; s <= object.Large; s++ {
		r = max(r, c.Sizes.Spec(s).Radius)
	}
	return r
}
