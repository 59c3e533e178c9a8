package wave

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/planetoids/internal/input"
	"github.com/tomz197/planetoids/internal/object"
	"github.com/tomz197/planetoids/internal/physics"
)

// Status is the outcome of a wave so far.
type Status int

const (
	Playing Status = iota
	Won            // Every asteroid destroyed with lives to spare
	Lost           // Out of lives
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Wave owns the ship, asteroids and bullets of one level and advances them
// one tick per Update. It is not safe for concurrent use.
type Wave struct {
	cfg       Config
	desc      *Description
	logger    *log.Logger
	ship      *object.Ship
	asteroids []*object.Asteroid
	bullets   []*object.Bullet

	lives        int
	score        int
	fireCooldown int  // Ticks since the last shot, capped at FireRate
	justHit      bool // Set when the ship is destroyed, cleared by ResetShip
	recovery     int  // Ticks since the last ResetShip, capped at RecoveryTicks
	lifeLost     bool // Hits cost no life while set

	ticks   int
	elapsed time.Duration

	// Collision scratch space, reused every tick.
	grid      *physics.SpatialGrid
	destroyed []bool
	spawned   []*object.Asteroid
}

// Option configures a Wave.
type Option func(*Wave)

// WithLogger sets the logger for wave events. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(w *Wave) {
		if l != nil {
			w.logger = l
		}
	}
}

// New builds a wave from a description.
func New(desc *Description, cfg Config, opts ...Option) (*Wave, error) {
	if desc == nil {
		return nil, fmt.Errorf("%w: nil description", ErrInvalidDescription)
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := &Wave{
		cfg:          cfg,
		desc:         desc,
		logger:       log.New(io.Discard),
		lives:        cfg.Lives,
		fireCooldown: cfg.FireRate,
		recovery:     cfg.RecoveryTicks,
		asteroids:    make([]*object.Asteroid, 0, len(desc.Asteroids)),
	}
	for _, opt := range opts {
		opt(w)
	}

	pos, angle := desc.shipStart()
	w.ship = object.NewShip(pos, angle, cfg.Ship)

	for _, a := range desc.Asteroids {
		size, _ := object.ParseSize(a.Size)
		p := physics.Vector2{X: a.Position[0], Y: a.Position[1]}
		d := physics.Vector2{X: a.Direction[0], Y: a.Direction[1]}
		w.asteroids = append(w.asteroids, object.NewAsteroid(size, p, d, cfg.Sizes))
	}

	f := cfg.Field
	cell := max(cfg.BulletRadius, cfg.Ship.Radius) + cfg.maxRadius()
	w.grid = physics.NewSpatialGrid(-f.DeadZone, -f.DeadZone, f.Width+2*f.DeadZone, f.Height+2*f.DeadZone, cell)

	w.logger.Debug("wave created", "asteroids", len(w.asteroids), "lives", w.lives)
	return w, nil
}

// Update advances the wave by one tick. Motion is per tick; dt only feeds Elapsed.
func (w *Wave) Update(dt time.Duration, in input.Input) {
	w.ticks++
	w.elapsed += dt

	if w.ship != nil {
		w.ship.TurnAndThrust(in)
		w.ship.Advance(w.cfg.Field)
	}
	for _, a := range w.asteroids {
		a.Advance(w.cfg.Field)
	}

	if in.Fire && w.ship != nil && w.fireCooldown >= w.cfg.FireRate {
		w.fire()
	}

	w.collide()

	if w.fireCooldown < w.cfg.FireRate {
		w.fireCooldown++
	}

	w.advanceBullets()

	if w.recovery < w.cfg.RecoveryTicks {
		w.recovery++
	}
	if w.lifeLost && w.ship != nil && w.recovery >= w.cfg.RecoveryTicks {
		w.lifeLost = false
		w.logger.Debug("recovery over", "tick", w.ticks)
	}
}

func (w *Wave) fire() {
	facing := w.ship.Facing()
	w.bullets = append(w.bullets, object.NewBullet(w.ship.Nose(), facing.Scale(w.cfg.BulletSpeed), w.cfg.BulletRadius))
	w.fireCooldown = 0
}

// advanceBullets moves every bullet and drops those that left the field.
func (w *Wave) advanceBullets() {
	kept := w.bullets[:0]
	for _, b := range w.bullets {
		b.Advance()
		if !b.Outside(w.cfg.Field) {
			kept = append(kept, b)
		}
	}
	clear(w.bullets[len(kept):])
	w.bullets = kept
}

// ResetShip puts a fresh ship at the description's start and begins the
// recovery period. Bullets and asteroids are left alone.
func (w *Wave) ResetShip() {
	pos, angle := w.desc.shipStart()
	w.ship = object.NewShip(pos, angle, w.cfg.Ship)
	w.justHit = false
	w.recovery = 0
	w.lifeLost = true
	w.logger.Info("ship reset", "lives", w.lives, "tick", w.ticks)
}

// Lives returns the remaining lives.
func (w *Wave) Lives() int { return w.lives }

// Score returns the points earned so far.
func (w *Wave) Score() int { return w.score }

// AsteroidCount returns how many asteroids are left.
func (w *Wave) AsteroidCount() int { return len(w.asteroids) }

// BulletCount returns how many bullets are in flight.
func (w *Wave) BulletCount() int { return len(w.bullets) }

// JustHit reports whether the ship was destroyed and has not been reset yet.
func (w *Wave) JustHit() bool { return w.justHit }

// LifeLost reports whether the ship is between a hit and the end of its
// recovery period.
func (w *Wave) LifeLost() bool { return w.lifeLost }

// Ship returns a copy of the ship, or false while it is destroyed.
func (w *Wave) Ship() (object.Ship, bool) {
	if w.ship == nil {
		return object.Ship{}, false
	}
	return *w.ship, true
}

// Asteroids returns copies of the asteroids in collection order.
func (w *Wave) Asteroids() []object.Asteroid {
	out := make([]object.Asteroid, len(w.asteroids))
	for i, a := range w.asteroids {
		out[i] = *a
	}
	return out
}

// Bullets returns copies of the bullets in flight.
func (w *Wave) Bullets() []object.Bullet {
	out := make([]object.Bullet, len(w.bullets))
	for i, b := range w.bullets {
		out[i] = *b
	}
	return out
}

// Status reports whether the wave is still being played.
// Running out of lives takes precedence over clearing the field.
func (w *Wave) Status() Status {
	switch {
	case w.lives <= 0:
		return Lost
	case len(w.asteroids) == 0:
		return Won
	}
	return Playing
}

// Complete reports whether the wave has been won or lost.
func (w *Wave) Complete() bool {
	return w.Status() != Playing
}

// Ticks returns the number of updates so far.
func (w *Wave) Ticks() int { return w.ticks }

// Elapsed returns the sum of the durations passed to Update.
func (w *Wave) Elapsed() time.Duration { return w.elapsed }

// Field returns the play field the wave runs on.
func (w *Wave) Field() object.Field { return w.cfg.Field }

// Draw renders the ship, asteroids and bullets.
func (w *Wave) Draw(ctx object.DrawContext) error {
	if ctx.Canvas == nil {
		return errors.New("wave: draw without canvas")
	}
	if w.ship != nil {
		if err := w.ship.Draw(ctx); err != nil {
			return err
		}
	}
	for _, a := range w.asteroids {
		if err := a.Draw(ctx); err != nil {
			return err
		}
	}
	for _, b := range w.bullets {
		if err := b.Draw(ctx); err != nil {
			return err
		}
	}
	return nil
}
