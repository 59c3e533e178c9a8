package wave

import (
	"math"
	"testing"

	"github.com/tomz197/planetoids/internal/input"
	"github.com/tomz197/planetoids/internal/object"
	"github.com/tomz197/planetoids/internal/physics"
)

// staged builds a wave with a far-away ship and then replaces its bodies, so
// collide can be exercised on exact layouts.
func staged(t *testing.T, cfg Config, asteroids []*object.Asteroid, bullets []*object.Bullet) *Wave {
	t.Helper()
	w := newWave(t, describe(700, 650, 90), cfg)
	w.asteroids = asteroids
	w.bullets = bullets
	return w
}

func at(size object.Size, x, y float64) *object.Asteroid {
	return object.NewAsteroid(size, physics.Vector2{X: x, Y: y}, physics.Vector2{}, DefaultConfig().Sizes)
}

func shot(x, y, vx, vy float64) *object.Bullet {
	return object.NewBullet(physics.Vector2{X: x, Y: y}, physics.Vector2{X: vx, Y: vy}, 5)
}

func TestCollide_SplitGeometry(t *testing.T) {
	w := staged(t, DefaultConfig(),
		[]*object.Asteroid{at(object.Large, 300, 200)},
		[]*object.Bullet{shot(300, 200, 0, 10)},
	)
	w.collide()

	children := w.Asteroids()
	if len(children) != 3 {
		t.Fatalf("got %d children, want 3", len(children))
	}
	parent := physics.Vector2{X: 300, Y: 200}
	wantAngles := []float64{90, 210, -30}
	for i, c := range children {
		if c.Size != object.Medium {
			t.Errorf("child %d size = %v, want medium", i, c.Size)
		}
		offset := c.Position.Sub(parent)
		if math.Abs(offset.Length()-30) > 1e-9 {
			t.Errorf("child %d is %v from the parent, want 30", i, offset.Length())
		}
		if math.Abs(c.Velocity.Length()-3) > 1e-9 {
			t.Errorf("child %d speed = %v, want 3", i, c.Velocity.Length())
		}
		dir := physics.FromAngle(wantAngles[i])
		if physics.Distance(offset.Normalize(), dir) > 1e-9 || physics.Distance(c.Velocity.Normalize(), dir) > 1e-9 {
			t.Errorf("child %d heads %v, want %v", i, c.Velocity.Normalize(), dir)
		}
	}
}

func TestCollide_SmallIsRemoved(t *testing.T) {
	w := staged(t, DefaultConfig(),
		[]*object.Asteroid{at(object.Small, 100, 100)},
		[]*object.Bullet{shot(100, 100, 10, 0)},
	)
	w.collide()

	if w.AsteroidCount() != 0 || w.BulletCount() != 0 || w.Score() != 1 {
		t.Errorf("asteroids=%d bullets=%d score=%d", w.AsteroidCount(), w.BulletCount(), w.Score())
	}
	if w.Status() != Won {
		t.Errorf("Status() = %v, want won", w.Status())
	}
}

func TestCollide_ZeroImpactDirection(t *testing.T) {
	w := staged(t, DefaultConfig(),
		[]*object.Asteroid{at(object.Medium, 300, 300)},
		[]*object.Bullet{shot(300, 300, 0, 0)},
	)
	w.collide()

	children := w.Asteroids()
	if len(children) != 3 {
		t.Fatalf("got %d children, want 3", len(children))
	}
	if physics.Distance(children[0].Velocity, physics.Vector2{X: 4}) > 1e-9 {
		t.Errorf("first child velocity = %v, want (4, 0)", children[0].Velocity)
	}
	for _, c := range children {
		if math.IsNaN(c.Position.X) || math.IsNaN(c.Velocity.X) {
			t.Fatalf("NaN child: %+v", c)
		}
	}
}

func TestCollide_FirstMatchByIndex(t *testing.T) {
	// Cells are 80 wide starting at -64: the first asteroid lands in cell 2,
	// the second in cell 1, which the grid visits first.
	first := at(object.Small, 97, 100)
	second := at(object.Small, 95, 100)
	w := staged(t, DefaultConfig(),
		[]*object.Asteroid{first, second},
		[]*object.Bullet{shot(96, 100, 10, 0)},
	)
	w.collide()

	left := w.Asteroids()
	if len(left) != 1 || left[0].Position.X != 95 {
		t.Errorf("remaining = %+v, want only the asteroid at x=95", left)
	}
}

func TestCollide_AsteroidDestroyedOnce(t *testing.T) {
	w := staged(t, DefaultConfig(),
		[]*object.Asteroid{at(object.Large, 100, 100)},
		[]*object.Bullet{shot(100, 100, 10, 0), shot(100, 110, 10, 0)},
	)
	w.collide()

	if w.AsteroidCount() != 3 {
		t.Errorf("AsteroidCount() = %d, want one split into 3", w.AsteroidCount())
	}
	if w.BulletCount() != 0 {
		t.Errorf("BulletCount() = %d, want both bullets used up", w.BulletCount())
	}
	if w.Score() != 1 {
		t.Errorf("Score() = %d, want 1", w.Score())
	}

	w.Update(0, input.Input{})
	if w.AsteroidCount() != 3 || w.Score() != 1 {
		t.Errorf("next tick: asteroids=%d score=%d, want 3 and 1", w.AsteroidCount(), w.Score())
	}
}

func TestCollide_SpentBulletSkippedForLaterAsteroid(t *testing.T) {
	// The second bullet overlaps the destroyed asteroid and a later one; it
	// takes the later one.
	w := staged(t, DefaultConfig(),
		[]*object.Asteroid{at(object.Small, 100, 100), at(object.Small, 130, 100)},
		[]*object.Bullet{shot(100, 100, 10, 0), shot(115, 100, 10, 0)},
	)
	w.collide()

	if w.AsteroidCount() != 0 || w.BulletCount() != 0 {
		t.Errorf("asteroids=%d bullets=%d, want 0 and 0", w.AsteroidCount(), w.BulletCount())
	}
}

func TestCollide_ChildrenNotHitSameTick(t *testing.T) {
	// The second bullet misses the parent (58 away) but overlaps the first
	// child, which appears at x=330.
	w := staged(t, DefaultConfig(),
		[]*object.Asteroid{at(object.Large, 300, 100)},
		[]*object.Bullet{shot(300, 100, 10, 0), shot(358, 100, 10, 0)},
	)
	w.collide()

	if w.AsteroidCount() != 3 || w.BulletCount() != 1 {
		t.Errorf("asteroids=%d bullets=%d, want 3 and 1", w.AsteroidCount(), w.BulletCount())
	}
}

func TestCollide_Scoring(t *testing.T) {
	tests := []struct {
		name     string
		perKill  bool
		expected int
	}{
		{name: "per_tick", perKill: false, expected: 1},
		{name: "per_kill", perKill: true, expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ScorePerKill = tt.perKill
			w := staged(t, cfg,
				[]*object.Asteroid{at(object.Small, 100, 100), at(object.Small, 500, 100), at(object.Small, 300, 500)},
				[]*object.Bullet{shot(100, 100, 1, 0), shot(500, 100, 1, 0)},
			)
			w.collide()

			if w.Score() != tt.expected {
				t.Errorf("Score() = %d, want %d", w.Score(), tt.expected)
			}
			if w.AsteroidCount() != 1 {
				t.Errorf("AsteroidCount() = %d, want 1", w.AsteroidCount())
			}
		})
	}
}

func TestCollide_NoHitNoScore(t *testing.T) {
	w := staged(t, DefaultConfig(),
		[]*object.Asteroid{at(object.Large, 100, 100)},
		[]*object.Bullet{shot(155, 100, 10, 0)},
	)
	w.collide()

	if w.Score() != 0 || w.AsteroidCount() != 1 || w.BulletCount() != 1 {
		t.Errorf("touching bodies must not collide: score=%d asteroids=%d bullets=%d",
			w.Score(), w.AsteroidCount(), w.BulletCount())
	}
}

func TestCollide_ShipHitByFreshChild(t *testing.T) {
	w := staged(t, DefaultConfig(),
		[]*object.Asteroid{at(object.Large, 300, 100)},
		[]*object.Bullet{shot(300, 100, 10, 0)},
	)
	// 85 from the parent (out of reach) but 55 from the child spawned at +30.
	w.ship.Position = physics.Vector2{X: 385, Y: 100}
	w.collide()

	if w.Lives() != 2 || !w.JustHit() {
		t.Errorf("lives=%d justHit=%v, want the child to hit the ship", w.Lives(), w.JustHit())
	}
}

func TestCollide_ShipNearMissAcrossCells(t *testing.T) {
	w := staged(t, DefaultConfig(), []*object.Asteroid{at(object.Large, 100, 100)}, nil)

	w.ship.Position = physics.Vector2{X: 180, Y: 100}
	w.collide()
	if w.Lives() != 3 {
		t.Fatalf("touching ship lost a life")
	}

	w.ship.Position = physics.Vector2{X: 179, Y: 100}
	w.collide()
	if w.Lives() != 2 {
		t.Errorf("overlapping ship in a neighbouring cell was missed")
	}
}
