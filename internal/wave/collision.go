package wave

import (
	"github.com/tomz197/planetoids/internal/object"
	"github.com/tomz197/planetoids/internal/physics"
)

// splitAngles fans the children of a destroyed asteroid out from the impact direction.
var splitAngles = [...]float64{0, 120, -120}

// collide resolves bullet hits, splits the asteroids they destroy and checks
// the ship against what is left.
func (w *Wave) collide() {
	w.indexAsteroids()
	w.destroyed = resetFlags(w.destroyed, len(w.asteroids))
	w.spawned = w.spawned[:0]

	kills := 0
	kept := w.bullets[:0]
	for _, b := range w.bullets {
		i, spent := w.firstOverlap(b.Body, w.destroyed)
		if i < 0 {
			// A bullet that only reaches an asteroid already destroyed this
			// tick is used up without splitting it again.
			if !spent {
				kept = append(kept, b)
			}
			continue
		}
		w.destroyed[i] = true
		kills++
		w.spawned = w.split(w.asteroids[i], b.Velocity, w.spawned)
	}
	clear(w.bullets[len(kept):])
	w.bullets = kept

	if kills > 0 {
		w.removeDestroyed()
		if w.cfg.ScorePerKill {
			w.score += kills
		} else {
			w.score++
		}
	}

	if w.ship == nil || w.lifeLost {
		return
	}
	if kills > 0 {
		w.indexAsteroids()
	}
	w.destroyed = resetFlags(w.destroyed, len(w.asteroids))
	if i, _ := w.firstOverlap(w.ship.Body, w.destroyed); i >= 0 {
		w.loseLife()
	}
}

// indexAsteroids rebuilds the broad-phase grid from the current asteroids.
func (w *Wave) indexAsteroids() {
	w.grid.Clear()
	for i, a := range w.asteroids {
		w.grid.Insert(a.Position, i)
	}
}

// firstOverlap returns the index of the earliest surviving asteroid that
// overlaps body, or -1. Earliest means lowest index, so the grid's visiting
// order never changes which asteroid a bullet hits. spent reports whether
// body overlaps an asteroid already marked destroyed.
func (w *Wave) firstOverlap(body object.Body, destroyed []bool) (best int, spent bool) {
	best = -1
	w.grid.QueryAround(body.Position, func(i int) bool {
		if best >= 0 && i > best {
			return false
		}
		if !body.Overlaps(w.asteroids[i].Body) {
			return false
		}
		if destroyed[i] {
			spent = true
		} else {
			best = i
		}
		return false
	})
	return best, spent
}

// removeDestroyed compacts the asteroid slice and appends this tick's children.
func (w *Wave) removeDestroyed() {
	kept := w.asteroids[:0]
	for i, a := range w.asteroids {
		if !w.destroyed[i] {
			kept = append(kept, a)
		}
	}
	clear(w.asteroids[len(kept):])
	w.asteroids = append(kept, w.spawned...)
}

// split appends the three children of a, fanned around the impact velocity.
// Small asteroids have no children.
func (w *Wave) split(a *object.Asteroid, impact physics.Vector2, out []*object.Asteroid) []*object.Asteroid {
	child, ok := a.Size.Smaller()
	if !ok {
		return out
	}
	dir := impact.Normalize()
	if dir.IsZero() {
		dir = physics.Vector2{X: 1}
	}
	r := w.cfg.Sizes.Spec(child).Radius
	for _, deg := range splitAngles {
		d := dir.Rotate(deg)
		out = append(out, object.NewAsteroid(child, a.Position.Add(d.Scale(r)), d, w.cfg.Sizes))
	}
	return out
}

func (w *Wave) loseLife() {
	if w.lives > 0 {
		w.lives--
	} else {
		w.logger.Warn("ship hit with no lives left", "tick", w.ticks)
	}
	w.justHit = true
	w.lifeLost = true
	w.ship = nil
	w.logger.Info("ship destroyed", "lives", w.lives, "tick", w.ticks)
}

func resetFlags(flags []bool, n int) []bool {
	if cap(flags) < n {
		return make([]bool, n)
	}
	flags = flags[:n]
	clear(flags)
	return flags
}
