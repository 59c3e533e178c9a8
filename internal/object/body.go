package object

import "github.com/tomz197/planetoids/internal/physics"

// Body is a circle moving at constant velocity between ticks. Radii come from
// a validated wave config and are always positive.
type Body struct {
	Position physics.Vector2
	Velocity physics.Vector2
	Radius   float64
}

// Advance moves the body by one tick of velocity and wraps it around the field.
func (b *Body) Advance(f Field) {
	b.Position = f.Wrap(b.Position.Add(b.Velocity))
}

// Overlaps reports whether the two bodies' circles overlap.
func (b Body) Overlaps(o Body) bool {
	return physics.CirclesOverlap(b.Position, b.Radius, o.Position, o.Radius)
}
