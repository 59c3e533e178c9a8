package object

import "github.com/tomz197/planetoids/internal/physics"

// Bullet is a projectile fired by the ship. Its velocity never changes.
type Bullet struct {
	Body
}

// NewBullet creates a bullet at pos moving with vel.
func NewBullet(pos, vel physics.Vector2, radius float64) *Bullet {
	return &Bullet{Body: Body{Position: pos, Velocity: vel, Radius: radius}}
}

// Advance moves the bullet. Bullets do not wrap; see Outside.
func (b *Bullet) Advance() {
	b.Position = b.Position.Add(b.Velocity)
}

// Outside reports whether the bullet has left the field and its dead zone.
func (b *Bullet) Outside(f Field) bool {
	return !f.Contains(b.Position)
}

// Draw renders the bullet as a single point.
func (b *Bullet) Draw(ctx DrawContext) error {
	p := ctx.Project(b.Position)
	ctx.Canvas.SetFloat(p.X, p.Y)
	return nil
}
