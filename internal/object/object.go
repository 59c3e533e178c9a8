// Package object holds the moving bodies of a wave: ship, asteroids and bullets.
package object

import (
	"github.com/tomz197/planetoids/internal/draw"
	"github.com/tomz197/planetoids/internal/input"
	"github.com/tomz197/planetoids/internal/physics"
)

// Input is an alias for the input package's Input type.
type Input = input.Input

// Field is the play area. Bodies may drift up to DeadZone past any edge before
// they wrap to the opposite side.
type Field struct {
	Width    float64
	Height   float64
	DeadZone float64
}

// Wrap applies toroidal wrapping to p independently on each axis.
func (f Field) Wrap(p physics.Vector2) physics.Vector2 {
	return physics.Vector2{
		X: wrapAxis(p.X, f.Width, f.DeadZone),
		Y: wrapAxis(p.Y, f.Height, f.DeadZone),
	}
}

// Contains reports whether p lies within the field extended by the dead zone.
func (f Field) Contains(p physics.Vector2) bool {
	return p.X >= -f.DeadZone && p.X <= f.Width+f.DeadZone &&
		p.Y >= -f.DeadZone && p.Y <= f.Height+f.DeadZone
}

func wrapAxis(v, dim, deadZone float64) float64 {
	span := dim + 2*deadZone
	if v < -deadZone {
		return v + span
	}
	if v > dim+deadZone {
		return v - span
	}
	return v
}

// Canvas is the drawing surface bodies render onto, in canvas coordinates.
// *draw.Canvas implements it for terminals.
type Canvas interface {
	DrawPolygon(points []draw.Point, filled bool)
	SetFloat(x, y float64)
}

// DrawContext provides drawing resources for bodies.
type DrawContext struct {
	Canvas Canvas
	Field  Field
}

// Project converts field coordinates (y up) into canvas coordinates (y down).
func (ctx DrawContext) Project(p physics.Vector2) draw.Point {
	return draw.Point{X: p.X, Y: ctx.Field.Height - p.Y}
}
