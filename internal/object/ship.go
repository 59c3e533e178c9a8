package object

import (
	"github.com/tomz197/planetoids/internal/draw"
	"github.com/tomz197/planetoids/internal/physics"
)

// ShipSpec holds the handling characteristics of the player ship.
type ShipSpec struct {
	Radius   float64
	Impulse  float64 // Velocity added per thrusting tick
	MaxSpeed float64
	TurnRate float64 // Degrees per tick
}

// Ship is the player-controlled ship.
// Angle is in degrees; 0 points along +x and angles grow counter-clockwise.
type Ship struct {
	Body
	angle  float64
	facing physics.Vector2
	spec   ShipSpec
}

// NewShip creates a stationary ship at pos facing angle degrees.
func NewShip(pos physics.Vector2, angle float64, spec ShipSpec) *Ship {
	s := &Ship{
		Body: Body{Position: pos, Radius: spec.Radius},
		spec: spec,
	}
	s.setAngle(angle)
	return s
}

// Angle returns the heading in degrees.
func (s *Ship) Angle() float64 {
	return s.angle
}

// Facing returns the unit vector of the heading.
func (s *Ship) Facing() physics.Vector2 {
	return s.facing
}

// Nose returns the point on the hull the ship fires from.
func (s *Ship) Nose() physics.Vector2 {
	return s.Position.Add(s.facing.Scale(s.Radius))
}

func (s *Ship) setAngle(angle float64) {
	s.angle = angle
	s.facing = physics.FromAngle(angle)
}

// TurnAndThrust applies one tick of steering and thrust.
// Left and right cancel out when both are held.
func (s *Ship) TurnAndThrust(in Input) {
	var da float64
	if in.Left {
		da += s.spec.TurnRate
	}
	if in.Right {
		da -= s.spec.TurnRate
	}
	if da != 0 {
		s.setAngle(s.angle + da)
	}

	if in.Thrust {
		s.Velocity = s.Velocity.Add(s.facing.Scale(s.spec.Impulse)).ClampLength(s.spec.MaxSpeed)
	}
}

// Draw renders the ship as a triangle pointing along its heading.
func (s *Ship) Draw(ctx DrawContext) error {
	const wingAngle = 140 // degrees from the nose

	r := s.Radius
	triangle := []draw.Point{
		ctx.Project(s.Position.Add(s.facing.Scale(r))),
		ctx.Project(s.Position.Add(s.facing.Rotate(wingAngle).Scale(r * 0.7))),
		ctx.Project(s.Position.Add(s.facing.Rotate(-wingAngle).Scale(r * 0.7))),
	}
	ctx.Canvas.DrawPolygon(triangle, true)
	return nil
}
