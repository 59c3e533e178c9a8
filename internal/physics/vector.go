package physics

import "math"

// Vector2 is a 2D vector. Angles taken or returned by its helpers are in degrees.
type Vector2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Length returns the magnitude of v.
func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector pointing along v.
// The zero vector normalizes to itself.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if l == 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / l, Y: v.Y / l}
}

// ClampLength rescales v to max if it is longer than max.
func (v Vector2) ClampLength(max float64) Vector2 {
	if l := v.Length(); l > max && l > 0 {
		return v.Scale(max / l)
	}
	return v
}

// Rotate turns v counter-clockwise by deg degrees.
func (v Vector2) Rotate(deg float64) Vector2 {
	sin, cos := math.Sincos(Radians(deg))
	return Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// FromAngle returns the unit vector for a heading in degrees.
func FromAngle(deg float64) Vector2 {
	sin, cos := math.Sincos(Radians(deg))
	return Vector2{X: cos, Y: sin}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
