// Package physics provides vector math, collision tests and broad-phase lookup.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Vector2) float64 {
	return math.Sqrt(DistanceSquared(a, b))
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b Vector2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// CirclesOverlap reports whether two circles overlap. Circles that only touch
// (center distance equal to the radius sum) do not overlap.
func CirclesOverlap(c1 Vector2, r1 float64, c2 Vector2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(c1, c2) < minDist*minDist
}
