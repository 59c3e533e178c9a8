package object

import (
	"errors"
	"fmt"

	"github.com/tomz197/planetoids/internal/draw"
	"github.com/tomz197/planetoids/internal/physics"
)

// Size is the size class of an asteroid.
type Size int

const (
	Small  Size = 1
	Medium Size = 2
	Large  Size = 3
)

// ErrUnknownSize is returned when a size name is not small, medium or large.
var ErrUnknownSize = errors.New("unknown asteroid size")

// ParseSize converts a wave file size name into a Size.
func ParseSize(name string) (Size, error) {
	switch name {
	case "small":
		return Small, nil
	case "medium":
		return Medium, nil
	case "large":
		return Large, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSize, name)
}

func (s Size) String() string {
	switch s {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	}
	return fmt.Sprintf("Size(%d)", int(s))
}

// Valid reports whether s is one of the three size classes.
func (s Size) Valid() bool {
	return s >= Small && s <= Large
}

// Smaller returns the next size class down. Small asteroids have none.
func (s Size) Smaller() (Size, bool) {
	if s <= Small || !s.Valid() {
		return 0, false
	}
	return s - 1, true
}

// SizeSpec fixes the radius and speed of one size class.
type SizeSpec struct {
	Radius float64
	Speed  float64
}

// SizeTable maps each size class to its SizeSpec. It is a value type: copies
// handed to asteroids and waves can never alias or mutate each other.
type SizeTable [3]SizeSpec

// NewSizeTable builds a table from per-size specs.
func NewSizeTable(small, medium, large SizeSpec) SizeTable {
	return SizeTable{small, medium, large}
}

// Spec returns the spec for size s. Unknown sizes get the zero spec.
func (t SizeTable) Spec(s Size) SizeSpec {
	if !s.Valid() {
		return SizeSpec{}
	}
	return t[s-1]
}

// Asteroid is a drifting space rock.
type Asteroid struct {
	Body
	Size Size
}

// NewAsteroid creates an asteroid of the given size at pos heading along dir.
// The size's speed is applied to the normalized direction; a zero direction
// yields a stationary asteroid.
func NewAsteroid(size Size, pos, dir physics.Vector2, table SizeTable) *Asteroid {
	spec := table.Spec(size)
	return &Asteroid{
		Body: Body{
			Position: pos,
			Velocity: dir.Normalize().Scale(spec.Speed),
			Radius:   spec.Radius,
		},
		Size: size,
	}
}

// outline gives the vertex distances, as a fraction of the radius, of the
// irregular polygon asteroids are drawn with.
var outline = [...]float64{1, 0.85, 0.95, 0.8, 1, 0.9, 0.75, 1, 0.9, 0.85}

// Draw renders the asteroid as an irregular polygon.
func (a *Asteroid) Draw(ctx DrawContext) error {
	points := make([]draw.Point, len(outline))
	step := 360.0 / float64(len(outline))
	// Offset by size so the three classes do not look like scaled copies.
	base := float64(a.Size) * 17
	for i, f := range outline {
		v := physics.FromAngle(base + float64(i)*step).Scale(a.Radius * f)
		points[i] = ctx.Project(a.Position.Add(v))
	}
	ctx.Canvas.DrawPolygon(points, false)
	return nil
}
