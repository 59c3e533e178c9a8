// Package wave runs the simulation of a single wave: one ship, its bullets and
// a field of asteroids that split when shot.
package wave

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/tomz197/planetoids/internal/object"
	"github.com/tomz197/planetoids/internal/physics"
)

// ErrInvalidDescription is wrapped by every error caused by a malformed wave description.
var ErrInvalidDescription = errors.New("invalid wave description")

//go:embed waves/*.json
var builtinWaves embed.FS

// DefaultWave names the built-in wave used when no file is configured.
const DefaultWave = "default"

// Description is the JSON layout of a wave file.
type Description struct {
	Ship      ShipDesc       `json:"ship"`
	Asteroids []AsteroidDesc `json:"asteroids"`
}

// ShipDesc places the ship. Angle is in degrees, counter-clockwise from +x.
type ShipDesc struct {
	Position []float64 `json:"position"`
	Angle    *float64  `json:"angle"`
}

// AsteroidDesc places one asteroid. A zero direction leaves it stationary.
type AsteroidDesc struct {
	Size      string    `json:"size"`
	Position  []float64 `json:"position"`
	Direction []float64 `json:"direction"`
}

// Parse decodes and validates a description. Unknown fields are rejected.
func Parse(r io.Reader) (*Description, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var d Description
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDescription, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Load parses the wave file at path.
func Load(path string) (*Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wave: %w", err)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// LoadBuiltin parses one of the waves compiled into the binary.
func LoadBuiltin(name string) (*Description, error) {
	f, err := builtinWaves.Open("waves/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("builtin wave %q: %w", name, err)
	}
	defer f.Close()
	return Parse(f)
}

// LoadOrDefault loads the wave at path, or the built-in default wave when
// path is empty.
func LoadOrDefault(path string) (*Description, error) {
	if path == "" {
		return LoadBuiltin(DefaultWave)
	}
	return Load(path)
}

// Validate checks every field, naming the first offending one in the error.
func (d *Description) Validate() error {
	if _, err := vec("ship.position", d.Ship.Position); err != nil {
		return err
	}
	if d.Ship.Angle == nil {
		return invalid("ship.angle", "missing")
	}
	if !finite(*d.Ship.Angle) {
		return invalid("ship.angle", "not a finite number")
	}
	for i, a := range d.Asteroids {
		field := fmt.Sprintf("asteroids[%d]", i)
		if _, err := object.ParseSize(a.Size); err != nil {
			return fmt.Errorf("%w: %s.size: %w", ErrInvalidDescription, field, err)
		}
		if _, err := vec(field+".position", a.Position); err != nil {
			return err
		}
		if _, err := vec(field+".direction", a.Direction); err != nil {
			return err
		}
	}
	return nil
}

func invalid(field, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidDescription, field, reason)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func vec(field string, v []float64) (physics.Vector2, error) {
	if len(v) != 2 {
		return physics.Vector2{}, invalid(field, fmt.Sprintf("want 2 numbers, got %d", len(v)))
	}
	if !finite(v[0]) || !finite(v[1]) {
		return physics.Vector2{}, invalid(field, "not a finite number")
	}
	return physics.Vector2{X: v[0], Y: v[1]}, nil
}

// shipStart returns the validated spawn point and heading.
func (d *Description) shipStart() (physics.Vector2, float64) {
	p, _ := vec("", d.Ship.Position)
	return p, *d.Ship.Angle
}
