package desktop

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/planetoids/internal/draw"
	"github.com/tomz197/planetoids/internal/input"
)

func keySet(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, held := range keys {
			if held == k {
				return true
			}
		}
		return false
	}
}

func TestReadKeys(t *testing.T) {
	tests := []struct {
		name     string
		keys     []ebiten.Key
		expected input.Input
	}{
		{name: "none", expected: input.Input{}},
		{name: "arrows", keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowUp}, expected: input.Input{Left: true, Thrust: true}},
		{name: "wasd", keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyW}, expected: input.Input{Right: true, Thrust: true}},
		{name: "fire", keys: []ebiten.Key{ebiten.KeySpace}, expected: input.Input{Fire: true}},
		{name: "start_enter", keys: []ebiten.Key{ebiten.KeyEnter}, expected: input.Input{Start: true}},
		{name: "restart", keys: []ebiten.Key{ebiten.KeyR}, expected: input.Input{Restart: true}},
		{name: "escape", keys: []ebiten.Key{ebiten.KeyEscape}, expected: input.Input{Quit: true}},
		{name: "both_turns", keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowRight}, expected: input.Input{Left: true, Right: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := readKeys(keySet(tt.keys...))
			if got.Left != tt.expected.Left || got.Right != tt.expected.Right ||
				got.Thrust != tt.expected.Thrust || got.Fire != tt.expected.Fire ||
				got.Start != tt.expected.Start || got.Restart != tt.expected.Restart ||
				got.Quit != tt.expected.Quit {
				t.Errorf("readKeys() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSpans(t *testing.T) {
	square := []draw.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 4}, {X: 0, Y: 4}}
	got := spans(square, 0, 4)
	if len(got) != 4 {
		t.Fatalf("got %d spans, want 4: %+v", len(got), got)
	}
	for i, s := range got {
		if s.y != float64(i)+0.5 || s.x0 != 0 || s.x1 != 10 {
			t.Errorf("span %d = %+v", i, s)
		}
	}

	triangle := []draw.Point{{X: 0, Y: 0}, {X: 8, Y: 8}, {X: 0, Y: 8}}
	for _, s := range spans(triangle, 0, 8) {
		if s.x0 != 0 || s.x1 != s.y {
			t.Errorf("triangle span %+v, want [0, %v]", s, s.y)
		}
	}
}
