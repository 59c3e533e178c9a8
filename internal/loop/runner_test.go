package loop

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/planetoids/internal/draw"
	"github.com/tomz197/planetoids/internal/game"
	"github.com/tomz197/planetoids/internal/object"
	"github.com/tomz197/planetoids/internal/physics"
	"github.com/tomz197/planetoids/internal/wave"
)

// syncBuffer is a bytes.Buffer safe to read while a runner writes to it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func fixedSize(w, h int) draw.TermSizeFunc {
	return func() (int, int, error) { return w, h, nil }
}

func newTestController(t *testing.T) *game.Controller {
	t.Helper()
	a := 90.0
	d := &wave.Description{
		Ship: wave.ShipDesc{Position: []float64{400, 350}, Angle: &a},
		Asteroids: []wave.AsteroidDesc{
			{Size: "large", Position: []float64{100, 100}, Direction: []float64{0, 0}},
		},
	}
	c, err := game.NewController(d, wave.DefaultConfig(), log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}
	return c
}

func TestRunner_QuitKey(t *testing.T) {
	out := &syncBuffer{}
	r := NewRunner(newTestController(t), bufio.NewReader(strings.NewReader("q")), out, Options{
		TermSizeFunc: fixedSize(80, 35),
		FrameTime:    time.Millisecond,
	})

	done := make(chan error, 1)
	go func() { done <- r.Run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after quit")
	}

	got := out.String()
	if !strings.HasPrefix(got, "\033[?25l") || !strings.HasSuffix(got, "\033[?25h") {
		t.Errorf("cursor not hidden and restored: %q", got)
	}
}

func TestRunner_StartAndCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	out := &syncBuffer{}
	ctrl := newTestController(t)
	r := NewRunner(ctrl, bufio.NewReader(pr), out, Options{
		TermSizeFunc: fixedSize(200, 80),
		FrameTime:    time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	if _, err := pw.Write([]byte("s")); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for !strings.Contains(out.String(), "Score: 0") {
		if time.Now().After(deadline) {
			cancel()
			t.Fatal("game never reached the play screen")
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() ignored cancellation")
	}

	got := out.String()
	if !strings.Contains(got, "Planetoids") {
		t.Error("title screen was never drawn")
	}
	// 200x80 is clamped to 160x70 and centered, so the border is drawn.
	if !strings.Contains(got, "┌") {
		t.Error("expected a border around the clamped render area")
	}
}

func TestRunner_DrawLabelClips(t *testing.T) {
	out := &syncBuffer{}
	r := NewRunner(newTestController(t), bufio.NewReader(strings.NewReader("")), out, Options{
		TermSizeFunc: fixedSize(10, 5),
	})
	ctx := object.DrawContext{Canvas: r.canvas, Field: r.ctrl.Field()}

	r.drawLabel(ctx, game.Label{Text: "A very long label", Pos: physics.Vector2{X: 400, Y: 350}})
	if err := r.out.Flush(); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "\033[3;1HA very lon"; got != want {
		t.Errorf("label = %q, want %q", got, want)
	}
}

func TestRunner_DrawLabelMultiline(t *testing.T) {
	out := &syncBuffer{}
	r := NewRunner(newTestController(t), bufio.NewReader(strings.NewReader("")), out, Options{
		TermSizeFunc: fixedSize(80, 35),
	})
	ctx := object.DrawContext{Canvas: r.canvas, Field: r.ctrl.Field()}

	r.drawLabel(ctx, game.Label{Text: "ab\ncdef", Pos: physics.Vector2{X: 400, Y: 350}})
	if err := r.out.Flush(); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "\033[18;40Hab\033[19;39Hcdef"; got != want {
		t.Errorf("label = %q, want %q", got, want)
	}
}
