// Package loop runs a game in a terminal: it reads keys, advances the
// controller at a fixed frame rate and draws each frame with ANSI sequences.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/planetoids/internal/config"
	"github.com/tomz197/planetoids/internal/draw"
	"github.com/tomz197/planetoids/internal/game"
	"github.com/tomz197/planetoids/internal/input"
	"github.com/tomz197/planetoids/internal/object"
)

// Options configures a Runner. Zero values select the defaults.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Logger       *log.Logger
	FrameTime    time.Duration
}

// Runner owns one terminal session: its input stream, canvas and controller.
type Runner struct {
	ctrl      *game.Controller
	stream    *input.Stream
	writer    io.Writer
	canvas    *draw.Canvas
	out       *draw.ChunkWriter
	termSize  draw.TermSizeFunc
	logger    *log.Logger
	frameTime time.Duration

	layout    draw.Layout
	lastState game.State
}

// NewRunner creates a runner reading keys from r and drawing to w.
func NewRunner(ctrl *game.Controller, r *bufio.Reader, w io.Writer, opts Options) *Runner {
	termSize := opts.TermSizeFunc
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	frameTime := opts.FrameTime
	if frameTime <= 0 {
		frameTime = config.TargetFrameTime
	}

	f := ctrl.Field()
	width, height, err := termSize()
	if err != nil {
		logger.Warn("terminal size unavailable", "err", err)
	}
	layout := draw.FitTerminal(width, height, config.MaxTermWidth, config.MaxTermHeight)
	canvas := draw.NewCanvas(layout.Cols, layout.Rows, f.Width, f.Height)
	canvas.SetOffset(layout.OffsetCol, layout.OffsetRow)

	return &Runner{
		ctrl:      ctrl,
		stream:    input.StartStream(r),
		writer:    w,
		canvas:    canvas,
		out:       draw.NewChunkWriter(w, layout.OffsetCol, layout.OffsetRow),
		termSize:  termSize,
		logger:    logger,
		frameTime: frameTime,
		layout:    layout,
		lastState: ctrl.State(),
	}
}

// Run plays until the player quits, the input ends or ctx is cancelled.
// Quitting returns nil; cancellation returns ctx.Err().
func (r *Runner) Run(ctx context.Context) error {
	draw.HideCursor(r.writer)
	defer draw.ShowCursor(r.writer)
	draw.ClearScreen(r.writer)

	ticker := time.NewTicker(r.frameTime)
	defer ticker.Stop()

	last := time.Now()
	for {
		now := time.Now()
		dt := now.Sub(last)
		last = now

		in := input.ReadInput(r.stream)
		if in.Quit {
			draw.ClearScreen(r.writer)
			return nil
		}

		r.updateScreen()

		if err := r.ctrl.Update(dt, in); err != nil {
			return err
		}
		if s := r.ctrl.State(); s != r.lastState {
			input.ResetKeyInput(r.stream)
			r.lastState = s
		}

		if err := r.drawFrame(); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		select {
		case <-ctx.Done():
			draw.ClearScreen(r.writer)
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// updateScreen follows terminal resizes, clamped to the maximum render size.
func (r *Runner) updateScreen() {
	width, height, err := r.termSize()
	if err != nil {
		return
	}
	layout := draw.FitTerminal(width, height, config.MaxTermWidth, config.MaxTermHeight)
	if layout == r.layout {
		return
	}
	r.logger.Debug("terminal resized", "cols", layout.Cols, "rows", layout.Rows)
	r.layout = layout
	r.canvas.Resize(layout.Cols, layout.Rows)
	r.canvas.SetOffset(layout.OffsetCol, layout.OffsetRow)
	r.out.SetOffset(layout.OffsetCol, layout.OffsetRow)
}

func (r *Runner) drawFrame() error {
	// Clear outside the offset so stale border or text from a larger layout goes too.
	r.out.WriteString("\033[H\033[2J")
	r.canvas.Clear()

	ctx := object.DrawContext{Canvas: r.canvas, Field: r.ctrl.Field()}
	if err := r.ctrl.Draw(ctx); err != nil {
		return err
	}
	if err := r.canvas.Render(r.out); err != nil {
		return err
	}
	if err := r.canvas.RenderBorder(r.out); err != nil {
		return err
	}

	o := r.ctrl.Overlay()
	for _, l := range o.Labels {
		r.drawLabel(ctx, l)
	}
	r.drawLabel(ctx, o.Title)
	r.drawLabel(ctx, o.Message)

	return r.out.Flush()
}

// drawLabel writes a centered, possibly multi-line label, clipped to the render area.
func (r *Runner) drawLabel(ctx object.DrawContext, l game.Label) {
	if l.Text == "" {
		return
	}
	p := ctx.Project(l.Pos)
	col, row := r.canvas.LogicalToTerminal(p.X, p.Y)
	cols, rows := r.canvas.Cols(), r.canvas.Rows()

	for i, line := range strings.Split(l.Text, "\n") {
		y := row + i
		if y < 1 || y > rows {
			continue
		}
		line = strings.TrimSpace(line)
		if len(line) > cols {
			line = line[:cols]
		}
		x := col - len(line)/2
		x = max(1, min(x, cols-len(line)+1))
		r.out.WriteAt(x, y, line)
	}
}
