// Package desktop runs a game in a window through ebiten.
package desktop

import (
	"image/color"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/tomz197/planetoids/internal/config"
	"github.com/tomz197/planetoids/internal/game"
	"github.com/tomz197/planetoids/internal/input"
	"github.com/tomz197/planetoids/internal/object"
)

// Debug font cell size used by ebitenutil.DebugPrintAt.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

var background = color.RGBA{10, 10, 24, 255}

// Game adapts a controller to ebiten.Game.
type Game struct {
	ctrl    *game.Controller
	logger  *log.Logger
	pressed func(ebiten.Key) bool
}

// New creates the window adapter. A nil logger discards output.
func New(ctrl *game.Controller, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{ctrl: ctrl, logger: logger, pressed: ebiten.IsKeyPressed}
}

// Update advances one tick. Ebiten calls it TPS times per second.
func (g *Game) Update() error {
	in := readKeys(g.pressed)
	if in.Quit {
		return ebiten.Termination
	}
	return g.ctrl.Update(time.Second/time.Duration(ebiten.TPS()), in)
}

// Draw renders the bodies and the overlay text.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	ctx := object.DrawContext{Canvas: newScreenCanvas(screen), Field: g.ctrl.Field()}
	if err := g.ctrl.Draw(ctx); err != nil {
		g.logger.Error("draw", "err", err)
	}

	o := g.ctrl.Overlay()
	for _, l := range o.Labels {
		printLabel(screen, ctx, l)
	}
	printLabel(screen, ctx, o.Title)
	printLabel(screen, ctx, o.Message)
}

// Layout keeps the logical screen at the field size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	f := g.ctrl.Field()
	return int(f.Width), int(f.Height)
}

func printLabel(screen *ebiten.Image, ctx object.DrawContext, l game.Label) {
	if l.Text == "" {
		return
	}
	p := ctx.Project(l.Pos)
	lines := strings.Split(l.Text, "\n")
	top := int(p.Y) - len(lines)*glyphHeight/2
	for i, line := range lines {
		line = strings.TrimSpace(line)
		x := int(p.X) - len(line)*glyphWidth/2
		ebitenutil.DebugPrintAt(screen, line, x, top+i*glyphHeight)
	}
}

// keyBindings maps each control to the keys that trigger it.
var keyBindings = []struct {
	keys []ebiten.Key
	set  func(*input.Input)
}{
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, func(in *input.Input) { in.Left = true }},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, func(in *input.Input) { in.Right = true }},
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, func(in *input.Input) { in.Thrust = true }},
	{[]ebiten.Key{ebiten.KeySpace}, func(in *input.Input) { in.Fire = true }},
	{[]ebiten.Key{ebiten.KeyS, ebiten.KeyEnter}, func(in *input.Input) { in.Start = true }},
	{[]ebiten.Key{ebiten.KeyR}, func(in *input.Input) { in.Restart = true }},
	{[]ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}, func(in *input.Input) { in.Quit = true }},
}

// readKeys samples the keyboard into level-triggered input.
func readKeys(pressed func(ebiten.Key) bool) input.Input {
	var in input.Input
	for _, b := range keyBindings {
		for _, k := range b.keys {
			if pressed(k) {
				b.set(&in)
				break
			}
		}
	}
	return in
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(ctrl *game.Controller, logger *log.Logger) error {
	f := ctrl.Field()
	ebiten.SetWindowSize(int(f.Width), int(f.Height))
	ebiten.SetWindowTitle("Planetoids")
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(config.TargetFPS)
	return ebiten.RunGame(New(ctrl, logger))
}
