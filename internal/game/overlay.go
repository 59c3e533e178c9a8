package game

import (
	"fmt"

	"github.com/tomz197/planetoids/internal/physics"
)

// Label is a line of text anchored at its center, in field coordinates.
// Text may span several lines separated by '\n'.
type Label struct {
	Text string
	Pos  physics.Vector2
}

// Overlay is the text drawn over the field for the current frame.
// Title and Message have empty Text when the screen shows none.
type Overlay struct {
	Labels  []Label
	Title   Label
	Message Label
}

const (
	titleOffset   = 80  // Above the field center
	messageOffset = -40 // Below the field center
	hudMargin     = 50
)

func (c *Controller) hud() []Label {
	f := c.cfg.Field
	top := f.Height - hudMargin
	return []Label{
		{Text: fmt.Sprintf("Asteroids Left: %d", c.wave.AsteroidCount()), Pos: physics.Vector2{X: hudMargin, Y: top}},
		{Text: fmt.Sprintf("Score: %d", c.wave.Score()), Pos: physics.Vector2{X: f.Width / 2, Y: top}},
		{Text: fmt.Sprintf("Lives Left: %d", c.wave.Lives()), Pos: physics.Vector2{X: f.Width - hudMargin, Y: top}},
		{Text: fmt.Sprintf("High Score: %d", c.highScore), Pos: physics.Vector2{X: f.Width / 2, Y: hudMargin}},
	}
}

func (c *Controller) banner(title, message string) (Label, Label) {
	f := c.cfg.Field
	return Label{Text: title, Pos: physics.Vector2{X: f.Width / 2, Y: f.Height/2 + titleOffset}},
		Label{Text: message, Pos: physics.Vector2{X: f.Width / 2, Y: f.Height/2 + messageOffset}}
}

// Overlay returns the labels, title and message for the current state.
func (c *Controller) Overlay() Overlay {
	var o Overlay
	if c.wave != nil && c.state != Inactive {
		o.Labels = c.hud()
	}

	switch c.state {
	case Inactive:
		o.Title, o.Message = c.banner("Planetoids", "Press 's' to Start")
	case Paused:
		o.Title, o.Message = c.banner("Life Lost!", fmt.Sprintf("You have %d left. Press 's'", c.wave.Lives()))
	case Complete:
		if c.wave.Lives() == 0 {
			o.Title, o.Message = c.banner("Game Over!", "Press 'r' to restart")
		} else {
			o.Title, o.Message = c.banner("Congrats!", "You completed the game!\nPress 'r' to restart")
		}
	}
	return o
}
