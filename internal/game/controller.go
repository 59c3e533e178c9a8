package game

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/planetoids/internal/input"
	"github.com/tomz197/planetoids/internal/object"
	"github.com/tomz197/planetoids/internal/wave"
)

// Controller owns the current wave and the screen around it. It is driven by
// a single frame loop and is not safe for concurrent use.
type Controller struct {
	desc      *wave.Description
	cfg       wave.Config
	logger    *log.Logger
	state     State
	wave      *wave.Wave
	prev      input.Input
	highScore int
}

// NewController creates a controller on the title screen. Every new game
// plays desc with cfg. A nil logger discards output.
func NewController(desc *wave.Description, cfg wave.Config, logger *log.Logger) (*Controller, error) {
	if desc == nil {
		return nil, fmt.Errorf("%w: nil description", wave.ErrInvalidDescription)
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{desc: desc, cfg: cfg, logger: logger, state: Inactive}, nil
}

// State returns the current screen.
func (c *Controller) State() State { return c.state }

// HighScore returns the best score of the games finished so far.
func (c *Controller) HighScore() int { return c.highScore }

// Field returns the play field.
func (c *Controller) Field() object.Field { return c.cfg.Field }

// Update advances one frame. Start and Restart trigger on the frame they are
// first pressed; holding them does nothing more.
func (c *Controller) Update(dt time.Duration, in input.Input) error {
	start := in.Start && !c.prev.Start
	restart := in.Restart && !c.prev.Restart
	c.prev = in

	switch c.state {
	case Inactive:
		if start {
			c.transition(Loading)
		}
	case Paused:
		if start {
			c.transition(Continue)
		}
	case Complete:
		if restart {
			if s := c.wave.Score(); s > c.highScore {
				c.highScore = s
				c.logger.Info("new high score", "score", s)
			}
			c.transition(Loading)
		}
	}

	if c.state == Loading {
		w, err := wave.New(c.desc, c.cfg, wave.WithLogger(c.logger))
		if err != nil {
			return fmt.Errorf("load wave: %w", err)
		}
		c.wave = w
		c.transition(Active)
	}

	if c.state == Continue {
		c.wave.ResetShip()
		c.transition(Active)
	}

	if c.state == Active {
		c.wave.Update(dt, in)
		switch {
		case c.wave.Complete():
			c.logger.Info("wave complete", "status", c.wave.Status(), "score", c.wave.Score(), "ticks", c.wave.Ticks())
			c.transition(Complete)
		case c.wave.JustHit():
			c.transition(Paused)
		}
	}
	return nil
}

func (c *Controller) transition(to State) {
	if !CanTransition(c.state, to) {
		c.logger.Error("illegal state transition", "from", c.state, "to", to)
		return
	}
	c.logger.Debug("state", "from", c.state, "to", to)
	c.state = to
}

// Draw renders the wave's bodies. The title screen draws nothing.
func (c *Controller) Draw(ctx object.DrawContext) error {
	if c.wave == nil || c.state == Inactive {
		return nil
	}
	return c.wave.Draw(ctx)
}
