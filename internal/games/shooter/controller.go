package shooter

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/space-arcade/internal/core"
)

// Controller drives a State: it runs the per-tick cycle and turns player
// commands into craft moves and shots.
type Controller struct {
	state  *State
	logger Logger
	tick   int
	paused bool
}

// NewController wraps state. A nil logger discards messages.
func NewController(state *State, logger Logger) *Controller {
	if logger == nil {
		logger = discardLogger
	}
	return &Controller{state: state, logger: logger}
}

// State returns the driven simulation.
func (c *Controller) State() *State {
	return c.state
}

// Tick returns the index of the last simulated tick.
func (c *Controller) Tick() int {
	return c.tick
}

// Paused reports whether ticks are currently ignored.
func (c *Controller) Paused() bool {
	return c.paused
}

// OnTick runs one simulation step: update, collisions, spawn, level-up.
// It does nothing while paused.
func (c *Controller) OnTick(tick int) {
	if c.paused {
		return
	}
	c.tick = tick
	c.state.UpdateGame(tick)
	c.state.CheckCollisions()
	c.state.SpawnObjects()
	c.state.LevelUp()
}

// Advance runs the next tick in sequence. Reports whether it ran.
func (c *Controller) Advance() bool {
	if c.paused {
		return false
	}
	c.OnTick(c.tick + 1)
	return true
}

// HandleCommand applies one player command. Boundary errors are logged,
// not returned; the craft simply stays put. While paused only the pause
// command is honored.
func (c *Controller) HandleCommand(cmd core.Command) {
	if c.paused && cmd.Action != core.ActionPause {
		return
	}

	switch cmd.Action {
	case core.ActionUp:
		c.move(core.DirUp)
	case core.ActionDown:
		c.move(core.DirDown)
	case core.ActionLeft:
		c.move(core.DirLeft)
	case core.ActionRight:
		c.move(core.DirRight)
	case core.ActionFire:
		c.state.FireBullet()
	case core.ActionPause:
		c.TogglePause()
	default:
		c.logger.Log("Invalid input. Use W, A, S, D, F, or P.")
	}
}

// TogglePause pauses or resumes the simulation.
func (c *Controller) TogglePause() {
	c.paused = !c.paused
	if c.paused {
		c.logger.Log("Game paused.")
	} else {
		c.logger.Log("Game resumed.")
	}
}

func (c *Controller) move(dir core.Direction) {
	craft := c.state.Craft()
	if craft == nil {
		c.logger.Log("No ship found in the game.")
		return
	}

	if err := craft.Move(dir); err != nil {
		var boundary *BoundaryError
		if errors.As(err, &boundary) {
			c.logger.Log(boundary.Error())
			return
		}
		c.logger.Log(err.Error())
		return
	}
	c.logger.Log(fmt.Sprintf("Ship moved to (%d, %d)", craft.X(), craft.Y()))
}
