package character

import (
	"github.com/automoto/haunt/input"
	"github.com/automoto/haunt/physics"
	"github.com/automoto/haunt/tags"
)

// patrolFrame walks in the facing direction and turns at walls and ledges.
func (c *Character) patrolFrame() input.Frame {
	dir := c.Movement.Facing()
	if c.state.Wall == dir || (c.state.Grounded && c.ledgeAhead(dir)) {
		dir = -dir
		c.Movement.SetFacing(dir)
	}
	return input.NewFrame(input.Frame{Horizontal: dir * c.patrol.SpeedFactor})
}

// ledgeAhead probes below the leading foot for anything to stand on.
func (c *Character) ledgeAhead(dir float64) bool {
	if c.space == nil || c.patrol.LedgeProbe <= 0 {
		return false
	}
	box := c.Box()
	probe := physics.Rect{X: box.Right(), Y: box.Bottom(), W: 1, H: c.patrol.LedgeProbe}
	if dir < 0 {
		probe.X = box.X - 1
	}
	return len(c.space.Overlapping(probe, tags.Surfaces...)) == 0
}

// bounceTarget relaunches on every landing. A possessed bouncer is steered
// by its possessor's axis; jump edges belong to the bounce.
func (c *Character) bounceTarget(f input.Frame, dt float64) physics.Target {
	steer := input.Neutral
	if c.Possession.IsPossessed() {
		steer = input.NewFrame(input.Frame{Horizontal: f.Horizontal})
		if f.JumpPressed {
			c.settled = false
		}
	} else {
		c.settled = false
	}

	t := c.Movement.Update(steer, dt)
	if c.state.Grounded && !c.settled {
		c.Movement.Launch(&t, c.bounce.BounceSpeed)
	}
	return t
}

// cancelBounce cuts the current rise and keeps the bouncer on the next
// ground it reaches.
func (c *Character) cancelBounce() {
	c.settled = true
	c.Movement.CancelJump()
}

// Settled reports whether a cancelled bouncer is resting.
func (c *Character) Settled() bool {
	return c.settled
}
