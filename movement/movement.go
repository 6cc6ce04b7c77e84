// Package movement turns input frames into integrator targets: run, jump,
// jump-cancel and dash.
package movement

import (
	"github.com/automoto/haunt/config"
	"github.com/automoto/haunt/input"
	"github.com/automoto/haunt/notify"
	"github.com/automoto/haunt/physics"
	"github.com/automoto/haunt/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// Event tags emitted to listeners
const (
	EventJumped          notify.Tag = "jumped"
	EventJumpCancelled   notify.Tag = "jump-cancelled"
	EventDashed          notify.Tag = "dashed"
	EventDashEnded       notify.Tag = "dash-ended"
	EventGroundedChanged notify.Tag = "grounded-changed"
)

// Notification is the payload handed to listeners.
type Notification struct {
	Event    notify.Tag
	Owner    any
	Facing   float64
	Grounded bool
	Velocity dmath.Vec2
}

// Listener reacts to movement events. Animation, audio and cameras
// implement it; they never feed state back synchronously.
type Listener interface {
	OnMovement(n Notification) error
}

// Controller holds one entity's locomotion state between ticks.
type Controller struct {
	cfg   config.MovementConfig
	owner any
	hub   *notify.Hub[Listener]

	state  physics.BodyState
	facing float64

	dashEnabled  bool
	dashLeft     float64
	dashCooldown float64
	dashDir      float64

	cutPending bool
}

// New creates a controller for owner, which is passed back in every
// Notification.
func New(cfg config.MovementConfig, owner any, log *zap.Logger) *Controller {
	return &Controller{
		cfg:         cfg,
		owner:       owner,
		hub:         notify.New[Listener]("movement", log),
		facing:      config.DirectionRight,
		dashEnabled: cfg.DashEnabled,
	}
}

func (c *Controller) Subscribe(l Listener) *notify.Subscription[Listener] {
	return c.hub.Subscribe(l)
}

func (c *Controller) Unsubscribe(l Listener) bool {
	return c.hub.Unsubscribe(l)
}

func (c *Controller) Facing() float64 {
	return c.facing
}

// SetFacing turns the entity without moving it.
func (c *Controller) SetFacing(dir float64) {
	if dir != 0 {
		c.facing = gamemath.Sign(dir)
	}
}

func (c *Controller) State() physics.BodyState {
	return c.state
}

func (c *Controller) Config() config.MovementConfig {
	return c.cfg
}

// EnableDash turns dashing on or off. Disabling ends a dash in progress.
func (c *Controller) EnableDash(enabled bool) {
	c.dashEnabled = enabled
	if !enabled && c.Dashing() {
		c.endDash()
	}
}

func (c *Controller) DashEnabled() bool {
	return c.dashEnabled
}

func (c *Controller) Dashing() bool {
	return c.dashLeft > 0
}

// Observe records the integrator result of the previous Step.
func (c *Controller) Observe(st physics.BodyState) {
	was := c.state.Grounded
	c.state = st
	if was != st.Grounded {
		c.emit(EventGroundedChanged)
	}
}

// CancelJump halves a rising vertical speed on the next Update. Calling it
// more than once before that Update has no further effect.
func (c *Controller) CancelJump() bool {
	if c.cutPending || !c.state.Rising() {
		return false
	}
	c.cutPending = true
	c.emit(EventJumpCancelled)
	return true
}

// Update reads one frame and returns the target for this tick.
func (c *Controller) Update(f input.Frame, dt float64) physics.Target {
	var t physics.Target

	if c.dashCooldown > 0 {
		c.dashCooldown -= dt
	}
	if f.Horizontal != 0 {
		c.facing = gamemath.Sign(f.Horizontal)
	}
	t.Velocity.X = f.Horizontal * c.cfg.MaxSpeed

	if c.Dashing() && f.DashReleased {
		c.endDash()
	}
	if f.DashPressed && !c.Dashing() && c.dashEnabled && c.dashCooldown <= 0 && c.cfg.DashDuration > 0 {
		c.dashLeft = c.cfg.DashDuration
		c.dashDir = c.facing
		c.emit(EventDashed)
	}

	if f.JumpPressed && c.state.Grounded {
		if f.Down() && c.state.Ground != nil && c.state.Ground.OneWay() {
			t.DropThrough = true
		} else {
			t.Launch = c.cfg.JumpSpeed
			if c.Dashing() {
				c.endDash()
			}
			c.emit(EventJumped)
		}
	}

	if f.JumpReleased {
		c.CancelJump()
	}
	if c.cutPending {
		t.CutRise = c.cfg.JumpCancelFactor
		c.cutPending = false
	}

	if c.Dashing() {
		t.Override = true
		t.Velocity = dmath.Vec2{X: c.dashDir * c.cfg.DashSpeed}
		c.dashLeft -= dt
		if c.dashLeft <= 0 {
			c.endDash()
		}
	}
	return t
}

// Launch forces a jump regardless of ground state, as a bounce does.
func (c *Controller) Launch(t *physics.Target, speed float64) {
	t.Launch = speed
	c.emit(EventJumped)
}

func (c *Controller) endDash() {
	c.dashLeft = 0
	c.dashCooldown = c.cfg.DashCooldown
	c.emit(EventDashEnded)
}

func (c *Controller) emit(tag notify.Tag) {
	n := Notification{
		Event:    tag,
		Owner:    c.owner,
		Facing:   c.facing,
		Grounded: c.state.Grounded,
		Velocity: dmath.Vec2{X: c.state.VX, Y: c.state.VY},
	}
	c.hub.Emit(tag, func(l Listener) error { return l.OnMovement(n) })
}
