package movement

import (
	"errors"
	"testing"

	"github.com/automoto/haunt/collision"
	"github.com/automoto/haunt/config"
	"github.com/automoto/haunt/input"
	"github.com/automoto/haunt/notify"
	"github.com/automoto/haunt/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

const dt = 1.0 / 60

type recorder struct {
	events []notify.Tag
	last   Notification
}

func (r *recorder) OnMovement(n Notification) error {
	r.events = append(r.events, n.Event)
	r.last = n
	return nil
}

type failing struct{}

func (failing) OnMovement(Notification) error { return errors.New("nope") }

type ledge struct{ oneWay bool }

func (ledge) Displacement() dmath.Vec2 { return dmath.Vec2{} }
func (ledge) Bounds() physics.Rect     { return physics.Rect{W: 64, H: 8} }
func (l ledge) OneWay() bool           { return l.oneWay }

func grounded(on physics.Surface) physics.BodyState {
	return physics.BodyState{Body: physics.Body{Grounded: true, Ground: on, GroundNormal: physics.Up}}
}

func rising(vy float64) physics.BodyState {
	return physics.BodyState{Body: physics.Body{VY: vy}}
}

func newController(mod func(*config.MovementConfig)) (*Controller, *recorder) {
	cfg := config.DefaultTuning().Player.Movement
	if mod != nil {
		mod(&cfg)
	}
	c := New(cfg, "player", nil)
	r := &recorder{}
	c.Subscribe(r)
	return c, r
}

func TestRunFollowsAxis(t *testing.T) {
	c, _ := newController(nil)
	c.Observe(grounded(ledge{}))

	tgt := c.Update(input.NewFrame(input.Frame{Horizontal: -0.5}), dt)
	assert.InDelta(t, -180, tgt.Velocity.X, 1e-9)
	assert.Equal(t, config.DirectionLeft, c.Facing())

	tgt = c.Update(input.Neutral, dt)
	assert.Zero(t, tgt.Velocity.X)
	assert.Equal(t, config.DirectionLeft, c.Facing(), "facing is kept without input")
}

func TestJumpNeedsGroundAndEdge(t *testing.T) {
	c, r := newController(nil)

	tgt := c.Update(input.Frame{JumpPressed: true}, dt)
	assert.Zero(t, tgt.Launch, "airborne")

	c.Observe(grounded(ledge{}))
	tgt = c.Update(input.Frame{}, dt)
	assert.Zero(t, tgt.Launch, "held without edge")

	tgt = c.Update(input.Frame{JumpPressed: true}, dt)
	assert.Equal(t, c.Config().JumpSpeed, tgt.Launch)
	assert.Equal(t, []notify.Tag{EventGroundedChanged, EventJumped}, r.events)
	assert.Equal(t, "player", r.last.Owner)
}

func TestDropThroughOneWay(t *testing.T) {
	c, r := newController(nil)
	down := input.Frame{Vertical: -1, JumpPressed: true}

	c.Observe(grounded(ledge{oneWay: true}))
	tgt := c.Update(down, dt)
	assert.True(t, tgt.DropThrough)
	assert.Zero(t, tgt.Launch)
	assert.NotContains(t, r.events, EventJumped)

	c.Observe(grounded(ledge{}))
	tgt = c.Update(down, dt)
	assert.False(t, tgt.DropThrough, "solid ground jumps instead")
	assert.Positive(t, tgt.Launch)
}

func TestJumpCancel(t *testing.T) {
	t.Run("only while rising", func(t *testing.T) {
		c, r := newController(nil)
		c.Observe(rising(200))
		tgt := c.Update(input.Frame{JumpReleased: true}, dt)
		assert.Zero(t, tgt.CutRise)
		assert.Empty(t, r.events)
	})

	t.Run("twice in a tick counts once", func(t *testing.T) {
		c, r := newController(nil)
		c.Observe(rising(-600))
		assert.True(t, c.CancelJump())
		assert.False(t, c.CancelJump())

		tgt := c.Update(input.Frame{JumpReleased: true}, dt)
		assert.Equal(t, 0.5, tgt.CutRise)
		assert.Equal(t, []notify.Tag{EventJumpCancelled}, r.events)

		tgt = c.Update(input.Neutral, dt)
		assert.Zero(t, tgt.CutRise, "consumed")
	})
}

func TestJumpCancelHalvesOnce(t *testing.T) {
	tn := config.DefaultTuning()
	space := collision.NewSpace(320, 240, tn.Physics.CellSize, tn.Filters, tn.Physics)
	space.AddSolid(physics.Rect{X: 0, Y: 200, W: 320, H: 16})
	body := physics.NewIntegrator(space, physics.Shape{Width: 16, Height: 40}, dmath.Vec2{X: 100, Y: 160}, tn.Physics, tn.Player.Movement)
	c := New(tn.Player.Movement, nil, nil)

	c.Observe(body.Step(dt, physics.Target{}))
	c.Observe(body.Step(dt, c.Update(input.Frame{JumpPressed: true}, dt)))
	c.Observe(body.Step(dt, c.Update(input.Neutral, dt)))
	before := c.State().VY
	require.Negative(t, before)

	c.CancelJump()
	st := body.Step(dt, c.Update(input.Frame{JumpReleased: true}, dt))
	gravity := tn.Physics.Gravity * dt
	assert.InDelta(t, before*0.5+gravity, st.VY, 1e-9)
}

func TestDash(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		c, r := newController(nil)
		tgt := c.Update(input.Frame{DashPressed: true}, dt)
		assert.False(t, tgt.Override)
		assert.False(t, c.Dashing())
		assert.Empty(t, r.events)
	})

	t.Run("runs for its duration then cools down", func(t *testing.T) {
		c, r := newController(nil)
		c.EnableDash(true)
		c.SetFacing(config.DirectionLeft)

		tgt := c.Update(input.Frame{DashPressed: true}, dt)
		require.True(t, tgt.Override)
		assert.Equal(t, dmath.Vec2{X: -c.Config().DashSpeed}, tgt.Velocity)
		assert.Equal(t, []notify.Tag{EventDashed}, r.events)

		ticks := 1
		for c.Dashing() {
			tgt = c.Update(input.Neutral, dt)
			assert.True(t, tgt.Override)
			ticks++
			require.Less(t, ticks, 100)
		}
		assert.InDelta(t, 9, ticks, 1) // 0.15s at 60Hz
		assert.Equal(t, EventDashEnded, r.events[len(r.events)-1])

		tgt = c.Update(input.Frame{DashPressed: true}, dt)
		assert.False(t, tgt.Override, "cooling down")

		for i := 0; i < 30; i++ {
			c.Update(input.Neutral, dt)
		}
		tgt = c.Update(input.Frame{DashPressed: true}, dt)
		assert.True(t, tgt.Override)
	})

	t.Run("release cancels", func(t *testing.T) {
		c, _ := newController(func(m *config.MovementConfig) { m.DashEnabled = true })
		c.Update(input.Frame{DashPressed: true}, dt)
		require.True(t, c.Dashing())

		tgt := c.Update(input.Frame{DashReleased: true}, dt)
		assert.False(t, tgt.Override)
		assert.False(t, c.Dashing())
	})

	t.Run("disabling ends the dash", func(t *testing.T) {
		c, _ := newController(func(m *config.MovementConfig) { m.DashEnabled = true })
		c.Update(input.Frame{DashPressed: true}, dt)
		c.EnableDash(false)
		assert.False(t, c.Dashing())
		assert.False(t, c.DashEnabled())
	})

	t.Run("jump ends the dash", func(t *testing.T) {
		c, _ := newController(func(m *config.MovementConfig) { m.DashEnabled = true })
		c.Observe(grounded(ledge{}))
		c.Update(input.Frame{DashPressed: true}, dt)

		tgt := c.Update(input.Frame{JumpPressed: true}, dt)
		assert.False(t, tgt.Override)
		assert.Positive(t, tgt.Launch)
	})
}

func TestGroundedChangedOnlyOnChange(t *testing.T) {
	c, r := newController(nil)
	c.Observe(physics.BodyState{})
	c.Observe(grounded(ledge{}))
	c.Observe(grounded(ledge{}))
	c.Observe(physics.BodyState{})

	assert.Equal(t, []notify.Tag{EventGroundedChanged, EventGroundedChanged}, r.events)
	assert.False(t, r.last.Grounded)
}

func TestListenerFailureDoesNotStopOthers(t *testing.T) {
	c := New(config.Player.Movement, nil, nil)
	c.Subscribe(failing{})
	r := &recorder{}
	c.Subscribe(r)

	c.Observe(grounded(ledge{}))
	c.Update(input.Frame{JumpPressed: true}, dt)
	assert.Equal(t, []notify.Tag{EventGroundedChanged, EventJumped}, r.events)

	assert.True(t, c.Unsubscribe(r))
	c.Observe(physics.BodyState{})
	assert.Len(t, r.events, 2)
}
