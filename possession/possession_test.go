package possession

import (
	"testing"

	"github.com/automoto/haunt/input"
	"github.com/automoto/haunt/notify"
	"github.com/automoto/haunt/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type body struct {
	active bool
	box    physics.Rect
	vx     float64
	facing float64
}

func (b *body) Active() bool          { return b.active }
func (b *body) SetActive(active bool) { b.active = active }
func (b *body) Box() physics.Rect     { return b.box }
func (b *body) VelocityX() float64    { return b.vx }

func (b *body) Place(pos dmath.Vec2, facing float64) {
	b.box.X, b.box.Y = pos.X, pos.Y
	b.facing = facing
}

type crowd int

func (c *crowd) Overlap(physics.Rect, string) int { return int(*c) }

type recorder struct {
	events []Event
}

func (r *recorder) OnPossession(e Event) error {
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) tags() []notify.Tag {
	var out []notify.Tag
	for _, e := range r.events {
		out = append(out, e.Tag)
	}
	return out
}

type fixture struct {
	ghost, walker     *Controller
	ghostBody, wBody  *body
	ghostLog, walkLog *recorder
	blocked           crowd
}

func newFixture() *fixture {
	f := &fixture{
		ghostBody: &body{active: true, box: physics.Rect{X: 0, Y: 160, W: 16, H: 40}},
		wBody:     &body{active: true, box: physics.Rect{X: 100, Y: 168, W: 16, H: 32}},
		ghostLog:  &recorder{},
		walkLog:   &recorder{},
	}
	f.ghost = New(Options{Owner: "ghost", Seeker: true, Avatar: f.ghostBody})
	f.walker = New(Options{
		Owner:       "walker",
		Possessable: true,
		Respawn:     &RespawnPoint{Offset: dmath.Vec2{X: -20}},
		Space:       &f.blocked,
		Avatar:      f.wBody,
	})
	f.ghost.Subscribe(f.ghostLog)
	f.walker.Subscribe(f.walkLog)
	return f
}

func TestFacingFor(t *testing.T) {
	assert.Equal(t, FacingLeft, FacingFor(-3))
	assert.Equal(t, FacingRight, FacingFor(2))
	assert.Equal(t, FacingRight, FacingFor(0))
}

func TestSeekAndTakePossession(t *testing.T) {
	f := newFixture()

	assert.False(t, f.ghost.TakePossession(f.walker), "not seeking")
	assert.Equal(t, Idle, f.walker.State())

	f.ghost.HandleInput(input.Frame{PossessPressed: true})
	require.True(t, f.ghost.SeekMode())

	require.True(t, f.ghost.TakePossession(f.walker))
	assert.Equal(t, Possessed, f.walker.State())
	assert.Equal(t, Possessing, f.ghost.State())
	assert.Same(t, f.ghost, f.walker.Possessor())
	assert.Same(t, f.walker, f.ghost.Target())
	assert.False(t, f.ghostBody.active)
	assert.False(t, f.ghost.SeekMode())

	require.Len(t, f.walkLog.events, 1)
	e := f.walkLog.events[0]
	assert.Equal(t, EventPossessed, e.Tag)
	assert.Same(t, f.walker, e.Target)
	assert.Same(t, f.ghost, e.Possessor)
	assert.Equal(t, []notify.Tag{EventSeekModeChanged, EventSeekModeChanged}, f.ghostLog.tags())
}

func TestSecondPossessIsRejected(t *testing.T) {
	f := newFixture()
	other := New(Options{Owner: "other", Avatar: &body{active: true, box: physics.Rect{W: 16, H: 40}}})

	require.True(t, f.walker.Possess(f.ghost))
	assert.False(t, f.walker.Possess(other))
	assert.False(t, f.walker.Possess(f.ghost))
	assert.Same(t, f.ghost, f.walker.Possessor())
	assert.Equal(t, Idle, other.State())
	assert.Len(t, f.walkLog.events, 1)

	second := New(Options{Possessable: true, Respawn: &RespawnPoint{}, Avatar: &body{active: true}})
	assert.False(t, second.Possess(f.ghost), "possessor already holds an edge")
	assert.Same(t, f.walker, f.ghost.Target())
}

func TestPossessRejections(t *testing.T) {
	f := newFixture()
	assert.False(t, f.walker.Possess(nil))
	assert.False(t, f.walker.Possess(f.walker))
	assert.False(t, f.ghost.Possess(f.walker), "ghost is not possessable")

	f.walker.SetPossessable(false)
	assert.False(t, f.walker.Possess(f.ghost))
	f.walker.SetPossessable(true)
	assert.True(t, f.walker.Possess(f.ghost))
}

func TestRoundTrip(t *testing.T) {
	f := newFixture()
	require.True(t, f.walker.Possess(f.ghost))
	f.wBody.vx = -3

	released := f.walker.Unpossess(UnpossessOptions{})
	require.Same(t, f.ghost, released)

	assert.Equal(t, Idle, f.walker.State())
	assert.Equal(t, Idle, f.ghost.State())
	assert.Nil(t, f.walker.Possessor())
	assert.Nil(t, f.ghost.Target())
	assert.True(t, f.ghostBody.active)

	// Feet 20px left of the walker's feet, centered
	assert.Equal(t, physics.Rect{X: 80, Y: 160, W: 16, H: 40}, f.ghostBody.box)
	assert.Equal(t, FacingLeft, f.ghostBody.facing)

	require.Equal(t, []notify.Tag{EventPossessed, EventUnpossessed}, f.walkLog.tags())
	assert.Equal(t, FacingLeft, f.walkLog.events[1].Facing)
	assert.Same(t, f.ghost, f.walkLog.events[1].Possessor)

	assert.Nil(t, f.walker.Unpossess(UnpossessOptions{}), "already idle")
}

func TestUnpossessOptions(t *testing.T) {
	t.Run("centered", func(t *testing.T) {
		f := newFixture()
		f.walker.Possess(f.ghost)
		f.walker.Unpossess(UnpossessOptions{CenterCollider: true})
		assert.Equal(t, 180.0, f.ghostBody.box.Y)
		assert.Equal(t, FacingRight, f.ghostBody.facing)
	})

	t.Run("forced ignores crowding", func(t *testing.T) {
		f := newFixture()
		f.walker.Possess(f.ghost)
		f.blocked = 2
		at := dmath.Vec2{X: 40, Y: 100}
		require.NotNil(t, f.walker.Unpossess(UnpossessOptions{ForceRespawn: &at}))
		assert.Equal(t, physics.Rect{X: 32, Y: 60, W: 16, H: 40}, f.ghostBody.box)
	})
}

func TestUnpossessRejectedWithoutSpace(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	f := newFixture()
	f.walker = New(Options{
		Possessable: true,
		Respawn:     &RespawnPoint{},
		Space:       &f.blocked,
		Avatar:      f.wBody,
		Logger:      zap.New(core),
	})
	f.walker.Subscribe(f.walkLog)
	require.True(t, f.walker.Possess(f.ghost))

	f.blocked = 1
	assert.False(t, f.walker.HasSpaceToUnpossess())
	f.walker.HandleInput(input.Frame{PossessPressed: true})
	assert.Nil(t, f.walker.Unpossess(UnpossessOptions{}))
	assert.Equal(t, Possessed, f.walker.State())
	assert.Same(t, f.walker, f.ghost.Target())
	assert.NotContains(t, f.walkLog.tags(), EventUnpossessed)
	assert.Equal(t, 3, logs.FilterMessage("no space to unpossess").Len())

	// Same stimulus, later tick
	f.blocked = 0
	f.walker.HandleInput(input.Frame{PossessPressed: true})
	assert.Equal(t, Idle, f.walker.State())
}

func TestInactiveTarget(t *testing.T) {
	f := newFixture()
	f.wBody.active = false

	require.True(t, f.walker.Possess(f.ghost))
	assert.Equal(t, Possessing, f.ghost.State())
	assert.False(t, f.ghostBody.active)
	assert.Empty(t, f.walkLog.events)

	require.NotNil(t, f.walker.Unpossess(UnpossessOptions{}))
	assert.Equal(t, Idle, f.ghost.State())
	assert.True(t, f.ghostBody.active)
	assert.Empty(t, f.walkLog.events)
}

func TestCancelPossessionAction(t *testing.T) {
	f := newFixture()
	cancels := 0
	f.walker.hooks.OnCancel = func(*Controller) { cancels++ }

	assert.False(t, f.walker.CancelPossessionAction())

	f.walker.Possess(f.ghost)
	f.walker.HandleInput(input.Frame{PowerReleased: true})
	assert.Equal(t, 1, cancels)
	assert.Equal(t, Possessed, f.walker.State())
	assert.Equal(t, []notify.Tag{EventPossessed, EventCancelled}, f.walkLog.tags())
}

func TestDisplayInfo(t *testing.T) {
	f := newFixture()
	f.walker.Possess(f.ghost)

	f.walker.HandleInput(input.Frame{DisplayInfoPressed: true})
	assert.True(t, f.walker.ShowInfo())
	f.walker.HandleInput(input.Frame{DisplayInfoPressed: true})
	assert.False(t, f.walker.ShowInfo())
	f.walker.HandleInput(input.Frame{DisplayInfoPressed: true})

	f.walker.Unpossess(UnpossessOptions{})
	assert.False(t, f.walker.ShowInfo(), "cleared on release")
}

func TestReleasePossession(t *testing.T) {
	f := newFixture()
	assert.False(t, f.ghost.ReleasePossession(dmath.Vec2{}, FacingLeft))

	f.walker.Possess(f.ghost)
	require.True(t, f.ghost.ReleasePossession(dmath.Vec2{X: 7, Y: 9}, FacingLeft))
	assert.Equal(t, Idle, f.walker.State())
	assert.Equal(t, 7.0, f.ghostBody.box.X)
	assert.Equal(t, FacingLeft, f.ghostBody.facing)
}

func TestSeekModeRules(t *testing.T) {
	f := newFixture()
	var seen []bool
	f.ghost.hooks.OnSeekMode = func(_ *Controller, on bool) { seen = append(seen, on) }

	assert.False(t, f.walker.SetSeekMode(true), "not a seeker")
	assert.True(t, f.ghost.SetSeekMode(true))
	assert.True(t, f.ghost.SetSeekMode(true))
	assert.False(t, f.ghost.ToggleSeekMode())
	assert.Equal(t, []bool{true, false}, seen)

	f.walker.Possess(f.ghost)
	assert.False(t, f.ghost.SetSeekMode(true), "busy possessing")
}

func TestMissingRespawnDegrades(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	c := New(Options{Owner: "bouncer", Possessable: true, Logger: zap.New(core)})

	assert.False(t, c.IsPossessable())
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, ErrNoRespawnPoint.Error(), entry.ContextMap()["error"])

	c.SetPossessable(true)
	assert.False(t, c.IsPossessable())

	ghost := New(Options{Seeker: true})
	assert.False(t, c.Possess(ghost))
	assert.Equal(t, 1, logs.Len(), "reported once")
}

func TestListenerFunc(t *testing.T) {
	f := newFixture()
	var got []notify.Tag
	fn := ListenerFunc(func(e Event) error {
		got = append(got, e.Tag)
		return nil
	})
	f.walker.Subscribe(&fn)
	f.walker.Possess(f.ghost)
	assert.Equal(t, []notify.Tag{EventPossessed}, got)
	assert.True(t, f.walker.Unsubscribe(&fn))
}
