package character

import (
	"testing"

	"github.com/automoto/haunt/collision"
	"github.com/automoto/haunt/config"
	"github.com/automoto/haunt/input"
	"github.com/automoto/haunt/physics"
	"github.com/automoto/haunt/possession"
	"github.com/automoto/haunt/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

const dt = 1.0 / 60

func newSpace(floorWidth float64) *collision.Space {
	tn := config.DefaultTuning()
	s := collision.NewSpace(640, 320, tn.Physics.CellSize, tn.Filters, tn.Physics)
	s.AddSolid(physics.Rect{X: 0, Y: 200, W: floorWidth, H: 16})
	return s
}

func spawn(s *collision.Space, kind Kind, x, y float64) *Character {
	return New(Options{Kind: kind, Name: kind.String(), Space: s, Position: dmath.Vec2{X: x, Y: y}})
}

func tick(c *Character, f input.Frame, n int) physics.BodyState {
	var st physics.BodyState
	for i := 0; i < n; i++ {
		st = c.Tick(f, dt)
	}
	return st
}

type recorder struct{ events []possession.Event }

func (r *recorder) OnPossession(e possession.Event) error {
	r.events = append(r.events, e)
	return nil
}

func TestPlayerRuns(t *testing.T) {
	s := newSpace(640)
	p := spawn(s, KindPlayer, 100, 160)

	st := tick(p, input.Frame{Horizontal: 1}, 30)
	assert.True(t, st.Grounded)
	assert.Greater(t, st.Position.X, 250.0)
	assert.Equal(t, st.Position.X, p.Object.X, "resolv object follows the body")
	assert.Equal(t, st.Position, p.LastSafe())
}

func TestNeutralFrameKeepsFalling(t *testing.T) {
	s := newSpace(640)
	p := spawn(s, KindPlayer, 100, 20)

	prev := p.Box().Y
	for i := 0; i < 10; i++ {
		st := p.Tick(input.Neutral, dt)
		assert.Greater(t, st.Position.Y, prev)
		prev = st.Position.Y
	}
	assert.Positive(t, p.State().VY)
}

func TestSeekerCollidesAndPossesses(t *testing.T) {
	s := newSpace(640)
	p := spawn(s, KindPlayer, 100, 160)
	w := spawn(s, KindWalker, 200, 168)
	r := &recorder{}
	w.Possession.Subscribe(r)

	p.Tick(input.Frame{PossessPressed: true}, dt)
	require.True(t, p.Possession.SeekMode())

	require.True(t, p.Possession.TakePossession(w.Possession))
	assert.False(t, p.Active())
	assert.Equal(t, possession.Possessed, w.Possession.State())
	assert.Same(t, w, p.Controlled())
	assert.Same(t, p, Of(w.Possession.Possessor()))
	require.Len(t, r.events, 1)
	assert.Equal(t, possession.EventPossessed, r.events[0].Tag)

	// The player left the space, so it no longer blocks respawns
	assert.Empty(t, s.Overlapping(physics.Rect{X: 100, Y: 160, W: 16, H: 40}, tags.ResolvPlayer))

	before := p.Box()
	assert.Equal(t, p.State(), p.Tick(input.Frame{Horizontal: 1}, dt), "inactive bodies do not move")
	assert.Equal(t, before, p.Box())

	tick(w, input.Frame{Horizontal: 1}, 30)
	assert.Greater(t, w.Box().X, 250.0, "driven by the possessor's frame")
}

func TestUnpossessPlacesPlayer(t *testing.T) {
	s := newSpace(640)
	p := spawn(s, KindPlayer, 100, 160)
	w := spawn(s, KindWalker, 300, 168)
	tick(w, input.Neutral, 1)
	require.True(t, w.Possession.Possess(p.Possession))

	tick(w, input.Frame{Horizontal: -1}, 10)
	wx := w.Box().X
	require.Negative(t, w.VelocityX())

	w.Tick(input.Frame{Horizontal: -1, PossessPressed: true}, dt)
	assert.Equal(t, possession.Idle, w.Possession.State())
	require.True(t, p.Active())
	assert.InDelta(t, wx+8-20-8, p.Box().X, 4)
	assert.InDelta(t, 160, p.Box().Y, 1e-9)
	assert.Equal(t, config.DirectionLeft, p.Movement.Facing())
	assert.Len(t, s.Overlapping(p.Box().Inflate(1), tags.ResolvPlayer), 1)
}

func TestUnpossessBlocked(t *testing.T) {
	s := newSpace(640)
	p := spawn(s, KindPlayer, 100, 160)
	w := spawn(s, KindWalker, 300, 168)
	s.AddSolid(physics.Rect{X: 270, Y: 150, W: 16, H: 50})
	tick(w, input.Neutral, 1)
	require.True(t, w.Possession.Possess(p.Possession))

	w.Tick(input.Frame{PossessPressed: true}, dt)
	assert.Equal(t, possession.Possessed, w.Possession.State())
	assert.False(t, p.Active())
}

func TestWalkerTurnsAtWall(t *testing.T) {
	s := newSpace(640)
	s.AddSolid(physics.Rect{X: 260, Y: 100, W: 16, H: 100})
	w := spawn(s, KindWalker, 200, 168)

	tick(w, input.Frame{Horizontal: 1, JumpPressed: true}, 120)
	assert.Equal(t, config.DirectionLeft, w.Movement.Facing())
	assert.Less(t, w.Box().X, 200.0)
	assert.True(t, w.State().Grounded, "autonomous walkers ignore the frame")
}

func TestWalkerTurnsAtLedge(t *testing.T) {
	s := newSpace(300)
	w := spawn(s, KindWalker, 200, 168)

	for i := 0; i < 180; i++ {
		st := w.Tick(input.Neutral, dt)
		require.True(t, st.Grounded, "tick %d", i)
		require.LessOrEqual(t, st.Position.X+8, 300.0)
	}
	assert.Equal(t, config.DirectionLeft, w.Movement.Facing())
}

func TestBouncerBounces(t *testing.T) {
	s := newSpace(640)
	b := spawn(s, KindBouncer, 300, 184)

	landings, highest := 0, 184.0
	for i := 0; i < 120; i++ {
		st := b.Tick(input.Neutral, dt)
		if st.Landed {
			landings++
		}
		highest = min(highest, st.Position.Y)
	}
	assert.GreaterOrEqual(t, landings, 3)
	assert.Less(t, highest, 120.0)
	assert.InDelta(t, 300, b.Box().X, 1e-9, "bounces in place")
}

func TestPossessedBouncerCancel(t *testing.T) {
	s := newSpace(640)
	p := spawn(s, KindPlayer, 100, 160)
	b := spawn(s, KindBouncer, 300, 184)
	tick(b, input.Neutral, 1)
	require.True(t, b.Possession.Possess(p.Possession))

	st := tick(b, input.Neutral, 3)
	require.True(t, st.Rising())
	vy := st.VY

	st = b.Tick(input.Frame{PowerReleased: true}, dt)
	assert.InDelta(t, vy*0.5+config.Physics.Gravity*dt, st.VY, 1e-9)
	assert.True(t, b.Settled())

	st = tick(b, input.Neutral, 90)
	assert.True(t, st.Grounded)
	assert.InDelta(t, 184, st.Position.Y, 1e-9)

	b.Tick(input.Frame{JumpPressed: true}, dt)
	st = b.Tick(input.Neutral, dt)
	assert.False(t, b.Settled())
	assert.True(t, st.Rising())

	st = tick(b, input.Frame{Horizontal: 1}, 30)
	assert.Greater(t, st.Position.X, 300.0, "steered by the possessor")
}

func TestRespawnAtLastSafe(t *testing.T) {
	s := newSpace(640)
	p := spawn(s, KindPlayer, 100, 160)
	tick(p, input.Frame{Horizontal: 1}, 5)
	safe := p.LastSafe()

	p.Place(dmath.Vec2{X: 500, Y: 0}, config.DirectionRight)
	p.Respawn()
	assert.Equal(t, safe, dmath.Vec2{X: p.Box().X, Y: p.Box().Y})
	assert.Equal(t, dmath.Vec2{X: 108, Y: 200}, p.SpawnAnchor())
}

func TestMissingConfigUsesKindDefaults(t *testing.T) {
	s := newSpace(640)
	w := spawn(s, KindWalker, 0, 0)
	assert.Equal(t, config.Walker.Width, w.Box().W)
	assert.True(t, w.Possession.IsPossessable())

	cfg := config.Bouncer
	cfg.Width = 24
	b := New(Options{Kind: KindBouncer, Space: s, Config: &cfg})
	assert.Equal(t, 24.0, b.Box().W)

	p := spawn(s, KindPlayer, 0, 0)
	assert.False(t, p.Possession.IsPossessable())
}
