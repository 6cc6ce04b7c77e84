package collision

import (
	"github.com/automoto/haunt/physics"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	dmath "github.com/yohamta/donburi/features/math"
)

// Kind is the collision behaviour of a Surface.
type Kind int

const (
	KindSolid Kind = iota
	KindRamp
	KindPlatform // One-way, passable from below
)

// Surface is a static or moving piece of level geometry. It is stored in
// its resolv object's Data.
type Surface struct {
	ID     int
	Kind   Kind
	Object *resolv.Object

	upRight bool

	// Moving surfaces follow path from origin to origin+travel and back.
	path   *gween.Sequence
	origin dmath.Vec2
	travel dmath.Vec2
	moved  dmath.Vec2
}

// Displacement is how far the surface moved during the last Advance.
func (s *Surface) Displacement() dmath.Vec2 {
	return s.moved
}

func (s *Surface) Bounds() physics.Rect {
	return physics.Rect{X: s.Object.X, Y: s.Object.Y, W: s.Object.W, H: s.Object.H}
}

func (s *Surface) OneWay() bool {
	return s.Kind == KindPlatform
}

// Moving reports whether the surface follows a path.
func (s *Surface) Moving() bool {
	return s.path != nil
}

// Advance moves a moving surface along its path by dt seconds and records
// the displacement. Static surfaces only clear their displacement.
func (s *Surface) Advance(dt float64) {
	s.moved = dmath.Vec2{}
	if s.path == nil {
		return
	}

	progress, _, done := s.path.Update(float32(dt))
	if done {
		s.path.Reset()
	}

	x := s.origin.X + s.travel.X*float64(progress)
	y := s.origin.Y + s.travel.Y*float64(progress)
	s.moved = dmath.Vec2{X: x - s.Object.X, Y: y - s.Object.Y}
	s.Object.X, s.Object.Y = x, y
	s.Object.Update()
}

// newPath builds the there-and-back sequence driving a moving surface.
func newPath(duration float64) *gween.Sequence {
	leg := float32(duration / 2)
	return gween.NewSequence(
		gween.New(0, 1, leg, ease.InOutSine),
		gween.New(1, 0, leg, ease.InOutSine),
	)
}
