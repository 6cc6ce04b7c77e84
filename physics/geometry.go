package physics

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Up is the walkable reference direction. The world is y-down.
var Up = dmath.Vec2{X: 0, Y: -1}

// Rect is an axis aligned box anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Inflate grows r by m on every side.
func (r Rect) Inflate(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// Intersects reports a strictly positive overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Overlap returns the signed overlap on each axis. Negative values are gaps.
func (r Rect) Overlap(o Rect) (x, y float64) {
	x = math.Min(r.Right(), o.Right()) - math.Max(r.X, o.X)
	y = math.Min(r.Bottom(), o.Bottom()) - math.Max(r.Y, o.Y)
	return x, y
}

// AngleFromUp returns the angle between n and Up in degrees.
func AngleFromUp(n dmath.Vec2) float64 {
	c := n.Normalized().Dot(&Up)
	c = math.Max(-1, math.Min(1, c))
	return math.Acos(c) * 180 / math.Pi
}
