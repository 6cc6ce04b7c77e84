// Package physics integrates kinematic bodies against an Environment.
package physics

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Shape is the collider contract of a body.
type Shape struct {
	Width  float64
	Height float64
	Skin   float64 // Detection margin around the box
}

// Surface is anything a body can touch and stand on.
type Surface interface {
	// Displacement is how far the surface moved during the current tick.
	Displacement() dmath.Vec2
	Bounds() Rect
	OneWay() bool
}

// Contact is one narrow-phase result. Normal points out of the surface,
// toward the body. Depth is the penetration of the body's box along Normal;
// contacts within the skin margin have a Depth in [-Skin, 0].
type Contact struct {
	Point   dmath.Vec2
	Normal  dmath.Vec2
	Depth   float64
	Surface Surface
}

// Query asks an Environment for the contacts of a box.
type Query struct {
	Box      Rect
	Previous Rect // Box before the current sub-step moved it
	Velocity dmath.Vec2
	Skin     float64
	Ignore   Surface
}

// Environment is the narrow-phase contract the integrator relies on.
type Environment interface {
	// Contacts returns the contacts of q ordered by depth, deepest first.
	// The order among equal depths is stable between calls.
	Contacts(q Query) []Contact
	// Overlap counts the objects matching the named filter that overlap area.
	Overlap(area Rect, filter string) int
}

// Body is the state owned by one Integrator. Position is the top-left corner
// of the shape. VY is positive downward.
type Body struct {
	Position     dmath.Vec2
	VX, VY       float64
	Grounded     bool
	GroundNormal dmath.Vec2
	GroundAngle  float64 // Degrees, within the walkable range
	Ground       Surface
	Shape        Shape
}

// Box returns the body's collision box.
func (b Body) Box() Rect {
	return Rect{X: b.Position.X, Y: b.Position.Y, W: b.Shape.Width, H: b.Shape.Height}
}

// Center returns the middle of the body's box.
func (b Body) Center() dmath.Vec2 {
	return dmath.Vec2{X: b.Position.X + b.Shape.Width/2, Y: b.Position.Y + b.Shape.Height/2}
}

// Rising reports upward motion.
func (b Body) Rising() bool {
	return b.VY < 0
}

// BodyState is the result of one Step.
type BodyState struct {
	Body

	Landed     bool    // Grounded this step but not the previous one
	LeftGround bool    // Grounded the previous step but not this one
	Wall       float64 // -1 wall on the left, 1 on the right, 0 none
	Ceiling    bool
}

// Target is what a controller asks of the integrator for one step.
type Target struct {
	// Velocity.X is the horizontal speed to blend toward. With Override set,
	// Velocity replaces the body velocity and gravity is skipped.
	Velocity dmath.Vec2
	Override bool

	// Launch, when positive, sets the upward speed and leaves the ground.
	Launch float64
	// CutRise, when positive, scales a rising vertical speed once.
	CutRise float64
	// DropThrough leaves the one-way surface currently stood on.
	DropThrough bool
	// Anchor, when positive, is a downward speed given to a grounded body.
	// Ground the body can reach this step keeps it grounded.
	Anchor float64
}
