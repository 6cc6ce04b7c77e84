package physics

import (
	"math"

	"github.com/automoto/haunt/config"
	"github.com/automoto/haunt/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

const (
	maxSubSteps  = 64
	depthEpsilon = 1e-6
)

// Integrator owns one Body and moves it against an Environment. Step only
// reads the environment; the body is the only state it writes.
type Integrator struct {
	body   Body
	env    Environment
	phys   config.PhysicsConfig
	tuning config.MovementConfig
	ignore Surface // One-way surface being dropped through
}

// NewIntegrator places a body at pos. A zero skin takes the world default.
func NewIntegrator(env Environment, shape Shape, pos dmath.Vec2, phys config.PhysicsConfig, tuning config.MovementConfig) *Integrator {
	if shape.Skin == 0 {
		shape.Skin = phys.SkinWidth
	}
	return &Integrator{
		body: Body{
			Position:     pos,
			GroundNormal: Up,
			Shape:        shape,
		},
		env:    env,
		phys:   phys,
		tuning: tuning,
	}
}

func (in *Integrator) Body() Body {
	return in.body
}

func (in *Integrator) State() BodyState {
	return BodyState{Body: in.body}
}

func (in *Integrator) Tuning() config.MovementConfig {
	return in.tuning
}

// Teleport places the body at pos at rest and airborne.
func (in *Integrator) Teleport(pos dmath.Vec2) {
	in.body.Position = pos
	in.body.VX, in.body.VY = 0, 0
	in.leaveGround()
	in.ignore = nil
}

// Step advances the body by dt seconds toward t.
func (in *Integrator) Step(dt float64, t Target) BodyState {
	b := &in.body
	if dt <= 0 {
		return BodyState{Body: *b}
	}

	var st BodyState
	wasGrounded := b.Grounded
	carrier := b.Ground
	launched := false

	if t.DropThrough && b.Grounded && b.Ground != nil && b.Ground.OneWay() {
		in.ignore = b.Ground
		carrier = nil
		in.leaveGround()
	}
	if t.Launch > 0 {
		b.VY = -t.Launch
		launched = true
		in.leaveGround()
	}
	if t.CutRise > 0 && b.Rising() {
		b.VY *= t.CutRise
	}

	if t.Override {
		b.VX, b.VY = t.Velocity.X, t.Velocity.Y
	} else {
		if b.Grounded {
			b.VY = 0
		} else {
			b.VY = math.Min(b.VY+in.phys.Gravity*in.tuning.GravityScale*dt, in.phys.MaxFallSpeed)
		}
		b.VX = in.blend(b.VX, t.Velocity.X, b.Grounded, dt)
	}

	move := dmath.Vec2{X: b.VX, Y: b.VY}.MulScalar(dt)
	if b.Grounded && !t.Override {
		// Walk along the surface instead of into it
		tan := dmath.Vec2{X: -b.GroundNormal.Y, Y: b.GroundNormal.X}
		move = tan.MulScalar(b.VX * dt)
	}
	if b.Grounded && !t.Override && t.Anchor > 0 {
		b.VY = t.Anchor
		move = move.Add(dmath.Vec2{Y: t.Anchor * dt})
	}
	if carrier != nil {
		move = move.Add(carrier.Displacement())
	}

	n := 1
	if in.phys.MaxStep > 0 {
		dist := math.Max(math.Abs(move.X), math.Abs(move.Y))
		n = int(math.Ceil(dist / in.phys.MaxStep))
	}
	n = max(1, min(n, maxSubSteps))
	step := move.DivScalar(float64(n))

	for i := 0; i < n; i++ {
		prev := b.Box()
		b.Position = b.Position.Add(step)
		in.resolve(&st, prev)
	}

	if wasGrounded && !b.Grounded && !launched && !t.Override && in.ignore == nil {
		in.snapToGround(move.X)
	}
	in.releaseIgnored()

	st.Body = *b
	st.Landed = b.Grounded && !wasGrounded
	st.LeftGround = wasGrounded && !b.Grounded
	return st
}

// blend moves vx toward target. A rate of zero or less snaps.
func (in *Integrator) blend(vx, target float64, grounded bool, dt float64) float64 {
	accel, decel := in.tuning.AirAccel, in.tuning.AirDecel
	if grounded {
		accel, decel = in.tuning.GroundAccel, in.tuning.GroundDecel
	}

	rate := decel
	speedingUp := math.Abs(target) > math.Abs(vx) && gamemath.Sign(vx) != -gamemath.Sign(target)
	if target != 0 && speedingUp {
		rate = accel
	}
	if rate <= 0 {
		return target
	}
	return gamemath.Approach(vx, target, rate*dt)
}

// resolve pushes the body out of everything it touches after one sub-step.
func (in *Integrator) resolve(st *BodyState, prev Rect) {
	in.leaveGround()
	groundDepth := math.Inf(-1)

	iterations := max(1, in.phys.ResolveIterations)
	for i := 0; i < iterations; i++ {
		contacts := in.env.Contacts(in.query(prev))
		pushed := false
		for _, c := range contacts {
			if in.apply(st, c, &groundDepth) {
				pushed = true
				break
			}
		}
		if !pushed {
			return
		}
	}
}

// apply classifies c and reports whether the body was moved.
func (in *Integrator) apply(st *BodyState, c Contact, groundDepth *float64) bool {
	b := &in.body
	n := c.Normal
	angle := AngleFromUp(n)

	if n.Y < 0 && angle <= in.tuning.MaxWalkableAngle && b.VY >= 0 {
		ground := c.Depth > *groundDepth
		if ground {
			*groundDepth = c.Depth
			b.Grounded = true
			b.GroundNormal = n
			b.GroundAngle = gamemath.Clamp(angle, 0, in.tuning.MaxWalkableAngle)
			b.Ground = c.Surface
		}
		b.VY = 0
		// A gap inside the skin closes flush, but only to the chosen ground
		if c.Depth > depthEpsilon || (ground && c.Depth < -depthEpsilon) {
			b.Position.Y -= c.Depth / -n.Y
			return true
		}
		return false
	}

	// Wall, ceiling or unwalkable slope: drop only the velocity going in
	if vn := b.VX*n.X + b.VY*n.Y; vn < 0 {
		b.VX -= n.X * vn
		b.VY -= n.Y * vn
	}
	switch {
	case n.X > 0.5:
		st.Wall = -1
	case n.X < -0.5:
		st.Wall = 1
	case n.Y > 0.5:
		st.Ceiling = true
	}
	if c.Depth > depthEpsilon {
		b.Position = b.Position.Add(n.MulScalar(c.Depth))
		return true
	}
	return false
}

// snapToGround keeps a walking body attached when the ground falls away
// by less than SnapDistance. A slope is sampled under the body's center, so
// a descending one may also lie up to tan(angle) times the half width plus
// this tick's travel below the feet.
func (in *Integrator) snapToGround(travel float64) {
	b := &in.body
	snap := in.phys.SnapDistance
	if snap <= 0 || b.VY < 0 {
		return
	}

	run := b.Shape.Width/2 + math.Abs(travel)
	reach := snap + run*tanDeg(in.tuning.MaxWalkableAngle)

	orig := b.Position
	prev := b.Box()
	b.Position.Y += reach
	for _, c := range in.env.Contacts(in.query(prev)) {
		angle := AngleFromUp(c.Normal)
		if c.Normal.Y >= 0 || angle > in.tuning.MaxWalkableAngle {
			continue
		}
		lift := c.Depth / -c.Normal.Y
		drop := reach - lift
		if drop < -b.Shape.Skin || drop > snap+run*tanDeg(angle)+b.Shape.Skin {
			continue
		}
		b.Position.Y -= lift
		b.VY = 0
		b.Grounded = true
		b.GroundNormal = c.Normal
		b.GroundAngle = angle
		b.Ground = c.Surface
		return
	}
	b.Position = orig
}

func tanDeg(deg float64) float64 {
	return math.Tan(deg * math.Pi / 180)
}

// releaseIgnored stops ignoring a dropped platform once the body is clear of it.
func (in *Integrator) releaseIgnored() {
	if in.ignore == nil {
		return
	}
	box, p := in.body.Box(), in.ignore.Bounds()
	if box.Y >= p.Bottom() || box.Right() <= p.X || box.X >= p.Right() || box.Bottom() < p.Y {
		in.ignore = nil
	}
}

func (in *Integrator) query(prev Rect) Query {
	return Query{
		Box:      in.body.Box(),
		Previous: prev,
		Velocity: dmath.Vec2{X: in.body.VX, Y: in.body.VY},
		Skin:     in.body.Shape.Skin,
		Ignore:   in.ignore,
	}
}

func (in *Integrator) leaveGround() {
	in.body.Grounded = false
	in.body.Ground = nil
	in.body.GroundNormal = Up
	in.body.GroundAngle = 0
}
