// Package character puts an integrator, a movement controller and a
// possession controller behind one body. Variants differ only in where
// their frame comes from and in what they do on landing.
package character

import (
	"github.com/automoto/haunt/collision"
	"github.com/automoto/haunt/config"
	"github.com/automoto/haunt/input"
	"github.com/automoto/haunt/logging"
	"github.com/automoto/haunt/movement"
	"github.com/automoto/haunt/physics"
	"github.com/automoto/haunt/possession"
	"github.com/automoto/haunt/tags"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

type Kind int

const (
	KindPlayer Kind = iota
	KindWalker
	KindBouncer
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindWalker:
		return "walker"
	case KindBouncer:
		return "bouncer"
	}
	return "unknown"
}

// Options configures a Character. Zero configs take the package defaults
// from config for the kind.
type Options struct {
	Kind     Kind
	Name     string
	Space    *collision.Space
	Position dmath.Vec2

	Config     *config.CharacterConfig
	Physics    *config.PhysicsConfig
	Bounce     *config.BounceConfig
	Patrol     *config.PatrolConfig
	Possession *config.PossessionConfig

	// Respawn overrides the possession offset.
	Respawn *possession.RespawnPoint
	Hooks   possession.Hooks
	Logger  *zap.Logger
}

type Character struct {
	Kind       Kind
	Name       string
	Body       *physics.Integrator
	Movement   *movement.Controller
	Possession *possession.Controller
	Object     *resolv.Object

	space  *collision.Space
	log    *zap.Logger
	cfg    config.CharacterConfig
	bounce config.BounceConfig
	patrol config.PatrolConfig

	active   bool
	state    physics.BodyState
	spawn    dmath.Vec2
	lastSafe dmath.Vec2
	settled  bool    // Bouncer stays down after a cancelled bounce
	anchor   float64 // Downward push for the next tick
}

// New places a character of the given kind in the space.
func New(opts Options) *Character {
	log := logging.OrNop(opts.Logger)
	c := &Character{
		Kind:     opts.Kind,
		Name:     opts.Name,
		space:    opts.Space,
		log:      log.With(zap.String("character", opts.Name), zap.Stringer("kind", opts.Kind)),
		cfg:      kindConfig(opts.Kind),
		bounce:   config.Bounce,
		patrol:   config.Patrol,
		active:   true,
		spawn:    opts.Position,
		lastSafe: opts.Position,
	}
	phys := config.Physics
	if opts.Physics != nil {
		phys = *opts.Physics
	}
	if opts.Config != nil {
		c.cfg = *opts.Config
	}
	if opts.Bounce != nil {
		c.bounce = *opts.Bounce
	}
	if opts.Patrol != nil {
		c.patrol = *opts.Patrol
	}
	poss := config.Possession
	if opts.Possession != nil {
		poss = *opts.Possession
	}

	shape := physics.Shape{Width: c.cfg.Width, Height: c.cfg.Height}
	c.Body = physics.NewIntegrator(opts.Space, shape, opts.Position, phys, c.cfg.Movement)
	c.Movement = movement.New(c.cfg.Movement, c, c.log)
	c.state = c.Body.State()

	popts := possession.Options{
		Owner:  c,
		Space:  opts.Space,
		Avatar: c,
		Hooks:  opts.Hooks,
		Logger: c.log,
	}
	objTags := []string{tags.ResolvCharacter}
	switch opts.Kind {
	case KindPlayer:
		popts.Seeker = true
		objTags = append(objTags, tags.ResolvPlayer)
	default:
		popts.Possessable = true
		popts.Respawn = opts.Respawn
		if popts.Respawn == nil {
			popts.Respawn = &possession.RespawnPoint{Offset: dmath.Vec2{
				X: poss.SpawnOffsetX,
				Y: poss.SpawnOffsetY,
			}}
		}
		objTags = append(objTags, tags.ResolvPossessable)
	}
	popts.Filter = poss.RespawnFilter
	if opts.Kind == KindBouncer {
		onCancel := popts.Hooks.OnCancel
		popts.Hooks.OnCancel = func(target *possession.Controller) {
			c.cancelBounce()
			if onCancel != nil {
				onCancel(target)
			}
		}
	}
	c.Possession = possession.New(popts)

	if opts.Space != nil {
		c.Object = opts.Space.AddArea(c.Body.Body().Box(), c, objTags...)
	}
	return c
}

func kindConfig(k Kind) config.CharacterConfig {
	switch k {
	case KindWalker:
		return config.Walker
	case KindBouncer:
		return config.Bouncer
	}
	return config.Player
}

// Active reports whether the character is in the world. A possessing
// player is not.
func (c *Character) Active() bool {
	return c.active
}

// SetActive adds or removes the character from the space.
func (c *Character) SetActive(active bool) {
	if active == c.active {
		return
	}
	c.active = active
	if c.space == nil || c.Object == nil {
		return
	}
	if active {
		c.syncObject()
		c.space.Add(c.Object)
	} else {
		c.space.Remove(c.Object)
	}
}

func (c *Character) Box() physics.Rect {
	return c.Body.Body().Box()
}

func (c *Character) VelocityX() float64 {
	return c.Body.Body().VX
}

// Place teleports the character, at rest and airborne.
func (c *Character) Place(pos dmath.Vec2, facing float64) {
	c.Body.Teleport(pos)
	c.Movement.SetFacing(facing)
	c.Movement.Observe(c.Body.State())
	c.state = c.Body.State()
	c.syncObject()
}

// State is the result of the last Tick.
func (c *Character) State() physics.BodyState {
	return c.state
}

func (c *Character) Spawn() dmath.Vec2 {
	return c.spawn
}

// SpawnAnchor returns the feet position of the character's spawn.
func (c *Character) SpawnAnchor() dmath.Vec2 {
	return dmath.Vec2{X: c.spawn.X + c.cfg.Width/2, Y: c.spawn.Y + c.cfg.Height}
}

// LastSafe is the last position the character stood on ground.
func (c *Character) LastSafe() dmath.Vec2 {
	return c.lastSafe
}

// Respawn puts the character back on its last safe ground.
func (c *Character) Respawn() {
	c.Place(c.lastSafe, c.Movement.Facing())
	c.log.Debug("respawned", zap.Float64("x", c.lastSafe.X), zap.Float64("y", c.lastSafe.Y))
}

// Controlled returns the character that c's input drives: c itself, or the
// body it possesses.
func (c *Character) Controlled() *Character {
	if c.Possession.State() != possession.Possessing {
		return c
	}
	if target, ok := c.Possession.Target().Owner().(*Character); ok {
		return target
	}
	return c
}

// Of returns the character behind a possession controller.
func Of(p *possession.Controller) *Character {
	if p == nil {
		return nil
	}
	ch, _ := p.Owner().(*Character)
	return ch
}

// Tick advances the character one step. f is the frame of whoever drives
// it; autonomous characters ignore it. Inactive characters do not move.
func (c *Character) Tick(f input.Frame, dt float64) physics.BodyState {
	if !c.active {
		return c.state
	}
	if c.driven() {
		c.Possession.HandleInput(f)
	}

	var t physics.Target
	switch c.Kind {
	case KindPlayer:
		t = c.Movement.Update(f, dt)
	case KindWalker:
		if c.Possession.IsPossessed() {
			t = c.Movement.Update(f, dt)
		} else {
			t = c.Movement.Update(c.patrolFrame(), dt)
		}
	case KindBouncer:
		t = c.bounceTarget(f, dt)
	}

	t.Anchor, c.anchor = c.anchor, 0
	st := c.Body.Step(dt, t)
	c.Movement.Observe(st)
	c.state = st
	if st.Grounded && c.Kind == KindPlayer {
		c.lastSafe = st.Position
	}
	c.syncObject()
	return st
}

// AnchorDown adds a downward push, in px/s, to the next tick. Pushes from
// overlapping zones add up.
func (c *Character) AnchorDown(speed float64) {
	c.anchor += speed
}

// driven reports whether the character reads possession edges this tick.
func (c *Character) driven() bool {
	switch c.Possession.State() {
	case possession.Possessed:
		return true
	case possession.Idle:
		return c.Kind == KindPlayer
	}
	return false
}

func (c *Character) syncObject() {
	if c.Object == nil {
		return
	}
	b := c.Body.Body()
	c.Object.X, c.Object.Y = b.Position.X, b.Position.Y
	c.Object.Update()
}
