// Package possession is the state machine that moves input authority
// between a possessor and the bodies it takes over.
//
// A possession edge links exactly one possessor to exactly one possessed
// controller. Both ends are mutated together by the calls in this package;
// calls made in the wrong state are rejected and change nothing.
package possession

import (
	"errors"

	"github.com/automoto/haunt/config"
	"github.com/automoto/haunt/logging"
	"github.com/automoto/haunt/notify"
	"github.com/automoto/haunt/physics"
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// ErrNoRespawnPoint is reported when a possessable controller has nowhere
// to put its possessor back.
var ErrNoRespawnPoint = errors.New("possessable without respawn point")

type State int

const (
	Idle State = iota
	Possessed
	Possessing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Possessed:
		return "possessed"
	case Possessing:
		return "possessing"
	}
	return "unknown"
}

const (
	FacingLeft  = config.DirectionLeft
	FacingRight = config.DirectionRight
)

// FacingFor returns the facing a released possessor takes from the
// possessed body's horizontal velocity. Standing still faces right.
func FacingFor(vx float64) float64 {
	if vx < 0 {
		return FacingLeft
	}
	return FacingRight
}

// Avatar is the body a controller stands for in the world.
type Avatar interface {
	Active() bool
	SetActive(active bool)
	Box() physics.Rect
	VelocityX() float64
	// Place moves the body so its box starts at pos and turns it.
	Place(pos dmath.Vec2, facing float64)
}

// Overlapper answers free space checks for respawns.
type Overlapper interface {
	Overlap(area physics.Rect, filter string) int
}

// RespawnPoint is where a released possessor's feet go, relative to the
// feet of the body it leaves.
type RespawnPoint struct {
	Offset dmath.Vec2
}

// Anchor returns the respawn feet position for a body occupying box.
func (r RespawnPoint) Anchor(box physics.Rect) dmath.Vec2 {
	return dmath.Vec2{X: box.CenterX() + r.Offset.X, Y: box.Bottom() + r.Offset.Y}
}

// Hooks run after a transition, for the presentation side. Any may be nil.
type Hooks struct {
	OnPossess   func(target, possessor *Controller)
	OnUnpossess func(target, possessor *Controller)
	OnCancel    func(target *Controller)
	OnSeekMode  func(c *Controller, seeking bool)
}

// Options configures a Controller.
type Options struct {
	Owner       any
	Possessable bool
	// Seeker marks a controller able to enter seek mode and take possession.
	Seeker  bool
	Respawn *RespawnPoint
	Space   Overlapper
	Filter  string
	Avatar  Avatar
	Hooks   Hooks
	Logger  *zap.Logger
}

// UnpossessOptions tunes where the possessor reappears.
type UnpossessOptions struct {
	// CenterCollider centers the possessor's box on the respawn position
	// instead of standing it there.
	CenterCollider bool
	// ForceRespawn replaces the respawn point and skips the space check.
	ForceRespawn *dmath.Vec2
}

// Controller is one entity's side of the possession relationship.
type Controller struct {
	owner       any
	possessable bool
	seeker      bool
	respawn     *RespawnPoint
	space       Overlapper
	filter      string
	avatar      Avatar
	hooks       Hooks
	log         *zap.Logger
	hub         *notify.Hub[Listener]

	state     State
	possessor *Controller
	target    *Controller
	seeking   bool
	showInfo  bool
}

// New creates an Idle controller. A possessable controller without a
// respawn point is logged and left not possessable.
func New(opts Options) *Controller {
	log := logging.OrNop(opts.Logger)
	c := &Controller{
		owner:       opts.Owner,
		possessable: opts.Possessable,
		seeker:      opts.Seeker,
		respawn:     opts.Respawn,
		space:       opts.Space,
		filter:      opts.Filter,
		avatar:      opts.Avatar,
		hooks:       opts.Hooks,
		log:         log,
		hub:         notify.New[Listener]("possession", log),
	}
	if c.filter == "" {
		c.filter = config.Possession.RespawnFilter
	}
	if c.possessable && c.respawn == nil {
		log.Error("possession disabled", zap.Any("owner", opts.Owner), zap.Error(ErrNoRespawnPoint))
		c.possessable = false
	}
	return c
}

func (c *Controller) Owner() any             { return c.owner }
func (c *Controller) Avatar() Avatar         { return c.avatar }
func (c *Controller) State() State           { return c.state }
func (c *Controller) IsPossessable() bool    { return c.possessable }
func (c *Controller) SeekMode() bool         { return c.seeking }
func (c *Controller) ShowInfo() bool         { return c.showInfo }
func (c *Controller) IsPossessed() bool      { return c.state == Possessed }
func (c *Controller) Possessor() *Controller { return c.possessor }
func (c *Controller) Target() *Controller    { return c.target }

// SetPossessable toggles the capability. It cannot be turned on without a
// respawn point.
func (c *Controller) SetPossessable(v bool) {
	c.possessable = v && c.respawn != nil
}

func (c *Controller) Subscribe(l Listener) *notify.Subscription[Listener] {
	return c.hub.Subscribe(l)
}

func (c *Controller) Unsubscribe(l Listener) bool {
	return c.hub.Unsubscribe(l)
}

// Possess makes possessor drive this controller. It succeeds only when
// this controller is possessable and both ends are Idle, and reports
// whether it did.
func (c *Controller) Possess(possessor *Controller) bool {
	if !c.possessable || c.state != Idle || possessor == nil || possessor == c || possessor.state != Idle {
		return false
	}

	wasSeeking := possessor.seeking
	c.state = Possessed
	c.possessor = possessor
	possessor.state = Possessing
	possessor.target = c
	possessor.seeking = false
	if possessor.avatar != nil {
		possessor.avatar.SetActive(false)
	}

	if c.avatarActive() {
		c.emit(Event{Tag: EventPossessed, Target: c, Possessor: possessor})
		if c.hooks.OnPossess != nil {
			c.hooks.OnPossess(c, possessor)
		}
	}
	if wasSeeking {
		possessor.seekChanged()
	}
	return true
}

// Unpossess releases this controller's possessor at the respawn point and
// returns it. It returns nil when not Possessed or when the respawn space
// is occupied; the caller may try again on a later tick.
func (c *Controller) Unpossess(opts UnpossessOptions) *Controller {
	if c.state != Possessed {
		return nil
	}
	pos, ok := c.respawnFor(opts)
	if !ok {
		return nil
	}
	return c.release(pos, FacingFor(c.velocityX()))
}

// HasSpaceToUnpossess reports whether the respawn point is free.
func (c *Controller) HasSpaceToUnpossess() bool {
	_, ok := c.respawnFor(UnpossessOptions{})
	return ok
}

// CancelPossessionAction aborts the possessed body's charged action. The
// possession itself is unchanged.
func (c *Controller) CancelPossessionAction() bool {
	if c.state != Possessed {
		return false
	}
	c.emit(Event{Tag: EventCancelled, Target: c, Possessor: c.possessor})
	if c.hooks.OnCancel != nil {
		c.hooks.OnCancel(c)
	}
	return true
}

// TakePossession possesses target while seeking.
func (c *Controller) TakePossession(target *Controller) bool {
	if !c.seeking || c.state != Idle || target == nil {
		return false
	}
	return target.Possess(c)
}

// ReleasePossession ends the possession this controller holds and puts its
// body at pos, turned to facing. No space check is made.
func (c *Controller) ReleasePossession(pos dmath.Vec2, facing float64) bool {
	if c.state != Possessing || c.target == nil {
		return false
	}
	c.target.release(pos, facing)
	return true
}

func (c *Controller) ToggleSeekMode() bool {
	return c.SetSeekMode(!c.seeking)
}

// SetSeekMode enters or leaves seek mode and reports the resulting mode.
// Only an Idle seeker can enter it.
func (c *Controller) SetSeekMode(on bool) bool {
	if on == c.seeking {
		return c.seeking
	}
	if on && (!c.seeker || c.state != Idle) {
		return c.seeking
	}
	c.seeking = on
	c.seekChanged()
	return c.seeking
}

func (c *Controller) seekChanged() {
	if c.hooks.OnSeekMode != nil {
		c.hooks.OnSeekMode(c, c.seeking)
	}
	c.emit(Event{Tag: EventSeekModeChanged, Target: c.target, Possessor: c, Seeking: c.seeking})
}

// release clears both ends of the edge, then notifies.
func (c *Controller) release(pos dmath.Vec2, facing float64) *Controller {
	p := c.possessor
	active := c.avatarActive()

	c.state = Idle
	c.possessor = nil
	c.showInfo = false
	if p != nil {
		p.state = Idle
		p.target = nil
		if p.avatar != nil {
			p.avatar.Place(pos, facing)
			p.avatar.SetActive(true)
		}
	}

	if active {
		c.emit(Event{Tag: EventUnpossessed, Target: c, Possessor: p, Facing: facing})
		if c.hooks.OnUnpossess != nil {
			c.hooks.OnUnpossess(c, p)
		}
	}
	return p
}

// respawnFor returns the top-left corner the possessor's box would take.
func (c *Controller) respawnFor(opts UnpossessOptions) (dmath.Vec2, bool) {
	var w, h float64
	if c.possessor != nil && c.possessor.avatar != nil {
		box := c.possessor.avatar.Box()
		w, h = box.W, box.H
	}

	var anchor dmath.Vec2
	switch {
	case opts.ForceRespawn != nil:
		anchor = *opts.ForceRespawn
	case c.respawn != nil && c.avatar != nil:
		anchor = c.respawn.Anchor(c.avatar.Box())
	default:
		return dmath.Vec2{}, false
	}

	pos := dmath.Vec2{X: anchor.X - w/2, Y: anchor.Y - h}
	if opts.CenterCollider {
		pos.Y = anchor.Y - h/2
	}

	if opts.ForceRespawn == nil && c.space != nil {
		area := physics.Rect{X: pos.X, Y: pos.Y, W: w, H: h}
		if n := c.space.Overlap(area, c.filter); n > 0 {
			c.log.Debug("no space to unpossess",
				zap.Any("owner", c.owner),
				zap.Int("overlaps", n),
			)
			return dmath.Vec2{}, false
		}
	}
	return pos, true
}

func (c *Controller) avatarActive() bool {
	return c.avatar == nil || c.avatar.Active()
}

func (c *Controller) velocityX() float64 {
	if c.avatar == nil {
		return 0
	}
	return c.avatar.VelocityX()
}
