// Package flow gates player control and sequences level starts and ends.
//
// Disabled control never pauses the simulation: Select hands out the forced
// frame or the neutral frame instead, so bodies keep integrating.
package flow

import (
	"github.com/automoto/haunt/config"
	"github.com/automoto/haunt/input"
	"github.com/automoto/haunt/logging"
	"github.com/automoto/haunt/notify"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// LevelChanger performs the scene change the flow asks for.
type LevelChanger interface {
	RequestLevelTransition(levelID string)
}

const (
	EventControlChanged  notify.Tag = "control-changed"
	EventFadeInFinished  notify.Tag = "fade-in-finished"
	EventFadeOutFinished notify.Tag = "fade-out-finished"
)

type Event struct {
	Tag             notify.Tag
	ControlsEnabled bool
	Level           string
}

type Listener interface {
	OnFlow(e Event) error
}

type Controller struct {
	cfg     config.FlowConfig
	changer LevelChanger
	log     *zap.Logger
	hub     *notify.Hub[Listener]

	enabled         bool
	forced          *input.Frame
	forcedDelivered bool

	fade    *gween.Tween
	fadeOut bool
	opacity float64

	inStart   bool
	inEnd     bool
	nextLevel string
}

// New returns a controller with control enabled and the screen clear.
func New(cfg config.FlowConfig, changer LevelChanger, log *zap.Logger) *Controller {
	log = logging.OrNop(log)
	return &Controller{
		cfg:     cfg,
		changer: changer,
		log:     log,
		hub:     notify.New[Listener]("flow", log),
		enabled: true,
	}
}

func (c *Controller) Subscribe(l Listener) *notify.Subscription[Listener] {
	return c.hub.Subscribe(l)
}

func (c *Controller) Unsubscribe(l Listener) bool {
	return c.hub.Unsubscribe(l)
}

func (c *Controller) ControlsEnabled() bool {
	return c.enabled
}

// EnableControl switches between live input and forced or neutral input.
func (c *Controller) EnableControl(enabled bool) {
	if enabled == c.enabled {
		return
	}
	c.enabled = enabled
	c.emit(Event{Tag: EventControlChanged, ControlsEnabled: enabled})
}

// SetForcedInput replaces the neutral frame while control is disabled.
// Its edges are delivered once; later ticks repeat only its axes.
func (c *Controller) SetForcedInput(f input.Frame) {
	f = input.NewFrame(f)
	c.forced = &f
	c.forcedDelivered = false
}

func (c *Controller) ClearForcedInput() {
	c.forced = nil
}

// Select returns the frame the controlled body gets this tick.
func (c *Controller) Select(live input.Frame) input.Frame {
	if c.enabled {
		return live
	}
	if c.forced == nil {
		return input.Neutral
	}
	if !c.forcedDelivered {
		c.forcedDelivered = true
		return *c.forced
	}
	return c.forced.Held()
}

// StartLevel disables control, plays forced, and fades in from black.
func (c *Controller) StartLevel(forced input.Frame) {
	c.inStart = true
	c.inEnd = false
	c.EnableControl(false)
	c.SetForcedInput(forced)
	c.startFade(1, 0, c.cfg.FadeInDuration, false)
}

// LoadNextLevel disables control, plays forced, and fades out. The level
// transition is requested once the fade completes.
func (c *Controller) LoadNextLevel(forced input.Frame, levelID string) {
	if c.inEnd {
		return
	}
	c.inEnd = true
	c.nextLevel = levelID
	c.EnableControl(false)
	c.SetForcedInput(forced)
	c.startFade(c.opacity, 1, c.cfg.FadeOutDuration, true)
	c.log.Info("level end", zap.String("next", levelID))
}

func (c *Controller) InLevelStartSequence() bool {
	return c.inStart
}

func (c *Controller) InLevelEndSequence() bool {
	return c.inEnd
}

// Opacity is the fade cover, 0 clear to 1 black.
func (c *Controller) Opacity() float64 {
	return c.opacity
}

// Update advances the running fade.
func (c *Controller) Update(dt float64) {
	if c.fade == nil {
		return
	}
	v, done := c.fade.Update(float32(dt))
	c.opacity = float64(v)
	if done {
		c.fade = nil
		c.fadeFinished()
	}
}

func (c *Controller) startFade(from, to, duration float64, out bool) {
	c.fadeOut = out
	c.opacity = from
	if duration <= 0 {
		c.fade = nil
		c.opacity = to
		c.fadeFinished()
		return
	}
	c.fade = gween.New(float32(from), float32(to), float32(duration), ease.Linear)
}

func (c *Controller) fadeFinished() {
	if !c.fadeOut {
		if c.inStart && c.cfg.EnableControlAfterFadeIn {
			c.inStart = false
			c.ClearForcedInput()
			c.EnableControl(true)
		}
		c.emit(Event{Tag: EventFadeInFinished, ControlsEnabled: c.enabled})
		return
	}

	c.emit(Event{Tag: EventFadeOutFinished, Level: c.nextLevel})
	if c.inEnd {
		c.inEnd = false
		if c.changer != nil {
			c.changer.RequestLevelTransition(c.nextLevel)
		}
	}
}

func (c *Controller) emit(e Event) {
	c.hub.Emit(e.Tag, func(l Listener) error { return l.OnFlow(e) })
}
