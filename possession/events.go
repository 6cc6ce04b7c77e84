package possession

import (
	"github.com/automoto/haunt/input"
	"github.com/automoto/haunt/notify"
)

const (
	EventPossessed       notify.Tag = "possessed"
	EventUnpossessed     notify.Tag = "unpossessed"
	EventCancelled       notify.Tag = "cancelled"
	EventSeekModeChanged notify.Tag = "seek-mode-changed"
	EventDisplayInfo     notify.Tag = "display-info"
)

// Event is delivered to listeners of the controller that emitted it.
// Target is the possessed side and Possessor the driving side.
type Event struct {
	Tag       notify.Tag
	Target    *Controller
	Possessor *Controller
	Facing    float64
	Seeking   bool
	ShowInfo  bool
}

type Listener interface {
	OnPossession(e Event) error
}

// ListenerFunc adapts a function to Listener. Only pointers to it can be
// subscribed, since funcs are not comparable.
type ListenerFunc func(e Event) error

func (f *ListenerFunc) OnPossession(e Event) error {
	return (*f)(e)
}

// HandleInput applies the possession edges of one frame. A possessed
// controller reads its possessor's frame; an Idle seeker reads its own.
func (c *Controller) HandleInput(f input.Frame) {
	switch c.state {
	case Possessed:
		if f.PowerReleased {
			c.CancelPossessionAction()
		}
		if f.DisplayInfoPressed {
			c.showInfo = !c.showInfo
			c.emit(Event{Tag: EventDisplayInfo, Target: c, Possessor: c.possessor, ShowInfo: c.showInfo})
		}
		if f.PossessPressed {
			c.Unpossess(UnpossessOptions{})
		}
	case Idle:
		if c.seeker && f.PossessPressed {
			c.ToggleSeekMode()
		}
	}
}

func (c *Controller) emit(e Event) {
	c.hub.Emit(e.Tag, func(l Listener) error { return l.OnPossession(e) })
}
