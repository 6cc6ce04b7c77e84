// Package props holds the level triggers characters touch: buttons, dash
// enablers, dead zones and finish lines, plus the health they act on.
package props

import (
	"github.com/automoto/haunt/notify"
	"go.uber.org/zap"
)

const EventButtonPressed notify.Tag = "button-pressed"

type ButtonListener interface {
	OnButtonPressed(b *Button) error
}

// Button latches down the first time the player touches it.
type Button struct {
	Name    string
	pressed bool
	hub     *notify.Hub[ButtonListener]
}

func NewButton(name string, initiallyPressed bool, log *zap.Logger) *Button {
	return &Button{
		Name:    name,
		pressed: initiallyPressed,
		hub:     notify.New[ButtonListener]("button", log),
	}
}

func (b *Button) Pressed() bool {
	return b.pressed
}

func (b *Button) Subscribe(l ButtonListener) *notify.Subscription[ButtonListener] {
	return b.hub.Subscribe(l)
}

func (b *Button) Unsubscribe(l ButtonListener) bool {
	return b.hub.Unsubscribe(l)
}

// Touch presses the button for the player. It reports whether the button
// went down.
func (b *Button) Touch(byPlayer bool) bool {
	if b.pressed || !byPlayer {
		return false
	}
	b.pressed = true
	b.hub.Emit(EventButtonPressed, func(l ButtonListener) error { return l.OnButtonPressed(b) })
	return true
}

// Reset releases the button without notifying.
func (b *Button) Reset() {
	b.pressed = false
}
