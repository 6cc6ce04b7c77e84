package ebitendevice

import (
	"github.com/automoto/haunt/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// Keyboard is the keyboard-like device
type Keyboard struct {
	Bindings *Bindings
}

func NewKeyboard() *Keyboard {
	return &Keyboard{Bindings: &DefaultBindings}
}

func (k *Keyboard) Poll(s *input.Snapshot) {
	for a, binding := range k.Bindings.Actions {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				s.Pressed[a] = true
				break
			}
		}
	}
}

// Gamepads is the controller-like device. It merges every connected pad with
// a standard layout.
type Gamepads struct {
	Bindings *Bindings

	ids []ebiten.GamepadID
}

func NewGamepads() *Gamepads {
	return &Gamepads{Bindings: &DefaultBindings}
}

func (g *Gamepads) Poll(s *input.Snapshot) {
	g.ids = ebiten.AppendGamepadIDs(g.ids[:0])
	deadzone := g.Bindings.AnalogDeadzone

	for _, id := range g.ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for a, binding := range g.Bindings.Actions {
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(id, btn) {
					s.Pressed[a] = true
					break
				}
			}
		}

		// Stick vertical is y-down; frames are y-up
		h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if s.Horizontal == 0 && (h > deadzone || h < -deadzone) {
			s.Horizontal = h
		}
		if s.Vertical == 0 && (v > deadzone || v < -deadzone) {
			s.Vertical = v
		}
	}
}
