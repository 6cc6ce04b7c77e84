// Package ebitendevice reads keyboards and gamepads through ebiten and feeds
// them to an input.Sampler.
package ebitendevice

import (
	"github.com/automoto/haunt/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding represents the keys and buttons mapped to one action
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings holds all mappings plus the stick deadzone
type Bindings struct {
	Actions        [input.ActionCount]Binding
	AnalogDeadzone float64
}

// DefaultBindings is the stock layout
var DefaultBindings Bindings

func init() {
	DefaultBindings = Bindings{
		AnalogDeadzone: 0.25,
	}
	DefaultBindings.Actions[input.ActionLeft] = Binding{
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	}
	DefaultBindings.Actions[input.ActionRight] = Binding{
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	}
	DefaultBindings.Actions[input.ActionUp] = Binding{
		Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	}
	DefaultBindings.Actions[input.ActionDown] = Binding{
		Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	}
	// A / Cross
	DefaultBindings.Actions[input.ActionJump] = Binding{
		Keys:                   []ebiten.Key{ebiten.KeySpace, ebiten.KeyX},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	}
	// X / Square
	DefaultBindings.Actions[input.ActionDash] = Binding{
		Keys:                   []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyC},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	}
	// Y / Triangle
	DefaultBindings.Actions[input.ActionPossess] = Binding{
		Keys:                   []ebiten.Key{ebiten.KeyE},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
	}
	// B / Circle
	DefaultBindings.Actions[input.ActionPower] = Binding{
		Keys:                   []ebiten.Key{ebiten.KeyZ},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
	}
	DefaultBindings.Actions[input.ActionDisplayInfo] = Binding{
		Keys:                   []ebiten.Key{ebiten.KeyTab},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	}
}
