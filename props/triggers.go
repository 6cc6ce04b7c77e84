package props

import (
	"github.com/automoto/haunt/character"
	"github.com/automoto/haunt/input"
	"github.com/automoto/haunt/possession"
)

// DashToggler is the movement side a dash enabler drives.
type DashToggler interface {
	EnableDash(enabled bool)
}

// DashEnabler turns the player's dash on or off on touch.
type DashEnabler struct {
	Enable bool
}

func (d DashEnabler) Touch(m DashToggler, byPlayer bool) bool {
	if !byPlayer || m == nil {
		return false
	}
	m.EnableDash(d.Enable)
	return true
}

// DeadZone kills what falls into it. The player goes back to its last safe
// ground; a possessable body loses its health, releasing its possessor at
// the body's spawn first.
type DeadZone struct{}

func (DeadZone) Enter(ch *character.Character, health *Health) {
	if ch == nil || !ch.Active() {
		return
	}
	if ch.Kind == character.KindPlayer {
		ch.Respawn()
		return
	}
	if ch.Possession.IsPossessed() {
		anchor := ch.SpawnAnchor()
		ch.Possession.Unpossess(possession.UnpossessOptions{ForceRespawn: &anchor})
	}
	if health != nil {
		health.Deplete()
	}
}

// LevelLoader starts the end of level sequence.
type LevelLoader interface {
	LoadNextLevel(forced input.Frame, levelID string)
}

// FinishLine ends the level when the player, or a body it drives, crosses.
type FinishLine struct {
	Level string
}

// ExitFrame is played while the level fades out.
var ExitFrame = input.Frame{Horizontal: 1}

func (f FinishLine) Cross(ch *character.Character, flow LevelLoader) bool {
	if ch == nil || flow == nil || !ch.Active() {
		return false
	}
	if ch.Kind != character.KindPlayer && !ch.Possession.IsPossessed() {
		return false
	}
	flow.LoadNextLevel(ExitFrame, f.Level)
	return true
}

// DefaultDownForce is the push, in px/s, of an anchor zone that sets none.
const DefaultDownForce = 600.0

// AnchorDown presses grounded bodies onto their surface for every tick they
// stay inside it, so they follow steps and crests instead of leaving the
// ground.
type AnchorDown struct {
	DownForce float64
}

// Hold pushes ch down on its next tick. Airborne bodies are left alone.
func (a AnchorDown) Hold(ch *character.Character) bool {
	if ch == nil || !ch.Active() || !ch.State().Grounded || a.DownForce <= 0 {
		return false
	}
	ch.AnchorDown(a.DownForce)
	return true
}
