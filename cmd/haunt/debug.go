package main

import (
	"fmt"
	"image/color"

	"github.com/automoto/haunt/components"
	"github.com/automoto/haunt/shared/gamemath"
	"github.com/automoto/haunt/sim"
	"github.com/automoto/haunt/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorSolid    = color.RGBA{100, 100, 100, 255}
	colorPlatform = color.RGBA{160, 120, 60, 255}
	colorPlayer   = color.RGBA{0, 0, 255, 255}
	colorBody     = color.RGBA{255, 0, 0, 255}
	colorTrigger  = color.RGBA{0, 255, 255, 255}
)

// drawWorld outlines every object in the space, centred on the character
// the player controls, then the fade cover and a status line.
func drawWorld(s *sim.Simulation, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	focus := s.Player().Controlled().Box()
	level := s.Level()
	camX := gamemath.Clamp(focus.CenterX(), float64(width)/2, float64(level.MapWidth)-float64(width)/2)
	camY := gamemath.Clamp(focus.CenterY(), float64(height)/2, float64(level.MapHeight)-float64(height)/2)
	offX := float64(width)/2 - camX
	offY := float64(height)/2 - camY

	spaceEntry, ok := components.Space.First(s.World())
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			if len(obj.Tags()) == 0 {
				// Query probe
				continue
			}
			c := colorTrigger
			switch {
			case obj.HasTags(tags.ResolvSolid) || obj.HasTags(tags.ResolvRamp):
				c = colorSolid
			case obj.HasTags(tags.ResolvPlatform):
				c = colorPlatform
			case obj.HasTags(tags.ResolvPlayer):
				c = colorPlayer
			case obj.HasTags(tags.ResolvPossessable):
				c = colorBody
			}
			x, y := float32(obj.X+offX), float32(obj.Y+offY)
			vector.StrokeRect(screen, x, y, float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	if o := s.Flow().Opacity(); o > 0 {
		vector.FillRect(screen, 0, 0, float32(width), float32(height), color.RGBA{A: uint8(o * 255)}, false)
	}

	p := s.Player()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  tick %d  %s  seek %v  dash %v",
		level.Name, s.Ticks(), p.Possession.State(), p.Possession.SeekMode(), p.Movement.DashEnabled()))
}
