// Command haunt plays the levels in a window with keyboard or gamepad
// input. Everything is drawn as debug boxes.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/automoto/haunt/assets"
	"github.com/automoto/haunt/config"
	"github.com/automoto/haunt/input"
	"github.com/automoto/haunt/input/ebitendevice"
	"github.com/automoto/haunt/logging"
	"github.com/automoto/haunt/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

const (
	screenWidth  = 480
	screenHeight = 270
)

type Game struct {
	bounds image.Rectangle
	loop   *sim.GameLoop
	done   bool
}

func NewGame(loop *sim.GameLoop) *Game {
	return &Game{loop: loop}
}

func (g *Game) Update() error {
	if g.done {
		return ebiten.Termination
	}
	g.done = !g.loop.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawWorld(g.loop.Simulation(), screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, screenWidth, screenHeight)
	return screenWidth, screenHeight
}

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	level := flag.String("level", settings.Level, "Level to start on (empty = first)")
	tuning := flag.String("tuning", settings.Tuning, "YAML tuning overrides")
	flag.Parse()

	log, err := logging.New(settings.LogLevel, settings.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync() //nolint:errcheck

	t := config.DefaultTuning()
	if *tuning != "" {
		if t, err = config.LoadTuningFile(*tuning); err != nil {
			log.Fatal("load tuning", zap.Error(err))
		}
	}

	levels, names, err := assets.LoadLevels()
	if err != nil {
		log.Fatal("load levels", zap.Error(err))
	}
	campaign := sim.NewCampaign(levels, names, sim.Options{
		Tuning:   &t,
		TickRate: settings.TickRate,
		Source:   input.NewSampler(ebitendevice.NewKeyboard(), ebitendevice.NewGamepads()),
		Logger:   log,
		Intro:    true,
	})
	first, err := campaign.Start(*level)
	if err != nil {
		log.Fatal("start level", zap.Error(err))
	}
	loop := sim.NewGameLoop(first, settings.TickRate, campaign.Next, log)

	ebiten.SetTPS(settings.TickRate)
	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("haunt")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(loop)); err != nil {
		log.Fatal("run game", zap.Error(err))
	}
}
