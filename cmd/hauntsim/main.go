// Command hauntsim plays levels headless, driven by a scripted input file.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/haunt/assets"
	"github.com/automoto/haunt/config"
	"github.com/automoto/haunt/input"
	"github.com/automoto/haunt/logging"
	"github.com/automoto/haunt/shared/leveldata"
	"github.com/automoto/haunt/sim"
	"go.uber.org/zap"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	tickRate := flag.Int("tickrate", settings.TickRate, "Simulation ticks per second")
	levelsDir := flag.String("levels", settings.LevelsDir, "Directory of .tmx levels (empty = bundled levels)")
	level := flag.String("level", settings.Level, "Level to start on (empty = first)")
	tuning := flag.String("tuning", settings.Tuning, "YAML tuning overrides")
	script := flag.String("script", settings.Script, "YAML input script")
	ticks := flag.Int("ticks", settings.Ticks, "Ticks to run before stopping")
	realtime := flag.Bool("realtime", false, "Tick at the tick rate instead of as fast as possible")
	intro := flag.Bool("intro", true, "Play the level start fade")
	flag.Parse()

	log, err := logging.New(settings.LogLevel, settings.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync() //nolint:errcheck

	if err := run(log, options{
		tickRate:  *tickRate,
		levelsDir: *levelsDir,
		level:     *level,
		tuning:    *tuning,
		script:    *script,
		ticks:     *ticks,
		realtime:  *realtime,
		intro:     *intro,
	}); err != nil {
		log.Error("hauntsim failed", zap.Error(err))
		os.Exit(1)
	}
}

type options struct {
	tickRate  int
	levelsDir string
	level     string
	tuning    string
	script    string
	ticks     int
	realtime  bool
	intro     bool
}

func run(log *zap.Logger, o options) error {
	if o.tickRate <= 0 {
		o.tickRate = sim.DefaultTickRate
	}
	levels, names, err := loadLevels(o.levelsDir)
	if err != nil {
		return err
	}

	t := config.DefaultTuning()
	if o.tuning != "" {
		if t, err = config.LoadTuningFile(o.tuning); err != nil {
			return err
		}
	}

	var devices []input.Device
	if o.script != "" {
		sc, err := loadScript(o.script)
		if err != nil {
			return err
		}
		devices = append(devices, sc)
	}

	campaign := sim.NewCampaign(levels, names, sim.Options{
		Tuning:   &t,
		TickRate: o.tickRate,
		Source:   input.NewSampler(devices...),
		Logger:   log,
		Intro:    o.intro,
	})
	first, err := campaign.Start(o.level)
	if err != nil {
		return err
	}
	loop := sim.NewGameLoop(first, o.tickRate, campaign.Next, log)

	if o.realtime {
		runRealtime(loop, time.Duration(o.ticks)*time.Second/time.Duration(o.tickRate))
	} else {
		for i := 0; i < o.ticks; i++ {
			if !loop.Step() {
				break
			}
		}
	}

	s := loop.Simulation()
	p := s.Player().State()
	log.Info("simulation finished",
		zap.String("session", loop.Session()),
		zap.String("level", s.Level().Name),
		zap.Uint64("ticks", s.Ticks()),
		zap.Float64("playerX", p.Position.X),
		zap.Float64("playerY", p.Position.Y),
		zap.Bool("grounded", p.Grounded),
		zap.Stringer("possession", s.Player().Possession.State()),
	)
	return nil
}

// runRealtime runs the loop on its ticker until d has passed or the loop
// stops. An interrupt stops it early.
func runRealtime(loop *sim.GameLoop, d time.Duration) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	done := make(chan struct{})
	go func() {
		loop.Run()
		close(done)
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-sigChan:
	case <-timer.C:
	case <-done:
	}
	loop.Stop()
	<-done
}

func loadLevels(dir string) (map[string]*leveldata.Level, []string, error) {
	if dir == "" {
		return assets.LoadLevels()
	}
	var fsys fs.FS = os.DirFS(dir)
	return leveldata.LoadAllLevels(fsys, ".")
}

func loadScript(path string) (*input.Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	return input.LoadScript(f)
}
