// Package sim assembles a level into a donburi world and steps it at a
// fixed rate.
package sim

import (
	"errors"
	"fmt"

	"github.com/automoto/haunt/character"
	"github.com/automoto/haunt/components"
	"github.com/automoto/haunt/config"
	"github.com/automoto/haunt/flow"
	"github.com/automoto/haunt/input"
	"github.com/automoto/haunt/logging"
	"github.com/automoto/haunt/shared/leveldata"
	"github.com/automoto/haunt/systems"
	"github.com/automoto/haunt/systems/factory"
	"github.com/automoto/haunt/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const DefaultTickRate = 60

var ErrNoLevel = errors.New("no level")

type Options struct {
	Tuning   *config.Tuning // Defaults to config.DefaultTuning
	TickRate int            // Ticks per second, defaults to DefaultTickRate
	Source   input.Source   // Nil plays the neutral frame
	Logger   *zap.Logger

	// Intro plays the level start sequence: controls stay off and
	// IntroFrame is fed until the fade in finishes.
	Intro      bool
	IntroFrame input.Frame
}

// Simulation is one level running in its own world.
type Simulation struct {
	ecs        *ecs.ECS
	level      *leveldata.Level
	levelEntry *donburi.Entry
	player     *character.Character
	tuning     config.Tuning
	dt         float64
	log        *zap.Logger

	ticks     uint64
	requested string
	requestOK bool
}

func New(level *leveldata.Level, opts Options) (*Simulation, error) {
	if level == nil {
		return nil, ErrNoLevel
	}
	t := config.DefaultTuning()
	if opts.Tuning != nil {
		t = *opts.Tuning
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", level.Name, err)
	}
	rate := opts.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	log := logging.OrNop(opts.Logger)

	s := &Simulation{
		level:  level,
		tuning: t,
		dt:     1 / float64(rate),
		log:    log.With(zap.String("level", level.Name)),
	}
	s.ecs = ecs.NewECS(donburi.NewWorld())
	s.configure(opts)

	if opts.Intro {
		s.Flow().StartLevel(opts.IntroFrame)
	}
	return s, nil
}

func (s *Simulation) configure(opts Options) {
	systems.SubscribeContacts(s.ecs.World)

	s.ecs.AddSystem(systems.UpdateFlow)
	s.ecs.AddSystem(systems.UpdatePlatforms)
	s.ecs.AddSystem(systems.UpdateInput)
	s.ecs.AddSystem(systems.UpdateCharacters)
	s.ecs.AddSystem(systems.UpdateObjects)
	s.ecs.AddSystem(systems.UpdateContacts)
	s.ecs.AddSystem(systems.ProcessContacts)
	s.ecs.AddSystem(systems.UpdateHealth)

	s.levelEntry = factory.CreateLevel(s.ecs, s.level, factory.LevelOptions{
		Tuning:  &s.tuning,
		DT:      s.dt,
		Source:  opts.Source,
		Changer: s,
		Logger:  s.log,
	})
	if playerEntry, ok := tags.Player.First(s.ecs.World); ok {
		s.player = components.Character.Get(playerEntry)
	}
}

// Tick advances the world by one fixed step.
func (s *Simulation) Tick() {
	s.ecs.Update()
	s.ticks++
}

// RequestLevelTransition records the level the flow asked for. The caller
// driving the simulation decides when to swap it.
func (s *Simulation) RequestLevelTransition(levelID string) {
	s.requested, s.requestOK = levelID, true
	s.log.Info("level transition requested", zap.String("next", levelID), zap.Uint64("tick", s.ticks))
}

// RequestedLevel returns the pending level transition, if any. An empty id
// means the next level in order.
func (s *Simulation) RequestedLevel() (string, bool) {
	return s.requested, s.requestOK
}

func (s *Simulation) Player() *character.Character {
	return s.player
}

func (s *Simulation) Flow() *flow.Controller {
	return components.Flow.Get(s.levelEntry)
}

// Frame is the input the controlled character saw on the last tick.
func (s *Simulation) Frame() input.Frame {
	return components.Input.Get(s.levelEntry).Frame
}

func (s *Simulation) Level() *leveldata.Level {
	return s.level
}

func (s *Simulation) World() donburi.World {
	return s.ecs.World
}

func (s *Simulation) ECS() *ecs.ECS {
	return s.ecs
}

func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

// DT is the length of one tick in seconds.
func (s *Simulation) DT() float64 {
	return s.dt
}

// Characters returns every character still in the world.
func (s *Simulation) Characters() []*character.Character {
	var out []*character.Character
	for e := range components.Character.Iter(s.ecs.World) {
		out = append(out, components.Character.Get(e))
	}
	return out
}
