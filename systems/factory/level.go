package factory

import (
	"github.com/automoto/haunt/archetypes"
	"github.com/automoto/haunt/components"
	"github.com/automoto/haunt/config"
	"github.com/automoto/haunt/flow"
	"github.com/automoto/haunt/input"
	"github.com/automoto/haunt/logging"
	"github.com/automoto/haunt/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// LevelOptions is what a level needs besides its map.
type LevelOptions struct {
	Tuning  *config.Tuning // Defaults to config.DefaultTuning
	DT      float64        // Seconds per tick
	Source  input.Source
	Changer flow.LevelChanger
	Logger  *zap.Logger
}

// CreateLevel spawns the level entity, its collision space and every
// entity placed in the map.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level, opts LevelOptions) *donburi.Entry {
	log := logging.OrNop(opts.Logger)
	t := opts.Tuning
	if t == nil {
		def := config.DefaultTuning()
		t = &def
	}

	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		CurrentLevel: level,
		DT:           opts.DT,
	})
	components.Flow.Set(entry, flow.New(t.Flow, opts.Changer, log))
	components.Input.SetValue(entry, components.InputData{Source: opts.Source, Frame: input.Neutral})

	CreateSpace(ecs, level.MapWidth, level.MapHeight, t)

	for _, s := range level.Solids {
		if s.SlopeType != "" {
			CreateSlopeWall(ecs, s.X, s.Y, s.W, s.H, s.SlopeType)
		} else {
			CreateWall(ecs, s.X, s.Y, s.W, s.H)
		}
	}
	for _, p := range level.Platforms {
		CreatePlatform(ecs, p)
	}
	for _, r := range level.DeadZones {
		CreateDeadZone(ecs, r)
	}
	for _, b := range level.Buttons {
		CreateButton(ecs, b, log)
	}
	for _, d := range level.DashEnablers {
		CreateDashEnabler(ecs, d)
	}
	for _, f := range level.FinishLines {
		CreateFinishLine(ecs, f)
	}
	for _, a := range level.AnchorDowns {
		CreateAnchorDown(ecs, a)
	}
	for _, a := range level.Walkers {
		CreateWalker(ecs, a, t, log)
	}
	for _, a := range level.Bouncers {
		CreateBouncer(ecs, a, t, log)
	}
	CreatePlayer(ecs, level.Spawn.X, level.Spawn.Y, t, log)

	log.Info("level created",
		zap.String("level", level.Name),
		zap.Int("solids", len(level.Solids)),
		zap.Int("walkers", len(level.Walkers)),
		zap.Int("bouncers", len(level.Bouncers)),
	)
	return entry
}
