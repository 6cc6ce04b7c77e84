package factory

import (
	"github.com/automoto/haunt/archetypes"
	"github.com/automoto/haunt/character"
	"github.com/automoto/haunt/components"
	"github.com/automoto/haunt/config"
	"github.com/automoto/haunt/possession"
	"github.com/automoto/haunt/props"
	"github.com/automoto/haunt/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64, t *config.Tuning, log *zap.Logger) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	ch := character.New(characterOptions(ecs, character.KindPlayer, "player", x, y, &t.Player, t, log))
	attach(player, ch)
	return player
}

func CreateWalker(ecs *ecs.ECS, a leveldata.Actor, t *config.Tuning, log *zap.Logger) *donburi.Entry {
	walker := archetypes.Walker.Spawn(ecs)
	opts := characterOptions(ecs, character.KindWalker, a.Name, a.X, a.Y, &t.Walker, t, log)
	opts.Respawn = respawnPoint(a)
	ch := character.New(opts)
	attach(walker, ch)
	components.Health.Set(walker, props.NewHealth(t.Walker.Health, log))
	return walker
}

func CreateBouncer(ecs *ecs.ECS, a leveldata.Actor, t *config.Tuning, log *zap.Logger) *donburi.Entry {
	bouncer := archetypes.Bouncer.Spawn(ecs)
	opts := characterOptions(ecs, character.KindBouncer, a.Name, a.X, a.Y, &t.Bouncer, t, log)
	opts.Respawn = respawnPoint(a)
	ch := character.New(opts)
	attach(bouncer, ch)
	components.Health.Set(bouncer, props.NewHealth(t.Bouncer.Health, log))
	return bouncer
}

func characterOptions(ecs *ecs.ECS, kind character.Kind, name string, x, y float64, cfg *config.CharacterConfig, t *config.Tuning, log *zap.Logger) character.Options {
	return character.Options{
		Kind:       kind,
		Name:       name,
		Space:      space(ecs),
		Position:   dmath.Vec2{X: x, Y: y},
		Config:     cfg,
		Physics:    &t.Physics,
		Bounce:     &t.Bounce,
		Patrol:     &t.Patrol,
		Possession: &t.Possession,
		Logger:     log,
	}
}

func respawnPoint(a leveldata.Actor) *possession.RespawnPoint {
	if a.Respawn == nil {
		return nil
	}
	return &possession.RespawnPoint{Offset: dmath.Vec2{X: a.Respawn.X, Y: a.Respawn.Y}}
}

// attach links the character's resolv object back to its entry for
// contact lookups.
func attach(e *donburi.Entry, ch *character.Character) {
	ch.Object.Data = e
	components.Character.Set(e, ch)
	components.Object.SetValue(e, components.ObjectData{Object: ch.Object})
	components.Contacts.SetValue(e, components.ContactsData{Touching: map[donburi.Entity]bool{}})
}
