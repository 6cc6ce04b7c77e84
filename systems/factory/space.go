package factory

import (
	"github.com/automoto/haunt/archetypes"
	"github.com/automoto/haunt/collision"
	"github.com/automoto/haunt/components"
	"github.com/automoto/haunt/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height int, t *config.Tuning) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := collision.NewSpace(width, height, t.Physics.CellSize, t.Filters, t.Physics)
	components.Space.Set(space, spaceData)
	return space
}

// space returns the level's collision space. Factories need it to exist.
func space(ecs *ecs.ECS) *collision.Space {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		panic("factory: no collision space, call CreateSpace first")
	}
	return components.Space.Get(spaceEntry)
}
