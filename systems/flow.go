package systems

import (
	"github.com/automoto/haunt/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFlow advances the level fades.
func UpdateFlow(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	dt := components.Level.Get(levelEntry).DT
	components.Flow.Get(levelEntry).Update(dt)
}
