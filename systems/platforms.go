package systems

import (
	"github.com/automoto/haunt/components"
	"github.com/automoto/haunt/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms moves every moving platform along its path. Bodies
// standing on one pick up its displacement during their own step.
func UpdatePlatforms(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	dt := components.Level.Get(levelEntry).DT
	tags.MovingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		components.Surface.Get(e).Advance(dt)
	})
}
