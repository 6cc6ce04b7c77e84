package systems

import (
	"github.com/automoto/haunt/components"
	"github.com/automoto/haunt/input"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput samples the input source and gates it through the level
// flow. The source is polled every tick, even while controls are disabled,
// so edges are never stale when control comes back.
func UpdateInput(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	in := components.Input.Get(levelEntry)
	live := input.Neutral
	if in.Source != nil {
		live = in.Source.Next()
	}
	in.Frame = components.Flow.Get(levelEntry).Select(live)
}
