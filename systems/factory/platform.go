package factory

import (
	"github.com/automoto/haunt/archetypes"
	"github.com/automoto/haunt/components"
	"github.com/automoto/haunt/physics"
	"github.com/automoto/haunt/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreatePlatform creates a static or moving platform. A platform moves back
// and forth along (MoveX, MoveY) when it has a Duration.
func CreatePlatform(ecs *ecs.ECS, p leveldata.Platform) *donburi.Entry {
	r := physics.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
	travel := dmath.Vec2{X: p.MoveX, Y: p.MoveY}
	moving := p.Duration > 0 && (p.MoveX != 0 || p.MoveY != 0)

	var platform *donburi.Entry
	var duration float64
	if moving {
		platform = archetypes.MovingPlatform.Spawn(ecs)
		duration = p.Duration
	} else {
		platform = archetypes.Platform.Spawn(ecs)
	}

	surf := space(ecs).AddMover(r, travel, duration, !p.Solid)
	components.Object.SetValue(platform, components.ObjectData{Object: surf.Object})
	components.Surface.Set(platform, surf)
	return platform
}
