package factory

import (
	"github.com/automoto/haunt/archetypes"
	"github.com/automoto/haunt/collision"
	"github.com/automoto/haunt/components"
	"github.com/automoto/haunt/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	surf := space(ecs).AddSolid(physics.Rect{X: x, Y: y, W: w, H: h})
	return spawnSurface(ecs, surf)
}

// CreateSlopeWall creates a ramp tile. The surface height is computed from
// the tile bounds by the collision space.
func CreateSlopeWall(ecs *ecs.ECS, x, y, w, h float64, slopeType string) *donburi.Entry {
	surf := space(ecs).AddRamp(physics.Rect{X: x, Y: y, W: w, H: h}, slopeType)
	return spawnSurface(ecs, surf)
}

// spawnSurface keeps the resolv object's Data on the surface; the collision
// space reads it back during contact queries.
func spawnSurface(ecs *ecs.ECS, surf *collision.Surface) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	components.Object.SetValue(wall, components.ObjectData{Object: surf.Object})
	components.Surface.Set(wall, surf)
	return wall
}
