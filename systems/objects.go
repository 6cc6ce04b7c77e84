package systems

import (
	"github.com/automoto/haunt/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes every object's cells in the space. Objects of
// inactive characters are out of the space and left alone by resolv.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
