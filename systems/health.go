package systems

import (
	"github.com/automoto/haunt/components"
	"github.com/automoto/haunt/possession"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHealth removes characters whose health ran out. A possessor still
// riding one is released at the body's spawn first.
func UpdateHealth(ecs *ecs.ECS) {
	var dead []*donburi.Entry
	for e := range components.Health.Iter(ecs.World) {
		if components.Health.Get(e).Depleted() {
			dead = append(dead, e)
		}
	}

	for _, e := range dead {
		if e.HasComponent(components.Character) {
			ch := components.Character.Get(e)
			if ch.Possession.IsPossessed() {
				anchor := ch.SpawnAnchor()
				ch.Possession.Unpossess(possession.UnpossessOptions{ForceRespawn: &anchor})
			}
			ch.SetActive(false)
		}
		ecs.World.Remove(e.Entity())
	}
}
