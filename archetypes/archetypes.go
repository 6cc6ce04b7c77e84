package archetypes

import (
	"github.com/automoto/haunt/components"
	"github.com/automoto/haunt/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
		components.Flow,
		components.Input,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
		components.Surface,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Object,
		components.Surface,
	)
	MovingPlatform = newArchetype(
		tags.MovingPlatform,
		components.Object,
		components.Surface,
	)
	Player = newArchetype(
		tags.Player,
		components.Character,
		components.Object,
		components.Contacts,
	)
	Walker = newArchetype(
		tags.Walker,
		components.Character,
		components.Object,
		components.Contacts,
		components.Health,
	)
	Bouncer = newArchetype(
		tags.Bouncer,
		components.Character,
		components.Object,
		components.Contacts,
		components.Health,
	)
	Button = newArchetype(
		tags.Button,
		components.Button,
		components.Object,
	)
	DashEnabler = newArchetype(
		tags.DashEnabler,
		components.DashEnabler,
		components.Object,
	)
	DeadZone = newArchetype(
		tags.DeadZone,
		components.DeadZone,
		components.Object,
	)
	FinishLine = newArchetype(
		tags.FinishLine,
		components.FinishLine,
		components.Object,
	)
	AnchorDown = newArchetype(
		tags.AnchorDown,
		components.AnchorDown,
		components.Object,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.World.Create(
		append(a.components, cs...)...,
	))
	return e
}
