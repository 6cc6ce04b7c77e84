package systems

import (
	"github.com/automoto/haunt/character"
	"github.com/automoto/haunt/components"
	"github.com/automoto/haunt/input"
	"github.com/automoto/haunt/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCharacters ticks the player first, then every other character.
// Only the character the player controls sees the tick's frame; the rest
// run on the neutral frame and their own behaviour.
func UpdateCharacters(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	frame := components.Input.Get(levelEntry).Frame

	var controlled *character.Character
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		player := components.Character.Get(playerEntry)
		controlled = player.Controlled()
		player.Tick(frameFor(player, controlled, frame), level.DT)
	}

	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(tags.Player) {
			return
		}
		ch := components.Character.Get(e)
		ch.Tick(frameFor(ch, controlled, frame), level.DT)
	})
}

func frameFor(ch, controlled *character.Character, frame input.Frame) input.Frame {
	if ch == controlled {
		return frame
	}
	return input.Neutral
}
