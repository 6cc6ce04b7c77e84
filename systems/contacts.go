package systems

import (
	"github.com/automoto/haunt/character"
	"github.com/automoto/haunt/components"
	"github.com/automoto/haunt/props"
	"github.com/automoto/haunt/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContacts queues a contact event for every trigger an active
// character overlaps. The player also gets one per possessable body.
func UpdateContacts(ecs *ecs.ECS) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		ch := components.Character.Get(e)
		contacts := components.Contacts.Get(e)
		if !ch.Active() {
			clear(contacts.Touching)
			return
		}

		checkTags := []string{tags.ResolvTrigger}
		if ch.Kind == character.KindPlayer {
			checkTags = append(checkTags, tags.ResolvPossessable)
		}

		touching := make(map[donburi.Entity]bool, len(contacts.Touching))
		for _, obj := range space.Overlapping(ch.Box(), checkTags...) {
			other, ok := obj.Data.(*donburi.Entry)
			if !ok || other == nil || other == e || !other.Valid() {
				continue
			}
			touching[other.Entity()] = true
			components.Contact.Publish(ecs.World, components.ContactEvent{
				Character: e,
				Other:     other,
				Entered:   !contacts.Touching[other.Entity()],
			})
		}
		contacts.Touching = touching
	})
}

// ProcessContacts drains the contact events queued this tick.
func ProcessContacts(ecs *ecs.ECS) {
	components.Contact.ProcessEvents(ecs.World)
}

// SubscribeContacts registers the contact handler on w. Call it once per
// world.
func SubscribeContacts(w donburi.World) {
	components.Contact.Subscribe(w, onContact)
}

func onContact(w donburi.World, ev components.ContactEvent) {
	if !ev.Character.Valid() || !ev.Other.Valid() {
		return
	}
	ch := components.Character.Get(ev.Character)
	if !ch.Active() {
		// Released or despawned by an earlier event this tick
		return
	}
	other := ev.Other
	byPlayer := ch.Kind == character.KindPlayer
	driven := byPlayer || ch.Possession.IsPossessed()

	switch {
	case other.HasComponent(components.Character):
		if byPlayer {
			ch.Possession.TakePossession(components.Character.Get(other).Possession)
		}
	case other.HasComponent(components.AnchorDown):
		// Holds for every tick of the overlap
		components.AnchorDown.Get(other).Hold(ch)
	case !ev.Entered:
		// Other triggers fire once per overlap
	case other.HasComponent(components.Button):
		components.Button.Get(other).Touch(driven)
	case other.HasComponent(components.DashEnabler):
		components.DashEnabler.Get(other).Touch(ch.Movement, byPlayer)
	case other.HasComponent(components.DeadZone):
		var health *props.Health
		if ev.Character.HasComponent(components.Health) {
			health = components.Health.Get(ev.Character)
		}
		components.DeadZone.Get(other).Enter(ch, health)
	case other.HasComponent(components.FinishLine):
		levelEntry, ok := components.Level.First(w)
		if !ok {
			return
		}
		components.FinishLine.Get(other).Cross(ch, components.Flow.Get(levelEntry))
	}
}
