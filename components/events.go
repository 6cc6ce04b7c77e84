package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ContactEvent is queued for every overlap between an active character and
// a trigger or another character. Entered is set on the first tick of the
// overlap. Events are drained once per tick by ProcessContacts.
type ContactEvent struct {
	Character *donburi.Entry
	Other     *donburi.Entry
	Entered   bool
}

var Contact = events.NewEventType[ContactEvent]()
