package components

import (
	"github.com/automoto/haunt/character"
	"github.com/yohamta/donburi"
)

var Character = donburi.NewComponentType[character.Character]()

// ContactsData remembers which trigger entities a character overlapped on
// the previous tick, so contacts are reported on enter only.
type ContactsData struct {
	Touching map[donburi.Entity]bool
}

var Contacts = donburi.NewComponentType[ContactsData]()
