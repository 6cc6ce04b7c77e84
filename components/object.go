package components

import (
	"github.com/automoto/haunt/collision"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's presence in the resolv space. Its Data field
// points back at the entry.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the level's collision space.
var Space = donburi.NewComponentType[collision.Space]()

// Surface is a wall, ramp or platform the bodies collide with.
var Surface = donburi.NewComponentType[collision.Surface]()
