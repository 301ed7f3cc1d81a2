package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its broadphase collision object.
// The object mirrors the entity's world-space hitbox and is refreshed every tick.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton collision space covering the play field.
var Space = donburi.NewComponentType[resolv.Space]()
