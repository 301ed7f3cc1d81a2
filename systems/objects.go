package systems

import (
	"github.com/automoto/flapbird/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
	"github.com/yohamta/donburi/filter"
)

var objects = donburi.NewQuery(filter.Contains(components.Object, transform.Transform))

// UpdateObjects moves every collision object onto its entity's world position.
// Objects are centered on the entity.
func UpdateObjects(ecs *ecs.ECS) {
	objects.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Object == nil {
			return
		}
		pos := transform.WorldPosition(e)
		obj.X = pos.X - obj.W/2
		obj.Y = pos.Y - obj.H/2
		obj.Update()
	})
}

// removeObject takes the entry's collision object out of the space, if any.
func removeObject(world donburi.World, e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}
	if spaceEntry, ok := components.Space.First(world); ok {
		components.Space.Get(spaceEntry).Remove(obj.Object)
	}
	obj.Object = nil
}
