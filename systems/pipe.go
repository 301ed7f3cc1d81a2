package systems

import (
	"github.com/automoto/flapbird/components"
	cfg "github.com/automoto/flapbird/config"
	"github.com/automoto/flapbird/systems/factory"
	"github.com/automoto/flapbird/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

var pipeLog = log.WithPrefix("pipes")

// UpdatePipeSpawner spawns one obstacle group each time the spawn timer finishes.
func UpdatePipeSpawner(ecs *ecs.ECS) {
	spawner := GetSpawner(ecs)
	if spawner == nil {
		return
	}
	if !spawner.Timer.Tick(cfg.DeltaTime()) {
		return
	}

	group := factory.CreatePipe(ecs, spawner.Rng, true)
	spawner.Count++
	pipeLog.Debug("spawned group", "n", spawner.Count, "gap", components.Pipe.Get(group).Gap)
}

// UpdatePipeDespawner removes groups that have fully left the screen, along
// with their blocks and collision objects.
func UpdatePipeDespawner(ecs *ecs.ECS) {
	threshold := factory.PipeDespawnX()

	var toDestroy []*donburi.Entry
	tags.Pipe.Each(ecs.World, func(e *donburi.Entry) {
		if transform.WorldPosition(e).X < threshold {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		DestroyPipe(ecs.World, e)
	}
}

// DestroyPipe removes a group and everything parented under it.
func DestroyPipe(world donburi.World, group *donburi.Entry) {
	if !group.Valid() {
		return
	}
	for _, b := range components.Pipe.Get(group).Blocks {
		if !world.Valid(b) {
			continue
		}
		removeObject(world, world.Entry(b))
	}
	transform.RemoveRecursive(group)
}

// GetSpawner returns the singleton spawner, or nil before the run exists.
func GetSpawner(ecs *ecs.ECS) *components.SpawnerData {
	entry, ok := components.Spawner.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Spawner.Get(entry)
}
