package archetypes

import (
	"github.com/automoto/flapbird/components"
	cfg "github.com/automoto/flapbird/config"
	"github.com/automoto/flapbird/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		transform.Transform,
		components.Movable,
		components.Object,
		components.Sprite,
		components.Animation,
		components.SquashStretch,
	)
	Pipe = newArchetype(
		tags.Pipe,
		components.Pipe,
		transform.Transform,
		components.Movable,
	)
	PipeBlock = newArchetype(
		tags.PipeBlock,
		components.PipeBlock,
		transform.Transform,
		components.Object,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
	GameState = newArchetype(
		components.GameState,
		components.Spawner,
		components.Score,
		components.Pause,
		components.Debug,
	)
	Input = newArchetype(
		components.Input,
	)
	Audio = newArchetype(
		components.Audio,
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
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
