package factory

import (
	"math/rand"
	"time"

	"github.com/automoto/flapbird/archetypes"
	"github.com/automoto/flapbird/components"
	cfg "github.com/automoto/flapbird/config"
	"github.com/automoto/flapbird/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGameState creates the run singleton in the Passive state.
// A zero seed uses the current time.
func CreateGameState(ecs *ecs.ECS, seed int64, best int) *donburi.Entry {
	state := archetypes.GameState.Spawn(ecs)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	components.GameState.SetValue(state, components.GameStateData{
		Current:    cfg.StatePassive,
		Previous:   cfg.StatePassive,
		LostFrames: -1,
	})
	components.Spawner.SetValue(state, components.SpawnerData{
		Timer: gamemath.NewTimer(cfg.Pipe.SpawnInterval),
		Rng:   rand.New(rand.NewSource(seed)),
	})
	components.Score.SetValue(state, components.ScoreData{
		Best:  best,
		Scale: 1,
	})
	components.Debug.SetValue(state, components.DebugData{
		ShowHitboxes: cfg.Debug.ShowHitboxes,
	})
	return state
}

// CreateInput creates the input singleton.
func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(ecs)
}

// CreateAudio creates the sound queue singleton.
func CreateAudio(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Audio.Spawn(ecs)
}
