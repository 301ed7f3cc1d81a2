package components

import (
	"math/rand"

	cfg "github.com/automoto/flapbird/config"
	"github.com/automoto/flapbird/gamemath"
	"github.com/yohamta/donburi"
)

// GameStateData is the singleton run state.
type GameStateData struct {
	Current  cfg.GameStateID
	Previous cfg.GameStateID

	// Frames since the player was removed; -1 while the player is alive
	LostFrames int
	LostReason string

	PlayTicks int // ticks spent Playing, excluding pauses
	Flaps     int
}

var GameState = donburi.NewComponentType[GameStateData]()

// SpawnerData drives obstacle generation.
type SpawnerData struct {
	Timer gamemath.Timer
	Rng   *rand.Rand
	Count int // groups spawned this run
}

var Spawner = donburi.NewComponentType[SpawnerData]()

// DebugData holds debug overlay toggles.
type DebugData struct {
	ShowHitboxes bool
}

var Debug = donburi.NewComponentType[DebugData]()
