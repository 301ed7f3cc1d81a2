package systems

import (
	"testing"

	"github.com/automoto/flapbird/components"
	cfg "github.com/automoto/flapbird/config"
	"github.com/automoto/flapbird/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
	"github.com/yohamta/donburi/filter"
)

// newTestWorld returns a world with the run singletons and collision space.
func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e)
	factory.CreateGameState(e, 1, 0)
	factory.CreateInput(e)
	factory.CreateAudio(e)
	return e
}

// newTestWorldWithPlayer adds the player at its start position.
func newTestWorldWithPlayer(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := newTestWorld(t)
	player := factory.CreatePlayer(e, cfg.Player.StartX, cfg.Player.StartY)
	return e, player
}

// press simulates a frame where action went down.
func press(e *ecs.ECS, action cfg.ActionID) {
	in := GetOrCreateInput(e)
	in.Advance()
	in.Press(action)
}

// idle simulates a frame with nothing held.
func idle(e *ecs.ECS) {
	GetOrCreateInput(e).Advance()
}

func setPosition(entry *donburi.Entry, x, y float64) {
	transform.Transform.Get(entry).LocalPosition = dmath.Vec2{X: x, Y: y}
}

func countEntries(e *ecs.ECS, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(e.World)
}

func spaceObjects(t *testing.T, e *ecs.ECS) int {
	t.Helper()
	entry, ok := components.Space.First(e.World)
	require.True(t, ok)
	return len(components.Space.Get(entry).Objects())
}

func queuedSounds(e *ecs.ECS) []cfg.SoundID {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return nil
	}
	return components.Audio.Get(entry).PendingSFX
}
