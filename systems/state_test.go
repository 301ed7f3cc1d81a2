package systems

import (
	"testing"

	"github.com/automoto/flapbird/components"
	cfg "github.com/automoto/flapbird/config"
	"github.com/automoto/flapbird/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

func TestWhilePlayingGatesOnStateAndPause(t *testing.T) {
	e := newTestWorld(t)
	calls := 0
	system := WhilePlaying(func(*ecs.ECS) { calls++ })

	system(e)
	assert.Equal(t, 0, calls)

	EnterPlaying(e)
	system(e)
	assert.Equal(t, 1, calls)

	GetOrCreatePause(e).IsPaused = true
	system(e)
	assert.Equal(t, 1, calls)

	GetOrCreatePause(e).IsPaused = false
	ExitPlaying(e)
	system(e)
	assert.Equal(t, 1, calls)
}

func TestEnterPlayingStartsExistingGroups(t *testing.T) {
	e, player := newTestWorldWithPlayer(t)
	group := factory.CreatePipeWithGap(e, cfg.Columns(), 2, false)
	GetSpawner(e).Timer.Tick(1.5)

	EnterPlaying(e)

	assert.True(t, IsPlaying(e))
	assert.Equal(t, 0.0, GetSpawner(e).Timer.Elapsed())
	assert.Equal(t, factory.PipeVelocity(), components.Movable.Get(group).Velocity)
	assert.Equal(t, factory.PlayerGravity(), components.Movable.Get(player).Acceleration)

	// Entering twice changes nothing
	GetSpawner(e).Timer.Tick(0.5)
	EnterPlaying(e)
	assert.InDelta(t, 0.5, GetSpawner(e).Timer.Elapsed(), 1e-9)
}

func TestExitPlayingRestsEverything(t *testing.T) {
	e, player := newTestWorldWithPlayer(t)
	EnterPlaying(e)
	group := factory.CreatePipeWithGap(e, cfg.Columns(), 2, true)
	press(e, cfg.ActionJump)
	UpdatePlayer(e)

	ExitPlaying(e)

	assert.False(t, IsPlaying(e))
	assert.Equal(t, cfg.StatePlaying, GetGameState(e).Previous)
	assert.Equal(t, components.MovableData{}, *components.Movable.Get(player))
	assert.Equal(t, components.MovableData{}, *components.Movable.Get(group))
}

func TestRunOverAfterDelay(t *testing.T) {
	e, player := newTestWorldWithPlayer(t)
	EnterPlaying(e)
	LosePlayer(e, player, LossDeadZone)
	require.False(t, RunOver(e))

	for i := 0; i < cfg.GameOver.DelayFrames-1; i++ {
		UpdateGameState(e)
	}
	assert.False(t, RunOver(e))

	UpdateGameState(e)
	assert.True(t, RunOver(e))
}

func TestJumpAfterLossDoesNotRestart(t *testing.T) {
	e, player := newTestWorldWithPlayer(t)
	EnterPlaying(e)
	LosePlayer(e, player, LossPipe)

	press(e, cfg.ActionJump)
	UpdateGameState(e)

	assert.False(t, IsPlaying(e))
	assert.Equal(t, 1, GetGameState(e).LostFrames)
}

func TestRunStats(t *testing.T) {
	e, player := newTestWorldWithPlayer(t)
	press(e, cfg.ActionJump)
	UpdateGameState(e)
	UpdatePlayer(e)
	for i := 0; i < 60; i++ {
		idle(e)
		UpdateGameState(e)
	}
	GetScore(e).Value = 3
	GetSpawner(e).Count = 4
	LosePlayer(e, player, LossPipe)

	st := RunStats(e)
	assert.Equal(t, 3, st.Score)
	assert.Equal(t, 1, st.Flaps)
	assert.Equal(t, 4, st.Pipes)
	assert.Equal(t, "pipe", st.Reason)
	assert.InDelta(t, 1.0, st.Duration.Seconds(), 1e-6)
}

func TestApplyTuningUpdatesLiveRun(t *testing.T) {
	saved := cfg.Current()
	t.Cleanup(func() { cfg.Apply(saved) })

	e, _ := newTestWorldWithPlayer(t)
	EnterPlaying(e)
	group := factory.CreatePipeWithGap(e, cfg.Columns(), 2, true)

	tuned := saved
	tuned.Pipe.Speed = 320
	tuned.Pipe.SpawnInterval = 1.25
	cfg.Apply(tuned)
	ApplyTuning(e)

	assert.Equal(t, -320.0, components.Movable.Get(group).Velocity.X)
	assert.Equal(t, 1.25, GetSpawner(e).Timer.Duration)
}
