package systems

import (
	"time"

	"github.com/automoto/flapbird/components"
	cfg "github.com/automoto/flapbird/config"
	"github.com/automoto/flapbird/systems/factory"
	"github.com/automoto/flapbird/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var stateLog = log.WithPrefix("state")

// UpdateGameState starts a run on the first jump and counts frames after a loss.
// Must run after UpdateInput and before the gameplay systems.
func UpdateGameState(ecs *ecs.ECS) {
	state := GetGameState(ecs)
	if state == nil {
		return
	}

	if state.LostFrames >= 0 {
		state.LostFrames++
		return
	}
	if state.Current == cfg.StatePlaying {
		state.PlayTicks++
	}

	if state.Current == cfg.StatePassive && JustPressed(ecs, cfg.ActionJump) {
		EnterPlaying(ecs)
	}
}

// EnterPlaying switches to Playing: the spawn timer restarts, the player gets
// gravity and any existing groups start scrolling.
func EnterPlaying(ecs *ecs.ECS) {
	state := GetGameState(ecs)
	if state == nil || state.Current == cfg.StatePlaying {
		return
	}
	state.Previous = state.Current
	state.Current = cfg.StatePlaying

	if spawner := GetSpawner(ecs); spawner != nil {
		spawner.Timer.Reset()
	}

	if player, ok := GetPlayer(ecs.World); ok {
		components.Movable.Get(player).Acceleration = factory.PlayerGravity()
	}
	tags.Pipe.Each(ecs.World, func(e *donburi.Entry) {
		components.Movable.Get(e).SetVelocity(factory.PipeVelocity())
	})

	stateLog.Debug("transition", "from", state.Previous, "to", state.Current)
}

// ExitPlaying switches back to Passive and brings every Movable to rest.
func ExitPlaying(ecs *ecs.ECS) {
	state := GetGameState(ecs)
	if state == nil || state.Current != cfg.StatePlaying {
		return
	}
	state.Previous = state.Current
	state.Current = cfg.StatePassive

	RestAllMovables(ecs.World)

	stateLog.Debug("transition", "from", state.Previous, "to", state.Current)
}

// IsPlaying reports whether the run is in the Playing state.
func IsPlaying(ecs *ecs.ECS) bool {
	state := GetGameState(ecs)
	return state != nil && state.Current == cfg.StatePlaying
}

// RunOver reports whether the game over delay after a loss has elapsed.
func RunOver(ecs *ecs.ECS) bool {
	state := GetGameState(ecs)
	return state != nil && state.LostFrames >= cfg.GameOver.DelayFrames
}

// WhilePlaying wraps a system to run only while Playing and not paused.
func WhilePlaying(system ecs.System) ecs.System {
	return WithPauseCheck(func(e *ecs.ECS) {
		if !IsPlaying(e) {
			return
		}
		system(e)
	})
}

// GetGameState returns the singleton game state, or nil before the run exists.
func GetGameState(ecs *ecs.ECS) *components.GameStateData {
	entry, ok := components.GameState.First(ecs.World)
	if !ok {
		return nil
	}
	return components.GameState.Get(entry)
}

// Stats summarises a run for the game over screen and the run history.
type Stats struct {
	Score    int
	Best     int
	Flaps    int
	Pipes    int
	Reason   string
	Duration time.Duration
}

// RunStats collects the current run's statistics.
func RunStats(ecs *ecs.ECS) Stats {
	var st Stats
	if score := GetScore(ecs); score != nil {
		st.Score = score.Value
		st.Best = score.Best
	}
	if spawner := GetSpawner(ecs); spawner != nil {
		st.Pipes = spawner.Count
	}
	if state := GetGameState(ecs); state != nil {
		st.Flaps = state.Flaps
		st.Reason = state.LostReason
		st.Duration = time.Duration(float64(state.PlayTicks) * cfg.DeltaTime() * float64(time.Second))
	}
	return st
}

// ApplyTuning pushes reloaded tuning values into live run state.
func ApplyTuning(ecs *ecs.ECS) {
	if spawner := GetSpawner(ecs); spawner != nil {
		spawner.Timer.Duration = cfg.Pipe.SpawnInterval
	}
	if player, ok := GetPlayer(ecs.World); ok && IsPlaying(ecs) {
		components.Movable.Get(player).Acceleration = factory.PlayerGravity()
	}
	tags.Pipe.Each(ecs.World, func(e *donburi.Entry) {
		if IsPlaying(ecs) {
			components.Movable.Get(e).SetVelocity(factory.PipeVelocity())
		}
	})
}
