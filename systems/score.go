package systems

import (
	"github.com/automoto/flapbird/components"
	cfg "github.com/automoto/flapbird/config"
	"github.com/automoto/flapbird/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
	"github.com/yohamta/donburi/filter"
)

var unscoredPipes = donburi.NewQuery(filter.And(
	filter.Contains(tags.Pipe, transform.Transform),
	filter.Not(filter.Contains(tags.ScoreCounted)),
))

// UpdateScore counts every group whose position has reached the player's,
// once per group.
func UpdateScore(ecs *ecs.ECS) {
	player, ok := GetPlayer(ecs.World)
	if !ok {
		return
	}
	score := GetScore(ecs)
	if score == nil {
		return
	}
	px := transform.WorldPosition(player).X

	var passed []*donburi.Entry
	unscoredPipes.Each(ecs.World, func(e *donburi.Entry) {
		if transform.WorldPosition(e).X <= px {
			passed = append(passed, e)
		}
	})

	for _, e := range passed {
		e.AddComponent(tags.ScoreCounted)
		score.Value++
		score.Pop = gween.New(float32(cfg.Score.PopScale), 1, float32(cfg.Score.PopDuration), ease.OutQuad)
		PlaySFX(ecs, cfg.SoundScore)
	}
}

// UpdateScorePop eases the counter scale back after an increment.
func UpdateScorePop(ecs *ecs.ECS) {
	score := GetScore(ecs)
	if score == nil || score.Pop == nil {
		return
	}
	scale, done := score.Pop.Update(float32(cfg.DeltaTime()))
	score.Scale = float64(scale)
	if done {
		score.Pop = nil
		score.Scale = 1
	}
}

// GetScore returns the singleton score, or nil before the run exists.
func GetScore(ecs *ecs.ECS) *components.ScoreData {
	entry, ok := components.Score.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Score.Get(entry)
}

// CurrentScore returns the score value, 0 when there is no run.
func CurrentScore(ecs *ecs.ECS) int {
	if score := GetScore(ecs); score != nil {
		return score.Value
	}
	return 0
}
