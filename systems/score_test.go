package systems

import (
	"testing"

	cfg "github.com/automoto/flapbird/config"
	"github.com/automoto/flapbird/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestScoreCountsEachGroupOnce(t *testing.T) {
	e, _ := newTestWorldWithPlayer(t)
	group := factory.CreatePipeWithGap(e, cfg.Columns(), 3, false)

	setPosition(group, cfg.Player.StartX+0.5, 0)
	UpdateScore(e)
	assert.Equal(t, 0, CurrentScore(e))

	setPosition(group, cfg.Player.StartX, 0)
	UpdateScore(e)
	assert.Equal(t, 1, CurrentScore(e))

	setPosition(group, 100, 0)
	UpdateScore(e)
	UpdateScore(e)
	assert.Equal(t, 1, CurrentScore(e))
	assert.Contains(t, queuedSounds(e), cfg.SoundScore)
}

func TestScoreCountsSeveralGroupsInOneTick(t *testing.T) {
	e, _ := newTestWorldWithPlayer(t)
	a := factory.CreatePipeWithGap(e, cfg.Columns(), 0, false)
	b := factory.CreatePipeWithGap(e, cfg.Columns(), 5, false)
	setPosition(a, 500, 0)
	setPosition(b, 600, 0)

	UpdateScore(e)

	assert.Equal(t, 2, CurrentScore(e))
}

func TestScoreNeedsPlayer(t *testing.T) {
	e := newTestWorld(t)
	group := factory.CreatePipeWithGap(e, cfg.Columns(), 0, false)
	setPosition(group, 0, 0)

	UpdateScore(e)

	assert.Equal(t, 0, CurrentScore(e))
}

func TestScorePopEasesBack(t *testing.T) {
	e, _ := newTestWorldWithPlayer(t)
	group := factory.CreatePipeWithGap(e, cfg.Columns(), 0, false)
	setPosition(group, 0, 0)
	UpdateScore(e)

	score := GetScore(e)
	assert.NotNil(t, score.Pop)

	for i := 0; i < 60; i++ {
		UpdateScorePop(e)
	}
	assert.Nil(t, score.Pop)
	assert.Equal(t, 1.0, score.Scale)
}
