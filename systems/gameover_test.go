package systems

import (
	"testing"

	"github.com/automoto/flapbird/components"
	cfg "github.com/automoto/flapbird/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type sceneRecorder struct {
	scenes []interface{}
}

func (s *sceneRecorder) ChangeScene(scene interface{}) {
	s.scenes = append(s.scenes, scene)
}

func newGameOverWorld(t *testing.T) (*ecs.ECS, *sceneRecorder, *bool) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	changer := &sceneRecorder{}
	quit := false
	e.AddSystem(NewUpdateGameOver(changer, func() interface{} { return "world" }, func() { quit = true }))
	return e, changer, &quit
}

func TestGameOverIgnoresEarlyInput(t *testing.T) {
	e, changer, _ := newGameOverWorld(t)

	for i := 0; i < cfg.GameOver.InputDelayFrames; i++ {
		press(e, cfg.ActionMenuSelect)
		e.Update()
		idle(e)
	}
	assert.Empty(t, changer.scenes)

	press(e, cfg.ActionMenuSelect)
	e.Update()
	assert.Equal(t, []interface{}{"world"}, changer.scenes)
}

func TestGameOverExitQuits(t *testing.T) {
	e, changer, quit := newGameOverWorld(t)
	for i := 0; i < cfg.GameOver.InputDelayFrames; i++ {
		idle(e)
		e.Update()
	}

	press(e, cfg.ActionMenuDown)
	e.Update()
	assert.Equal(t, components.GameOverExit, GetOrCreateGameOver(e).SelectedOption)

	press(e, cfg.ActionMenuSelect)
	e.Update()
	assert.True(t, *quit)
	assert.Empty(t, changer.scenes)
}

func TestGameOverMenuWraps(t *testing.T) {
	e, _, _ := newGameOverWorld(t)
	for i := 0; i < cfg.GameOver.InputDelayFrames; i++ {
		idle(e)
		e.Update()
	}

	press(e, cfg.ActionMenuUp)
	e.Update()
	assert.Equal(t, components.GameOverExit, GetOrCreateGameOver(e).SelectedOption)

	idle(e)
	press(e, cfg.ActionMenuDown)
	e.Update()
	assert.Equal(t, components.GameOverRetry, GetOrCreateGameOver(e).SelectedOption)
}
