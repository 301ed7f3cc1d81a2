package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/flapbird/components"
	cfg "github.com/automoto/flapbird/config"
	"github.com/automoto/flapbird/systems"
	"github.com/automoto/flapbird/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Result is the outcome of a finished run.
type Result struct {
	Score   int
	Best    int
	NewBest bool
}

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *Session
	result       Result
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, session *Session, result Result) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, session: session, result: result}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	createWorldScene := func() interface{} {
		return NewWorldScene(gs.sceneChanger, gs.session)
	}
	quit := gs.session.Quit
	if quit == nil {
		quit = func() {}
	}

	gs.ecs.AddSystem(systems.UpdateAudio)
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createWorldScene, quit))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	factory.CreateInput(gs.ecs)
	factory.CreateAudio(gs.ecs)
	gameOver := systems.GetOrCreateGameOver(gs.ecs)
	*gameOver = components.GameOverData{
		SelectedOption: components.GameOverRetry,
		Score:          gs.result.Score,
		Best:           gs.result.Best,
		NewBest:        gs.result.NewBest,
	}
}
