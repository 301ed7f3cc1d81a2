package scenes

import (
	"context"
	"image/color"
	"sync"
	"time"

	cfg "github.com/automoto/flapbird/config"
	"github.com/automoto/flapbird/storage"
	"github.com/automoto/flapbird/systems"
	"github.com/automoto/flapbird/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var worldLog = log.WithPrefix("world")

// WorldScene runs one game: waiting in Passive, then Playing until the bird is lost.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *Session
	seed         int64
	once         sync.Once
	finished     bool
}

// NewWorldScene creates a new world scene
func NewWorldScene(sc SceneChanger, session *Session) *WorldScene {
	return &WorldScene{sceneChanger: sc, session: session}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.pollTuning()
	ws.ecs.Update()

	if !ws.finished && systems.RunOver(ws.ecs) {
		ws.finished = true
		result := ws.finish()
		ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger, ws.session, result))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	systems.PreloadAllSFX()

	ws.seed = ws.session.Seed
	if ws.seed == 0 {
		ws.seed = time.Now().UnixNano()
	}
	ws.ecs = NewWorldECS(systems.UpdateInput, ws.seed, systems.LoadBestScore())
	ws.ecs.AddSystem(systems.UpdateAudio)

	ws.ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawPause)

	if cfg.Debug.SkipMenu {
		systems.EnterPlaying(ws.ecs)
	}
	worldLog.Debug("run ready", "seed", ws.seed)
}

// NewWorldECS builds the game world with every gameplay system registered and
// the run singletons, collision space and player created. pollInput fills the
// Input component each tick. Sound playback is left to the caller.
func NewWorldECS(pollInput ecs.System, seed int64, best int) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(pollInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateMuteToggle)
	e.AddSystem(systems.UpdateDebug)

	// The state machine runs before anything it gates
	e.AddSystem(systems.WithPauseCheck(systems.UpdateGameState))
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))

	// Gameplay systems
	e.AddSystem(systems.WhilePlaying(systems.UpdateMovement))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateObjects))
	e.AddSystem(systems.WhilePlaying(systems.UpdatePlayerCollisions))
	e.AddSystem(systems.WhilePlaying(systems.UpdateScore))
	e.AddSystem(systems.WhilePlaying(systems.UpdatePipeSpawner))
	e.AddSystem(systems.WhilePlaying(systems.UpdatePipeDespawner))

	// Presentation
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePlayerSprite))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateScorePop))

	factory.CreateSpace(e)
	factory.CreateGameState(e, seed, best)
	factory.CreateInput(e)
	factory.CreateAudio(e)
	factory.CreatePlayer(e, cfg.Player.StartX, cfg.Player.StartY)

	return e
}

// pollTuning applies a reloaded tuning file between frames.
func (ws *WorldScene) pollTuning() {
	w := ws.session.Watcher
	if w == nil {
		return
	}
	if err := w.PollError(); err != nil {
		worldLog.Warn("tuning reload failed", "err", err)
	}
	t, ok := w.Poll()
	if !ok {
		return
	}
	ws.applyTuning(t)
}

// applyTuning makes t active for the running world. Size, tick rate and cell
// size stay as they were at startup.
func (ws *WorldScene) applyTuning(t cfg.Tuning) {
	t, pinned := t.KeepStartup(cfg.Current())
	if pinned {
		worldLog.Warn("game size, tps and cellSize changes need a restart")
	}
	cfg.Apply(t)
	systems.ApplyTuning(ws.ecs)
	worldLog.Info("tuning reloaded")
}

// finish records the run and returns its result for the game over screen.
func (ws *WorldScene) finish() Result {
	stats := systems.RunStats(ws.ecs)
	result := Result{
		Score:   stats.Score,
		Best:    stats.Best,
		NewBest: systems.SaveBestScore(stats.Score),
	}
	if result.NewBest {
		result.Best = stats.Score
	}

	if ws.session.Runs != nil {
		run := storage.NewRun(stats.Score, stats.Flaps, stats.Pipes, stats.Reason, ws.seed, stats.Duration)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := ws.session.Runs.Record(ctx, run); err != nil {
			worldLog.Warn("could not record run", "err", err)
		}
	}

	worldLog.Info("run over", "score", result.Score, "best", result.Best, "reason", stats.Reason)
	return result
}
