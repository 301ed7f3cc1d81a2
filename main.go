// flapbird is a Flappy Bird style arcade game.
//
// Usage:
//
//	flapbird             - Play
//	flapbird scores      - Show the run history
package main

import (
	"context"
	"fmt"

	"github.com/automoto/flapbird/config"
	"github.com/automoto/flapbird/fonts"
	"github.com/automoto/flapbird/scenes"
	"github.com/automoto/flapbird/storage"
	"github.com/automoto/flapbird/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagSeed     int64
	flagConfig   string
	flagWatch    bool
	flagSkipMenu bool
	flagHitboxes bool
	flagDBPath   string
	flagLogLevel string
	flagMute     bool
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
	quit  bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(session *scenes.Session) *Game {
	g := &Game{}
	session.Quit = func() { g.quit = true }
	g.scene = scenes.NewWorldScene(g, session)
	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

var rootCmd = &cobra.Command{
	Use:   "flapbird",
	Short: "Flap between the pipes",
	Long: `flapbird is a Flappy Bird style arcade game.

Press SPACE (or A / Cross) to flap. P or Esc pauses, M mutes, F1 shows hitboxes.

Examples:
  flapbird
  flapbird --seed 42
  flapbird --config tuning.yaml --watch
  flapbird scores`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to the run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Tuning file (default: ~/.flapbird/config.yaml, then configs/flapbird.yaml)")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the tuning file when it changes")
	rootCmd.Flags().BoolVar(&flagSkipMenu, "skip-menu", false, "Start playing immediately")
	rootCmd.Flags().BoolVar(&flagHitboxes, "hitboxes", false, "Show hitboxes")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Start muted")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		log.SetLevel(level)
		return nil
	}

	rootCmd.AddCommand(scoresCmd)
}

func runGame(cmd *cobra.Command, args []string) error {
	defaults := config.Current()
	tuning, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	config.Apply(tuning)
	if source != "" {
		log.Info("loaded tuning", "path", source)
	}
	if flagSeed != 0 {
		config.C.Seed = flagSeed
	}
	config.Debug.SkipMenu = flagSkipMenu
	config.Debug.ShowHitboxes = flagHitboxes

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	// Persistence is optional: the game runs without it
	if err := systems.InitPersistence(); err != nil {
		log.Warn("could not initialize persistence", "err", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
		if saved.ShowHitboxes {
			config.Debug.ShowHitboxes = true
		}
	}
	if flagMute {
		systems.SetMuted(true)
	}

	session := &scenes.Session{Seed: config.C.Seed}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("run history disabled", "err", err)
	} else {
		defer store.Close()
		session.Runs = store
		syncBestScore(store)
	}

	if flagWatch && source != "" {
		w, err := config.Watch(source, defaults)
		if err != nil {
			log.Warn("could not watch tuning file", "path", source, "err", err)
		} else {
			defer w.Close()
			session.Watcher = w
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(config.Physics.TPS)

	return ebiten.RunGame(NewGame(session))
}

// syncBestScore raises the saved best score to the best recorded run, so a
// lost settings file does not reset it.
func syncBestScore(store *storage.Store) {
	best, err := store.Best(context.Background())
	if err != nil {
		log.Warn("could not read best run", "err", err)
		return
	}
	if systems.SaveBestScore(best) {
		log.Info("best score restored from run history", "best", best)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
