package systems

import (
	"fmt"

	"github.com/automoto/flapbird/components"
	cfg "github.com/automoto/flapbird/config"
	"github.com/automoto/flapbird/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver creates an UpdateGameOver system with scene transition capability
func NewUpdateGameOver(sceneChanger SceneChanger, createWorldScene func() interface{}, quit func()) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		input := GetOrCreateInput(e)

		// Ignore the jump still held from the run that just ended
		if gameOver.Frames < cfg.GameOver.InputDelayFrames {
			gameOver.Frames++
			return
		}

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.GameOverExit) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) - 1 + numOptions) % numOptions,
			)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) + 1) % numOptions,
			)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch gameOver.SelectedOption {
			case components.GameOverRetry:
				sceneChanger.ChangeScene(createWorldScene())
			case components.GameOverExit:
				quit()
			}
		}
	}
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())
	screen.Fill(cfg.UI.BackgroundColor)

	drawCentered(screen, "GAME OVER", fonts.Title.Get(), width/2, cfg.GameOver.TitleY, cfg.Red)

	line := fmt.Sprintf("Score %d   Best %d", gameOver.Score, gameOver.Best)
	drawCentered(screen, line, fonts.Regular.Get(), width/2, cfg.GameOver.ScoreY, cfg.UI.TextColor)
	if gameOver.NewBest {
		drawCentered(screen, "NEW BEST!", fonts.Regular.Get(), width/2, cfg.GameOver.ScoreY+32, cfg.Yellow)
	}

	menuFont := fonts.Regular.Get()
	for i, option := range cfg.GameOver.MenuOptions {
		y := cfg.GameOver.MenuStartY + float64(i)*(cfg.GameOver.MenuItemHeight+cfg.GameOver.MenuItemGap)

		textColor := cfg.UI.TextColor
		if components.GameOverOption(i) == gameOver.SelectedOption {
			textColor = cfg.UI.TextColorSelected
		}
		drawCentered(screen, option, menuFont, width/2, y+cfg.GameOver.MenuItemHeight, textColor)
	}
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	ent, ok := components.GameOver.First(e.World)
	if !ok {
		ent = e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{
			SelectedOption: components.GameOverRetry,
		})
	}
	return components.GameOver.Get(ent)
}
