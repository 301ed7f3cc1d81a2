package systems

import (
	"fmt"
	"strconv"

	cfg "github.com/automoto/flapbird/config"
	"github.com/automoto/flapbird/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the score counter, the best score and the start hint.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	score := GetScore(ecs)
	state := GetGameState(ecs)
	if score == nil || state == nil {
		return
	}
	width := float64(screen.Bounds().Dx())

	scale := score.Scale
	if scale <= 0 {
		scale = 1
	}
	drawCenteredScaled(screen, strconv.Itoa(score.Value), fonts.Score.Get(),
		width/2, cfg.Score.TopMargin, scale, cfg.UI.TextColor)

	if score.Best > 0 {
		best := fmt.Sprintf("BEST %d", score.Best)
		drawCentered(screen, best, fonts.Small.Get(), width/2, cfg.Score.TopMargin+48, cfg.UI.HintColor)
	}

	if state.Current == cfg.StatePassive && state.LostFrames < 0 {
		drawCentered(screen, cfg.C.Title, fonts.Title.Get(), width/2, cfg.UI.TitleY, cfg.UI.TextColor)
		drawCentered(screen, startHint(GetOrCreateInput(ecs).LastInputMethod), fonts.Regular.Get(),
			width/2, cfg.UI.HintY, cfg.UI.HintColor)
	}
}
