package systems

import (
	"github.com/automoto/flapbird/components"
	cfg "github.com/automoto/flapbird/config"
	"github.com/automoto/flapbird/fonts"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause while a run is in progress.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)

	if !IsPlaying(ecs) {
		pause.IsPaused = false
		return
	}

	if JustPressed(ecs, cfg.ActionPause) {
		pause.IsPaused = !pause.IsPaused
		PlaySFX(ecs, cfg.SoundMenuSelect)
		log.Debug("pause toggled", "paused", pause.IsPaused)
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.UI.OverlayColor, false)

	drawCentered(screen, cfg.Pause.Title, fonts.Title.Get(), width/2, height/2, cfg.UI.TextColor)
	drawCentered(screen, pauseHint(GetOrCreateInput(ecs).LastInputMethod), fonts.Small.Get(),
		width/2, height-24, cfg.UI.HintColor)
}

// pauseHint returns the resume hint for the last used input method
func pauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Options: Resume"
	case components.InputXbox:
		return "Start: Resume"
	}
	return cfg.Pause.Hint
}

// startHint returns the "press to start" hint for the last used input method
func startHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Press CROSS to flap"
	case components.InputXbox:
		return "Press A to flap"
	}
	return "Press SPACE to flap"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	ent, ok := components.Pause.First(ecs.World)
	if !ok {
		ent = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(ent)
}
