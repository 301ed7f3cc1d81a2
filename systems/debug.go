package systems

import (
	"image/color"

	"github.com/automoto/flapbird/components"
	cfg "github.com/automoto/flapbird/config"
	"github.com/automoto/flapbird/gamemath"
	"github.com/automoto/flapbird/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the hitbox overlay.
func UpdateDebug(ecs *ecs.ECS) {
	if !JustPressed(ecs, cfg.ActionToggleHitboxes) {
		return
	}
	entry, ok := components.Debug.First(ecs.World)
	if !ok {
		return
	}
	debug := components.Debug.Get(entry)
	debug.ShowHitboxes = !debug.ShowHitboxes
	SaveCurrentSettings(ecs)
}

// DrawDebug outlines the exact hitboxes used for collisions, the broadphase
// objects and the dead zone bounds.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Debug.First(ecs.World)
	if !ok || !components.Debug.Get(entry).ShowHitboxes {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		grey := color.RGBA{100, 100, 100, 255}
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			strokeRect(screen, gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}, grey)
		}
	}

	tags.PipeBlock.Each(ecs.World, func(e *donburi.Entry) {
		strokeRect(screen, BlockRect(e), cfg.UI.HitboxColor)
	})
	if player, ok := GetPlayer(ecs.World); ok {
		strokeRect(screen, PlayerHitbox(player), color.RGBA{0, 0, 255, 255})
	}

	width := float32(screen.Bounds().Dx())
	yellow := cfg.Yellow
	vector.FillRect(screen, 0, float32(cfg.Physics.DeadZoneTop), width, 1, yellow, false)
	vector.FillRect(screen, 0, float32(cfg.Physics.DeadZoneBottom)-1, width, 1, yellow, false)
}

func strokeRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
