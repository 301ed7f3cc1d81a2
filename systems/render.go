package systems

import (
	"sort"

	"github.com/automoto/flapbird/assets"
	"github.com/automoto/flapbird/components"
	cfg "github.com/automoto/flapbird/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
	"github.com/yohamta/donburi/filter"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	sprites  = donburi.NewQuery(filter.Contains(components.Sprite, transform.Transform))
	drawList []*donburi.Entry
)

// DrawBackground clears the screen.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)
}

// DrawSprites renders every sprite centered on its world position, scaled by
// the global sprite scale, in ascending Z order.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	drawList = drawList[:0]
	sprites.Each(ecs.World, func(e *donburi.Entry) {
		drawList = append(drawList, e)
	})
	sort.SliceStable(drawList, func(i, j int) bool {
		return components.Sprite.Get(drawList[i]).Z < components.Sprite.Get(drawList[j]).Z
	})

	width := float64(screen.Bounds().Dx())
	for _, e := range drawList {
		sprite := components.Sprite.Get(e)
		if sprite.Key == "" {
			continue
		}
		pos := transform.WorldPosition(e)

		// Cull anything fully off screen horizontally
		half := cfg.C.Scale * cfg.Pipe.BlockSize
		if pos.X+half < 0 || pos.X-half > width {
			continue
		}

		img := assets.GetImage(sprite.Key)
		w, h := img.Bounds().Dx(), img.Bounds().Dy()

		sx, sy := cfg.C.Scale, cfg.C.Scale
		if e.HasComponent(components.SquashStretch) {
			ss := components.SquashStretch.Get(e)
			sx *= ss.ScaleX
			sy *= ss.ScaleY
		}

		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		drawOp.GeoM.Scale(sx, sy)
		drawOp.GeoM.Rotate(sprite.Rotation)
		drawOp.GeoM.Translate(pos.X, pos.Y)
		screen.DrawImage(img, drawOp)
	}
}
