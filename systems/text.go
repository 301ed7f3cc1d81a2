package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"
)

var textOp = &ebiten.DrawImageOptions{}

// drawCentered draws s horizontally centered on cx with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, y float64, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := cx - float64(bounds.Dx())/2
	text.Draw(screen, s, face, int(x), int(y), clr)
}

// drawCenteredScaled draws s centered on (cx, cy) scaled around its center.
func drawCenteredScaled(screen *ebiten.Image, s string, face font.Face, cx, cy, scale float64, clr color.Color) {
	bounds := text.BoundString(face, s)
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	textOp.GeoM.Reset()
	// Move the glyph box origin to its center, scale, then place
	textOp.GeoM.Translate(-float64(bounds.Min.X)-w/2, -float64(bounds.Min.Y)-h/2)
	textOp.GeoM.Scale(scale, scale)
	textOp.GeoM.Translate(cx, cy)
	textOp.ColorScale.Reset()
	textOp.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, s, face, textOp)
}
