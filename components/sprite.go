package components

import "github.com/yohamta/donburi"

// SpriteData references an image by asset key. Images are resolved when drawing.
type SpriteData struct {
	Key      string
	Rotation float64
	Z        int // draw order, higher on top
}

var Sprite = donburi.NewComponentType[SpriteData]()
