package components

import (
	"github.com/automoto/flapbird/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationData cycles a sprite through a list of image keys.
type AnimationData struct {
	CurrentAnimation *animations.Animation
	FrameKeys        []string // indexed by animation frame
}

// CurrentKey returns the image key for the current frame.
func (a *AnimationData) CurrentKey() (string, bool) {
	if a.CurrentAnimation == nil {
		return "", false
	}
	frame := a.CurrentAnimation.Frame()
	if frame < 0 || frame >= len(a.FrameKeys) {
		return "", false
	}
	return a.FrameKeys[frame], true
}

var Animation = donburi.NewComponentType[AnimationData]()
