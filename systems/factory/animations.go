package factory

import (
	"github.com/automoto/flapbird/assets"
	"github.com/automoto/flapbird/assets/animations"
	"github.com/automoto/flapbird/components"
	cfg "github.com/automoto/flapbird/config"
)

// GenerateFlapAnimation cycles the bird frames while flying.
func GenerateFlapAnimation() components.AnimationData {
	last := len(assets.BirdFrames) - 1
	return components.AnimationData{
		CurrentAnimation: animations.NewAnimation(0, last, 1, float32(cfg.Player.FlapFrameTicks)),
		FrameKeys:        assets.BirdFrames,
	}
}
