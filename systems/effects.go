package systems

import (
	"github.com/automoto/flapbird/components"
	"github.com/automoto/flapbird/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects eases squash/stretch back to normal scale.
func UpdateEffects(ecs *ecs.ECS) {
	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)

		ss.ScaleX = gamemath.Lerp(ss.ScaleX, ss.TargetX, ss.LerpSpeed)
		ss.ScaleY = gamemath.Lerp(ss.ScaleY, ss.TargetY, ss.LerpSpeed)

		// Snap once close enough; the component stays attached
		const threshold = 0.01
		if gamemath.NearlyEqual(ss.ScaleX, ss.TargetX, threshold) && gamemath.NearlyEqual(ss.ScaleY, ss.TargetY, threshold) {
			ss.ScaleX = ss.TargetX
			ss.ScaleY = ss.TargetY
		}
	})
}

// TriggerSquashStretch deforms an entity's sprite; it eases back to 1.0.
func TriggerSquashStretch(entry *donburi.Entry, scaleX, scaleY float64) {
	if !entry.HasComponent(components.SquashStretch) {
		return
	}
	ss := components.SquashStretch.Get(entry)
	ss.ScaleX = scaleX
	ss.ScaleY = scaleY
	ss.TargetX = 1.0
	ss.TargetY = 1.0
	if ss.LerpSpeed <= 0 {
		ss.LerpSpeed = 0.2
	}
}
