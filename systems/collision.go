package systems

import (
	"github.com/automoto/flapbird/components"
	cfg "github.com/automoto/flapbird/config"
	"github.com/automoto/flapbird/gamemath"
	"github.com/automoto/flapbird/tags"
	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

var collisionLog = log.WithPrefix("collision")

// LossReason says why a run ended.
type LossReason string

const (
	LossDeadZone LossReason = "dead zone"
	LossPipe     LossReason = "pipe"
)

// UpdatePlayerCollisions removes the player on the first tick it leaves the
// dead zone bounds or overlaps an obstacle block.
func UpdatePlayerCollisions(ecs *ecs.ECS) {
	entry, ok := GetPlayer(ecs.World)
	if !ok {
		return
	}

	hitbox := PlayerHitbox(entry)
	if gamemath.OutsideVertical(hitbox, cfg.Physics.DeadZoneTop, cfg.Physics.DeadZoneBottom) {
		LosePlayer(ecs, entry, LossDeadZone)
		return
	}

	for _, block := range blockCandidates(ecs.World, entry) {
		if gamemath.Overlaps(hitbox, BlockRect(block)) {
			LosePlayer(ecs, entry, LossPipe)
			return
		}
	}
}

// blockCandidates returns blocks that may touch the player: objects in the
// space cells around the hitbox, otherwise every block. resolv registers
// objects on integer pixel bounds, so the cell range is widened by a pixel on
// each side to keep sub-pixel overlaps on a cell boundary.
func blockCandidates(world donburi.World, player *donburi.Entry) []*donburi.Entry {
	var candidates []*donburi.Entry

	obj := components.Object.Get(player)
	if obj.Object != nil && obj.Space != nil {
		space := obj.Space
		cx, cy := space.WorldToSpace(obj.X-1, obj.Y-1)
		ex, ey := space.WorldToSpace(obj.X+obj.W+1, obj.Y+obj.H+1)

		seen := map[*resolv.Object]bool{}
		for y := cy; y <= ey; y++ {
			for x := cx; x <= ex; x++ {
				cell := space.Cell(x, y)
				if cell == nil {
					continue
				}
				for _, o := range cell.Objects {
					if seen[o] || !o.HasTags(tags.ResolvSolid) {
						continue
					}
					seen[o] = true
					if e, ok := o.Data.(*donburi.Entry); ok && e.Valid() && e.HasComponent(components.PipeBlock) {
						candidates = append(candidates, e)
					}
				}
			}
		}
		return candidates
	}

	tags.PipeBlock.Each(world, func(e *donburi.Entry) {
		candidates = append(candidates, e)
	})
	return candidates
}

// BlockRect returns an obstacle block's extent in screen space.
func BlockRect(block *donburi.Entry) gamemath.Rect {
	b := components.PipeBlock.Get(block)
	pos := transform.WorldPosition(block)
	return gamemath.RectFromCenter(pos.X, pos.Y, b.Width, b.Height)
}

// LosePlayer removes the player and ends the run.
func LosePlayer(ecs *ecs.ECS, entry *donburi.Entry, reason LossReason) {
	collisionLog.Info("player lost", "reason", reason, "score", CurrentScore(ecs))

	removeObject(ecs.World, entry)
	ecs.World.Remove(entry.Entity())

	PlaySFX(ecs, cfg.SoundHit)
	if state := GetGameState(ecs); state != nil {
		state.LostFrames = 0
		state.LostReason = string(reason)
	}
	ExitPlaying(ecs)
}
