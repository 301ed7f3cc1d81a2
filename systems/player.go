package systems

import (
	"github.com/automoto/flapbird/components"
	cfg "github.com/automoto/flapbird/config"
	"github.com/automoto/flapbird/gamemath"
	"github.com/automoto/flapbird/systems/factory"
	"github.com/automoto/flapbird/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
	"github.com/yohamta/donburi/filter"
)

var players = donburi.NewQuery(filter.Contains(tags.Player))

// GetPlayer returns the unique player entry. Zero or several players count as
// not ready and report false.
func GetPlayer(world donburi.World) (*donburi.Entry, bool) {
	if players.Count(world) != 1 {
		return nil, false
	}
	return players.First(world)
}

// UpdatePlayer applies jumps while playing and hovers the bird while waiting.
func UpdatePlayer(ecs *ecs.ECS) {
	entry, ok := GetPlayer(ecs.World)
	if !ok {
		return
	}
	state := GetGameState(ecs)
	if state == nil {
		return
	}

	if state.Current == cfg.StatePlaying {
		if JustPressed(ecs, cfg.ActionJump) {
			Jump(ecs, entry)
		}
		return
	}
	if state.LostFrames < 0 {
		updateHover(entry)
	}
}

// Jump overwrites the player's velocity with the jump velocity.
func Jump(ecs *ecs.ECS, entry *donburi.Entry) {
	components.Movable.Get(entry).SetVelocity(factory.JumpVelocity())

	if state := GetGameState(ecs); state != nil {
		state.Flaps++
	}

	TriggerSquashStretch(entry, 0.8, 1.25)
	if entry.HasComponent(components.Animation) {
		if anim := components.Animation.Get(entry); anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Restart()
		}
	}
	PlaySFX(ecs, cfg.SoundFlap)
}

func updateHover(entry *donburi.Entry) {
	player := components.Player.Get(entry)
	if player.Hover == nil {
		return
	}
	y, done := player.Hover.Update(float32(cfg.DeltaTime()))
	transform.Transform.Get(entry).LocalPosition.Y = float64(y)
	if done {
		player.HoverUp = !player.HoverUp
		player.Hover = factory.NewHoverTween(player.HoverBaseY, player.HoverUp)
	}
}

// UpdatePlayerSprite picks the flap frame and tilts the bird by vertical speed.
func UpdatePlayerSprite(ecs *ecs.ECS) {
	entry, ok := GetPlayer(ecs.World)
	if !ok {
		return
	}
	sprite := components.Sprite.Get(entry)

	if entry.HasComponent(components.Animation) {
		anim := components.Animation.Get(entry)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
		if key, ok := anim.CurrentKey(); ok {
			sprite.Key = key
		}
	}

	speedY := components.Movable.Get(entry).Velocity.Y
	sprite.Rotation = gamemath.Tilt(speedY, cfg.Player.TiltPerSpeed, cfg.Player.MaxTilt)
}

// PlayerHitbox returns the player's hitbox in screen space.
func PlayerHitbox(entry *donburi.Entry) gamemath.Rect {
	player := components.Player.Get(entry)
	pos := transform.WorldPosition(entry)
	return gamemath.RectFromCenter(pos.X, pos.Y, player.HitboxWidth, player.HitboxHeight)
}
