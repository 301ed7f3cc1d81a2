package factory

import (
	"github.com/automoto/flapbird/archetypes"
	"github.com/automoto/flapbird/assets"
	"github.com/automoto/flapbird/components"
	cfg "github.com/automoto/flapbird/config"
	"github.com/automoto/flapbird/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

// CreatePlayer spawns the bird centered on (x, y), at rest and hovering.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	transform.Transform.Get(player).LocalPosition = dmath.Vec2{X: x, Y: y}

	w := cfg.Player.HitboxWidth * cfg.C.Scale
	h := cfg.Player.HitboxHeight * cfg.C.Scale
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	if space, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(space).Add(obj)
	}

	components.Player.SetValue(player, components.PlayerData{
		HitboxWidth:  w,
		HitboxHeight: h,
		Hover:        NewHoverTween(y, true),
		HoverUp:      true,
		HoverBaseY:   y,
	})
	components.Movable.SetValue(player, components.NewMovable().Build())
	components.Sprite.SetValue(player, components.SpriteData{
		Key: assets.BirdFrame1,
		Z:   1,
	})
	components.Animation.SetValue(player, GenerateFlapAnimation())
	components.SquashStretch.SetValue(player, components.SquashStretchData{
		ScaleX: 1, ScaleY: 1,
		TargetX: 1, TargetY: 1,
		LerpSpeed: 0.2,
	})

	return player
}

// NewHoverTween eases the bird half a hover cycle away from baseY.
func NewHoverTween(baseY float64, up bool) *gween.Tween {
	top := float32(baseY - cfg.Player.HoverAmplitude)
	bottom := float32(baseY)
	if up {
		return gween.New(bottom, top, float32(cfg.Player.HoverPeriod), ease.InOutSine)
	}
	return gween.New(top, bottom, float32(cfg.Player.HoverPeriod), ease.InOutSine)
}

// PlayerGravity is the constant acceleration applied while playing.
func PlayerGravity() dmath.Vec2 {
	return dmath.Vec2{X: 0, Y: cfg.Player.Gravity}
}

// JumpVelocity is the velocity a jump sets (upward is -Y on screen).
func JumpVelocity() dmath.Vec2 {
	return dmath.Vec2{X: 0, Y: -cfg.Player.JumpSpeed}
}
