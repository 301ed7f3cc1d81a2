package systems

import (
	"testing"

	"github.com/automoto/flapbird/components"
	cfg "github.com/automoto/flapbird/config"
	"github.com/automoto/flapbird/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

func TestJumpOverridesVelocity(t *testing.T) {
	e, player := newTestWorldWithPlayer(t)
	EnterPlaying(e)
	components.Movable.Get(player).Velocity = dmath.Vec2{X: 0, Y: 300}

	press(e, cfg.ActionJump)
	UpdatePlayer(e)

	assert.Equal(t, dmath.Vec2{X: 0, Y: -cfg.Player.JumpSpeed}, components.Movable.Get(player).Velocity)
	assert.Equal(t, factory.PlayerGravity(), components.Movable.Get(player).Acceleration)
	assert.Contains(t, queuedSounds(e), cfg.SoundFlap)
}

func TestHeldJumpDoesNotRepeat(t *testing.T) {
	e, player := newTestWorldWithPlayer(t)
	EnterPlaying(e)

	press(e, cfg.ActionJump)
	UpdatePlayer(e)
	components.Movable.Get(player).Velocity = dmath.Vec2{X: 0, Y: 120}

	// Still held next frame
	press(e, cfg.ActionJump)
	UpdatePlayer(e)

	assert.Equal(t, 120.0, components.Movable.Get(player).Velocity.Y)
	assert.Equal(t, 1, GetGameState(e).Flaps)
}

func TestFirstJumpStartsPlayingAndFlaps(t *testing.T) {
	e, player := newTestWorldWithPlayer(t)
	require.Equal(t, cfg.StatePassive, GetGameState(e).Current)

	press(e, cfg.ActionJump)
	UpdateGameState(e)
	UpdatePlayer(e)

	state := GetGameState(e)
	assert.Equal(t, cfg.StatePlaying, state.Current)
	assert.Equal(t, cfg.StatePassive, state.Previous)
	assert.Equal(t, 1, state.Flaps)

	m := components.Movable.Get(player)
	assert.Equal(t, factory.PlayerGravity(), m.Acceleration)
	assert.Equal(t, factory.JumpVelocity(), m.Velocity)
}

func TestPassivePlayerHoversWithoutMovable(t *testing.T) {
	e, player := newTestWorldWithPlayer(t)
	base := cfg.Player.StartY

	for i := 0; i < 200; i++ {
		idle(e)
		UpdateGameState(e)
		UpdatePlayer(e)
		y := transform.Transform.Get(player).LocalPosition.Y
		require.GreaterOrEqual(t, y, base-cfg.Player.HoverAmplitude-1e-3)
		require.LessOrEqual(t, y, base+1e-3)
	}

	assert.Equal(t, cfg.StatePassive, GetGameState(e).Current)
	assert.Equal(t, components.MovableData{}, *components.Movable.Get(player))
	assert.Equal(t, cfg.Player.StartX, transform.Transform.Get(player).LocalPosition.X)
}

func TestGetPlayerRequiresExactlyOne(t *testing.T) {
	e := newTestWorld(t)
	_, ok := GetPlayer(e.World)
	assert.False(t, ok)

	factory.CreatePlayer(e, 100, 100)
	_, ok = GetPlayer(e.World)
	assert.True(t, ok)

	factory.CreatePlayer(e, 200, 200)
	_, ok = GetPlayer(e.World)
	assert.False(t, ok)
}

func TestPlayerHitboxIsCentered(t *testing.T) {
	_, player := newTestWorldWithPlayer(t)
	r := PlayerHitbox(player)

	assert.InDelta(t, 54.0, r.W, 1e-9)
	assert.InDelta(t, 45.0, r.H, 1e-9)
	assert.InDelta(t, 613.0, r.X, 1e-9)
	assert.InDelta(t, 337.5, r.Y, 1e-9)
}

func TestUpdatePlayerSpriteTiltsWithSpeed(t *testing.T) {
	e, player := newTestWorldWithPlayer(t)

	components.Movable.Get(player).Velocity = dmath.Vec2{Y: 100000}
	UpdatePlayerSprite(e)
	assert.InDelta(t, cfg.Player.MaxTilt, components.Sprite.Get(player).Rotation, 1e-9)

	components.Movable.Get(player).Velocity = dmath.Vec2{Y: -100000}
	UpdatePlayerSprite(e)
	assert.InDelta(t, -cfg.Player.MaxTilt, components.Sprite.Get(player).Rotation, 1e-9)
}
