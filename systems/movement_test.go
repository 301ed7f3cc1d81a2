package systems

import (
	"testing"

	"github.com/automoto/flapbird/components"
	cfg "github.com/automoto/flapbird/config"
	"github.com/automoto/flapbird/systems/factory"
	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

func TestIntegrateMovablesAppliesClosedForm(t *testing.T) {
	e, player := newTestWorldWithPlayer(t)
	m := components.Movable.Get(player)
	m.Acceleration = dmath.Vec2{X: 0, Y: 100}
	m.Velocity = dmath.Vec2{X: 10, Y: -50}

	IntegrateMovables(e.World, 0.5)

	pos := transform.Transform.Get(player).LocalPosition
	// x: 640 + 10*0.5, y: 360 + 0.5*100*0.25 - 50*0.5
	assert.InDelta(t, 645.0, pos.X, 1e-9)
	assert.InDelta(t, 347.5, pos.Y, 1e-9)
	assert.InDelta(t, 0.0, m.Velocity.Y, 1e-9)
	assert.InDelta(t, 10.0, m.Velocity.X, 1e-9)
}

func TestIntegrateMovablesSubStepsMatchFullStep(t *testing.T) {
	full, a := newTestWorldWithPlayer(t)
	split, b := newTestWorldWithPlayer(t)
	for _, p := range []*components.MovableData{components.Movable.Get(a), components.Movable.Get(b)} {
		p.Acceleration = factory.PlayerGravity()
		p.Velocity = factory.JumpVelocity()
	}

	IntegrateMovables(full.World, 0.6)
	for i := 0; i < 6; i++ {
		IntegrateMovables(split.World, 0.1)
	}

	pa := transform.Transform.Get(a).LocalPosition
	pb := transform.Transform.Get(b).LocalPosition
	assert.InDelta(t, pa.Y, pb.Y, 1e-6)
	assert.InDelta(t, components.Movable.Get(a).Velocity.Y, components.Movable.Get(b).Velocity.Y, 1e-6)
}

func TestUpdateMovementScrollsPipeGroups(t *testing.T) {
	e := newTestWorld(t)
	group := factory.CreatePipeWithGap(e, cfg.Columns(), 0, true)
	start := transform.WorldPosition(group).X

	for i := 0; i < 60; i++ {
		UpdateMovement(e)
	}

	// One second at constant speed, blocks follow their group
	assert.InDelta(t, start-cfg.Pipe.Speed, transform.WorldPosition(group).X, 1e-6)
	block := e.World.Entry(components.Pipe.Get(group).Blocks[0])
	assert.InDelta(t, transform.WorldPosition(group).X, transform.WorldPosition(block).X, 1e-9)
}

func TestRestAllMovables(t *testing.T) {
	e, player := newTestWorldWithPlayer(t)
	group := factory.CreatePipeWithGap(e, cfg.Columns(), 2, true)
	components.Movable.Get(player).Acceleration = factory.PlayerGravity()

	RestAllMovables(e.World)

	assert.Equal(t, components.MovableData{}, *components.Movable.Get(player))
	assert.Equal(t, components.MovableData{}, *components.Movable.Get(group))
}
