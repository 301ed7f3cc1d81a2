package systems

import (
	"github.com/automoto/flapbird/components"
	cfg "github.com/automoto/flapbird/config"
	"github.com/automoto/flapbird/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
	"github.com/yohamta/donburi/filter"
)

var movables = donburi.NewQuery(filter.Contains(components.Movable, transform.Transform))

// UpdateMovement integrates every Movable by one fixed tick.
func UpdateMovement(ecs *ecs.ECS) {
	IntegrateMovables(ecs.World, cfg.DeltaTime())
}

// IntegrateMovables advances every Movable's local position by dt seconds.
func IntegrateMovables(world donburi.World, dt float64) {
	movables.Each(world, func(e *donburi.Entry) {
		m := components.Movable.Get(e)
		tr := transform.Transform.Get(e)
		tr.LocalPosition, m.Velocity = gamemath.Integrate(tr.LocalPosition, m.Velocity, m.Acceleration, dt)
	})
}

// RestAllMovables zeroes velocity and acceleration of every Movable.
func RestAllMovables(world donburi.World) {
	components.Movable.Each(world, func(e *donburi.Entry) {
		components.Movable.Get(e).Rest()
	})
}
