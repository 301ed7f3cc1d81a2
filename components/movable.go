package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// MovableData moves an entity under constant acceleration.
// Velocity is integrated every tick; SetVelocity overwrites it.
type MovableData struct {
	Acceleration dmath.Vec2
	Velocity     dmath.Vec2
}

// SetVelocity replaces the current velocity.
func (m *MovableData) SetVelocity(v dmath.Vec2) {
	m.Velocity = v
}

// Rest clears velocity and acceleration.
func (m *MovableData) Rest() {
	m.Acceleration = dmath.Vec2{}
	m.Velocity = dmath.Vec2{}
}

// MovableBuilder assembles a MovableData; zero values mean at rest.
type MovableBuilder struct {
	acceleration dmath.Vec2
	velocity     dmath.Vec2
}

func NewMovable() *MovableBuilder {
	return &MovableBuilder{}
}

func (b *MovableBuilder) WithAcceleration(a dmath.Vec2) *MovableBuilder {
	b.acceleration = a
	return b
}

func (b *MovableBuilder) WithVelocity(v dmath.Vec2) *MovableBuilder {
	b.velocity = v
	return b
}

func (b *MovableBuilder) Build() MovableData {
	return MovableData{
		Acceleration: b.acceleration,
		Velocity:     b.velocity,
	}
}

var Movable = donburi.NewComponentType[MovableData]()
