package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestIntegrateSingleStep(t *testing.T) {
	pos, vel := Integrate(
		dmath.Vec2{X: 10, Y: 20},
		dmath.Vec2{X: 2, Y: -4},
		dmath.Vec2{X: 0, Y: 10},
		0.5,
	)

	// Δx = ½aΔt² + vΔt
	assert.InDelta(t, 11.0, pos.X, 1e-12)
	assert.InDelta(t, 20+0.5*10*0.25-2, pos.Y, 1e-12)
	// Δv = aΔt
	assert.InDelta(t, 2.0, vel.X, 1e-12)
	assert.InDelta(t, 1.0, vel.Y, 1e-12)
}

func TestIntegrateSubStepsMatchFullStep(t *testing.T) {
	acc := dmath.Vec2{X: -3.5, Y: 1102.5}
	start := dmath.Vec2{X: 640, Y: 360}
	v0 := dmath.Vec2{X: 200, Y: -500}

	cases := []struct {
		name  string
		dt    float64
		steps int
	}{
		{"one_frame_in_four", 1.0 / 60.0, 4},
		{"second_in_sixty", 1.0, 60},
		{"uneven_seven", 0.37, 7},
		{"many", 2.0, 1000},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fullPos, fullVel := Integrate(start, v0, acc, c.dt)

			pos, vel := start, v0
			h := c.dt / float64(c.steps)
			for i := 0; i < c.steps; i++ {
				pos, vel = Integrate(pos, vel, acc, h)
			}

			assert.InDelta(t, fullPos.X, pos.X, 1e-6)
			assert.InDelta(t, fullPos.Y, pos.Y, 1e-6)
			assert.InDelta(t, fullVel.X, vel.X, 1e-6)
			assert.InDelta(t, fullVel.Y, vel.Y, 1e-6)
		})
	}
}

func TestIntegrateAtRest(t *testing.T) {
	start := dmath.Vec2{X: 5, Y: 6}
	pos, vel := Integrate(start, dmath.Vec2{}, dmath.Vec2{}, 1.0/60.0)
	assert.Equal(t, start, pos)
	assert.Equal(t, dmath.Vec2{}, vel)
}

func TestTiltClamps(t *testing.T) {
	assert.Equal(t, 1.2, Tilt(10000, 0.0015, 1.2))
	assert.Equal(t, -1.2, Tilt(-10000, 0.0015, 1.2))
	assert.InDelta(t, 0.3, Tilt(200, 0.0015, 1.2), 1e-12)
}
