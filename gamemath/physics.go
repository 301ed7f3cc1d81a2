package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Integrate advances a position under constant acceleration for dt seconds.
// Position uses the closed form Δx = ½aΔt² + vΔt, then velocity Δv = aΔt, so
// splitting dt into sub-steps lands on the same position as one full step.
func Integrate(pos, vel, acc dmath.Vec2, dt float64) (dmath.Vec2, dmath.Vec2) {
	half := 0.5 * dt * dt
	pos = dmath.Vec2{
		X: pos.X + half*acc.X + vel.X*dt,
		Y: pos.Y + half*acc.Y + vel.Y*dt,
	}
	vel = dmath.Vec2{
		X: vel.X + acc.X*dt,
		Y: vel.Y + acc.Y*dt,
	}
	return pos, vel
}

// Tilt maps vertical speed (+Y down) to a sprite rotation clamped to [-max, max].
func Tilt(speedY, perSpeed, max float64) float64 {
	return ClampSpeed(speedY*perSpeed, max)
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// NearlyEqual reports whether a and b differ by at most eps.
func NearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
