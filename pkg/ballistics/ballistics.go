// Package ballistics implements drag-free projectile motion in screen space.
//
// Units are illustrative: velocities are "pixels per simulated second" and
// callers decide how wall-clock time maps onto simulated time.
package ballistics

import "math"

// G is the gravitational acceleration applied to every shot.
const G = 9.8

// Advance returns the position of a projectile launched from (originX,
// originY) with speed v0 at angleDeg above the horizon, t simulated seconds
// after launch. Screen y grows downward, so height gained is subtracted.
func Advance(originX, originY, v0, angleDeg, t float64) (x, y float64) {
	rad := Radians(angleDeg)
	dx := v0 * t * math.Cos(rad)
	dy := v0*t*math.Sin(rad) - 0.5*G*t*t
	return originX + dx, originY - dy
}

// FlightTime is the time to return to launch height on flat ground.
func FlightTime(v0, angleDeg float64) float64 {
	return 2 * v0 * math.Sin(Radians(angleDeg)) / G
}

// Range is the horizontal distance covered on flat ground.
func Range(v0, angleDeg float64) float64 {
	return v0 * v0 * math.Sin(2*Radians(angleDeg)) / G
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
