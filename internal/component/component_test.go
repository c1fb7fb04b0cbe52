package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var limits = AimLimits{MinAngle: 0, MaxAngle: 90, MinVelocity: 0, MaxVelocity: 1000}

func TestAimState_Clamps(t *testing.T) {
	a := AimState{Angle: 89, Velocity: 1}

	a.AdjustAngle(1, limits)
	a.AdjustAngle(1, limits)
	assert.Equal(t, 90, a.Angle)

	a.AdjustVelocity(-1, limits)
	a.AdjustVelocity(-1, limits)
	assert.Equal(t, 0, a.Velocity)

	a.Angle = 0
	a.AdjustAngle(-1, limits)
	assert.Equal(t, 0, a.Angle)

	for i := 0; i < 1200; i++ {
		a.AdjustVelocity(1, limits)
	}
	assert.Equal(t, 1000, a.Velocity)
}

func TestFacingToward(t *testing.T) {
	assert.Equal(t, FacingRight, FacingToward(100, 900))
	assert.Equal(t, FacingLeft, FacingToward(900, 100))
	assert.Equal(t, FacingRight, FacingToward(100, 100))
}

func TestVehicle_Bounds(t *testing.T) {
	v := NewVehicle(300, 500, 50, 30)
	assert.True(t, v.Alive)
	assert.Equal(t, Rect{Left: 275, Top: 470, Right: 325, Bottom: 500}, v.Bounds())

	x, y := v.Muzzle()
	assert.Equal(t, 300.0, x)
	assert.Equal(t, 470.0, y)
}

func TestProjectile_TrailIsBounded(t *testing.T) {
	p := NewProjectile(0, 0, AimState{Angle: 45, Velocity: 50})
	assert.Equal(t, 45.0, p.Angle)
	assert.Equal(t, 50.0, p.Velocity)

	for i := 1; i <= 5; i++ {
		p.MoveTo(float64(i), float64(i), 3)
	}
	assert.Equal(t, []Point{{2, 2}, {3, 3}, {4, 4}}, p.Trail)
	assert.Equal(t, 5.0, p.X)

	q := NewProjectile(0, 0, AimState{})
	q.MoveTo(1, 1, 0)
	assert.Empty(t, q.Trail)
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "firing", FiringPhase.String())
	assert.Equal(t, "aborted", OutcomeAborted.String())
	assert.Equal(t, "hit_ground", MissHitGround.String())
	assert.Equal(t, "left", FacingLeft.String())
}
