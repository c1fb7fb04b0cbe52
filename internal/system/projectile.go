// internal/system/projectile.go
package system

import (
	"time"

	"go-scorched-earth/internal/component"
	"go-scorched-earth/pkg/ballistics"
	"go-scorched-earth/pkg/terrain"
)

// ProjectileSystem продвигает снаряд на один тик и определяет, чем закончился полёт
type ProjectileSystem struct {
	TimeScale        float64 // реальные секунды -> секунды симуляции
	TrailLimit       int
	TerrainCollision bool
	FieldHeight      float64
}

func NewProjectileSystem(timeScale float64, trailLimit int, terrainCollision bool, fieldHeight float64) *ProjectileSystem {
	return &ProjectileSystem{
		TimeScale:        timeScale,
		TrailLimit:       trailLimit,
		TerrainCollision: terrainCollision,
		FieldHeight:      fieldHeight,
	}
}

// SimTime переводит реальное время с момента выстрела во время симуляции
func (s *ProjectileSystem) SimTime(sinceFire time.Duration) float64 {
	if sinceFire < 0 {
		return 0
	}
	return sinceFire.Seconds() * s.TimeScale
}

// Update ставит снаряд в позицию на момент sinceFire и проверяет столкновения.
// Порядок проверок: танк противника, рельеф, нижний край поля.
// Пока снаряд летит, возвращается OutcomeNone.
func (s *ProjectileSystem) Update(p *component.Projectile, sinceFire time.Duration, target *component.Vehicle, profile *terrain.Profile) component.RoundOutcome {
	p.SimTime = s.SimTime(sinceFire)
	x, y := ballistics.Advance(p.OriginX, p.OriginY, p.Velocity, p.Angle, p.SimTime)
	p.MoveTo(x, y, s.TrailLimit)

	if target != nil && target.Alive && CheckHit(x, y, target.Bounds()) {
		return component.RoundOutcome{
			Kind:      component.OutcomeHit,
			Struck:    target,
			Impact:    component.Point{X: x, Y: y},
			HasImpact: true,
		}
	}

	if s.TerrainCollision && HitsGround(profile, x, y) {
		return component.RoundOutcome{
			Kind:      component.OutcomeMiss,
			Reason:    component.MissHitGround,
			Impact:    component.Point{X: x, Y: profile.HeightAt(x)},
			HasImpact: true,
		}
	}

	if y >= s.FieldHeight {
		return component.RoundOutcome{
			Kind:   component.OutcomeMiss,
			Reason: component.MissLeftPlayfield,
		}
	}

	return component.RoundOutcome{Kind: component.OutcomeNone}
}
