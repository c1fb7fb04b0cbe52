// internal/app/snapshot.go
package app

import (
	"go-scorched-earth/internal/component"
	"go-scorched-earth/pkg/terrain"
)

// ProjectileView — положение снаряда в полёте
type ProjectileView struct {
	X, Y  float64
	Trail []component.Point
}

// Snapshot — всё, что нужно отрисовать за тик. Не разделяет память с Game.
type Snapshot struct {
	Round      int
	Phase      component.Phase
	Terrain    []terrain.Point // замкнутый многоугольник
	Player     component.Vehicle
	Opponent   component.Vehicle
	Aim        component.AimState
	Projectile *ProjectileView
	Trail      []component.Point // след завершённого выстрела
	Outcome    component.Outcome
	Reason     component.MissReason
	Impact     component.Point
	HasImpact  bool
}

// Snapshot снимает состояние для отрисовщика
func (g *Game) Snapshot() Snapshot {
	r := &g.round
	s := Snapshot{
		Round:     r.Number,
		Phase:     r.Phase,
		Player:    r.Player,
		Opponent:  r.Opponent,
		Aim:       r.Aim,
		Trail:     append([]component.Point(nil), r.Trail...),
		Outcome:   r.Outcome.Kind,
		Reason:    r.Outcome.Reason,
		Impact:    r.Outcome.Impact,
		HasImpact: r.Outcome.HasImpact,
	}
	if r.Terrain != nil {
		s.Terrain = r.Terrain.Polygon()
	}
	if p := r.Projectile; p != nil {
		s.Projectile = &ProjectileView{
			X:     p.X,
			Y:     p.Y,
			Trail: append([]component.Point(nil), p.Trail...),
		}
	}
	return s
}
