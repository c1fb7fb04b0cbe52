// internal/component/projectile.go
package component

// Point — позиция на экране
type Point struct {
	X, Y float64
}

// Projectile представляет летящий снаряд.
// Позиция всегда вычисляется из точки вылета и времени полёта, а не накапливается.
type Projectile struct {
	OriginX, OriginY float64
	Velocity         float64
	Angle            float64 // градусы
	SimTime          float64 // время полёта в единицах симуляции
	X, Y             float64
	Trail            []Point // прошлые позиции, самые старые первыми
}

// NewProjectile создаёт снаряд в точке вылета
func NewProjectile(x, y float64, aim AimState) *Projectile {
	return &Projectile{
		OriginX:  x,
		OriginY:  y,
		Velocity: float64(aim.Velocity),
		Angle:    float64(aim.Angle),
		X:        x,
		Y:        y,
	}
}

// MoveTo переносит снаряд, запоминая прошлую позицию в хвосте ограниченной длины
func (p *Projectile) MoveTo(x, y float64, trailLimit int) {
	if trailLimit > 0 {
		p.Trail = append(p.Trail, Point{X: p.X, Y: p.Y})
		if over := len(p.Trail) - trailLimit; over > 0 {
			p.Trail = append(p.Trail[:0], p.Trail[over:]...)
		}
	}
	p.X, p.Y = x, y
}
