// internal/component/aim.go
package component

// AimState — угол возвышения (градусы) и начальная скорость активного игрока
type AimState struct {
	Angle    int
	Velocity int
}

// AimLimits — допустимые границы прицела
type AimLimits struct {
	MinAngle, MaxAngle       int
	MinVelocity, MaxVelocity int
}

// AdjustAngle меняет угол на delta с ограничением по границам
func (a *AimState) AdjustAngle(delta int, l AimLimits) {
	a.Angle = clamp(a.Angle+delta, l.MinAngle, l.MaxAngle)
}

// AdjustVelocity меняет скорость на delta с ограничением по границам
func (a *AimState) AdjustVelocity(delta int, l AimLimits) {
	a.Velocity = clamp(a.Velocity+delta, l.MinVelocity, l.MaxVelocity)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
