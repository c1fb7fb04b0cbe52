// internal/input/input.go
package input

//go:generate go tool mockgen -destination=./mocks/source_mock.go -package=mocks . Source

// Actions — снимок дискретных действий игрока за один тик
type Actions struct {
	AngleUp   bool
	AngleDown bool
	PowerUp   bool
	PowerDown bool
	Fire      bool
	Quit      bool
}

// Source — источник ввода, опрашивается один раз за тик
type Source interface {
	Poll() Actions
}

// Resolve оставляет не больше одного действия прицеливания или выстрела.
// Приоритет: AngleUp, AngleDown, PowerUp, PowerDown, Fire. Quit сохраняется всегда.
func (a Actions) Resolve() Actions {
	out := Actions{Quit: a.Quit}
	switch {
	case a.AngleUp:
		out.AngleUp = true
	case a.AngleDown:
		out.AngleDown = true
	case a.PowerUp:
		out.PowerUp = true
	case a.PowerDown:
		out.PowerDown = true
	case a.Fire:
		out.Fire = true
	}
	return out
}
