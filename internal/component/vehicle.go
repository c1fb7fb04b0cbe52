// internal/component/vehicle.go
package component

// Facing — направление, в которое смотрит танк
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// FacingToward разворачивает танк к противнику
func FacingToward(x, opponentX float64) Facing {
	if x > opponentX {
		return FacingLeft
	}
	return FacingRight
}

// Rect — прямоугольник в экранных координатах (Y растёт вниз)
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Vehicle — танк: точка опоры на рельефе, размер, направление и состояние
type Vehicle struct {
	X, Y          float64 // центр основания
	Width, Height float64
	Facing        Facing
	Alive         bool
}

// NewVehicle ставит живой танк основанием в точку (x, y)
func NewVehicle(x, y, width, height float64) Vehicle {
	return Vehicle{X: x, Y: y, Width: width, Height: height, Alive: true}
}

// Bounds возвращает ограничивающий прямоугольник танка
func (v Vehicle) Bounds() Rect {
	return Rect{
		Left:   v.X - v.Width/2,
		Top:    v.Y - v.Height,
		Right:  v.X + v.Width/2,
		Bottom: v.Y,
	}
}

// Muzzle — точка вылета снаряда, верх корпуса по центру
func (v Vehicle) Muzzle() (float64, float64) {
	return v.X, v.Y - v.Height
}
