// internal/system/collision.go
package system

import (
	"go-scorched-earth/internal/component"
	"go-scorched-earth/pkg/terrain"
)

// CheckHit проверяет попадание строго внутрь прямоугольника.
// Точка на границе считается промахом.
func CheckHit(x, y float64, target component.Rect) bool {
	inX := x > target.Left && x < target.Right
	inY := y > target.Top && y < target.Bottom
	return inX && inY
}

// HitsGround сообщает, что снаряд на линии рельефа или ниже неё.
// За боковыми краями поля рельефа нет.
func HitsGround(profile *terrain.Profile, x, y float64) bool {
	if profile == nil || x < 0 || x > profile.Width {
		return false
	}
	return y >= profile.HeightAt(x)
}
