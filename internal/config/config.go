// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1024
	ScreenHeight = 768
	WindowTitle  = "Basic Scorched Earth"

	TicksPerSecond = 30

	// Рельеф
	TerrainBorder  = 100 // отступ от верхнего и нижнего края для высот рельефа
	TerrainSpacing = 75  // шаг между точками рельефа по X

	// Баллистика
	TimeScale       = 5.0 // ускорение времени полёта относительно реального
	DefaultAngle    = 45  // градусы от горизонта
	DefaultVelocity = 50
	MinAngle        = 0
	MaxAngle        = 90
	MinVelocity     = 0
	MaxVelocity     = 1000

	// Танки
	VehicleWidth  = 50
	VehicleHeight = 30
	BarrelLength  = 28.0
	BarrelWidth   = 4.0

	ProjectileRadius = 3.0
	TrailLength      = 256 // сколько прошлых позиций снаряда рисовать
	ImpactRadius     = 100.0

	TerrainCollision = true

	HUDFontSize = 24
	HUDX        = 40
	HUDY        = 50
)

var (
	SkyColor        = color.RGBA{0, 0, 255, 255}
	GroundColor     = color.RGBA{125, 125, 125, 255}
	GroundEdgeColor = color.RGBA{90, 90, 90, 255}
	PlayerColor     = color.RGBA{20, 20, 30, 255}
	OpponentColor   = color.RGBA{60, 20, 20, 255}
	WreckColor      = color.RGBA{25, 25, 25, 160}
	ProjectileColor = color.RGBA{255, 0, 0, 255}
	TrailColor      = color.RGBA{200, 94, 94, 200}
	ImpactColor     = color.RGBA{255, 0, 0, 255}
	TextLightColor  = color.RGBA{255, 255, 255, 255}
	HitBannerColor  = color.RGBA{255, 215, 0, 255}
	MissBannerColor = color.RGBA{240, 240, 240, 255}
)
