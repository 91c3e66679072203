// internal/config/config.go
package config

import (
	"image/color"
	"math"
)

const (
	ScreenHeight     = 900
	Resolution       = 16.0 / 9.0
	ScreenWidth      = int(ScreenHeight * Resolution)
	WindowTitle      = "Swarm Shooter"
	TicksPerSecond   = 60
	TimeStep         = 1.0 / TicksPerSecond
	LayerDepth       = 0.0
	BoundsWidth      = 1200.0
	BoundsHeight     = 640.0
	DiagnosticsEvery = 1.0 // секунды между строками диагностики в логе

	EnemiesCount          = 100
	EnemyRotationSpeedDeg = 90.0                                  // градусов в секунду
	EnemyRotationSpeed    = EnemyRotationSpeedDeg * math.Pi / 180 // радиан в секунду
	EnemyMovementSpeed    = 100.0                                 // единиц в секунду
	PlayerMovementSpeed   = 500.0                                 // единиц в секунду

	GunRange      = 250.0
	GunCooldown   = 0.2 // секунды между выстрелами
	TraceLifetime = 0.1 // сколько живёт отладочная линия выстрела
	TraceWidth    = 2.0

	AnimationFrameTime = 0.1
	PlayerMinSprite    = 0
	PlayerMaxSprite    = 2
	EnemyMinSprite     = 3
	EnemyMaxSprite     = 5

	AssetsDir    = "assets"
	SheetName    = "character.png"
	SheetCellW   = 32
	SheetCellH   = 32
	SheetColumns = 12
	SheetRows    = 8
)

var (
	ClearColor      = color.RGBA{26, 128, 255, 255} // (0.1, 0.5, 1.0)
	TraceColor      = color.RGBA{255, 255, 255, 255}
	BoundsColor     = color.RGBA{255, 255, 255, 64}
	PauseOverlay    = color.RGBA{0, 0, 0, 128}
	PlaceholderInk  = color.RGBA{20, 20, 30, 255}
	PlaceholderFill = []color.RGBA{
		{240, 240, 240, 255}, // игрок
		{220, 60, 60, 255},   // враг
		{70, 130, 180, 255},  // остальные клетки
	}
)
