package app

import (
	"github.com/go-gl/mathgl/mgl64"

	"go-swarm-shooter/internal/config"
	"go-swarm-shooter/internal/defs"
	"go-swarm-shooter/internal/system"
)

// Options — всё, что нужно для сборки сцены. Глобального состояния нет:
// main заполняет Options из флагов и передаёт в NewGame. Нулевые Actors,
// FrameStats, Bounds, SpawnArea, TraceLifetime и DiagnosticsEvery NewGame
// заменяет значениями из DefaultOptions.
type Options struct {
	Seed             int64 // 0 — сид от текущего времени
	EnemiesCount     int
	Chase            bool       // включает ChaseSystem
	Bounds           mgl64.Vec2 // границы движения игрока, центр в нуле
	SpawnArea        mgl64.Vec2 // область появления врагов, центр в нуле
	LayerDepth       float64
	TraceLifetime    float64
	DiagnosticsEvery float64
	Actors           *defs.Library
	FrameStats       system.FrameStats
}

// DefaultOptions повторяет значения из config.
func DefaultOptions() Options {
	return Options{
		EnemiesCount:     config.EnemiesCount,
		Chase:            true,
		Bounds:           mgl64.Vec2{config.BoundsWidth, config.BoundsHeight},
		SpawnArea:        mgl64.Vec2{float64(config.ScreenWidth), config.ScreenHeight},
		LayerDepth:       config.LayerDepth,
		TraceLifetime:    config.TraceLifetime,
		DiagnosticsEvery: config.DiagnosticsEvery,
		Actors:           defs.Default(),
		FrameStats:       func() (float64, float64) { return 0, 0 },
	}
}

// withDefaults подставляет значения по умолчанию вместо незаданных полей.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Actors == nil {
		o.Actors = d.Actors
	}
	if o.FrameStats == nil {
		o.FrameStats = d.FrameStats
	}
	if o.Bounds == (mgl64.Vec2{}) {
		o.Bounds = d.Bounds
	}
	if o.SpawnArea == (mgl64.Vec2{}) {
		o.SpawnArea = d.SpawnArea
	}
	if o.TraceLifetime <= 0 {
		o.TraceLifetime = d.TraceLifetime
	}
	if o.DiagnosticsEvery <= 0 {
		o.DiagnosticsEvery = d.DiagnosticsEvery
	}
	return o
}
