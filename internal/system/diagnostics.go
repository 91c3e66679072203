package system

import (
	"github.com/charmbracelet/log"

	"go-swarm-shooter/internal/entity"
	"go-swarm-shooter/internal/utils"
)

// FrameStats отдаёт фактические TPS и FPS хоста.
type FrameStats func() (tps, fps float64)

// DiagnosticsSystem периодически пишет в лог частоту кадров и размер мира.
type DiagnosticsSystem struct {
	ecs    *entity.ECS
	logger *log.Logger
	stats  FrameStats
	timer  *utils.Timer
	ticks  int
}

func NewDiagnosticsSystem(ecs *entity.ECS, logger *log.Logger, stats FrameStats, every float64) *DiagnosticsSystem {
	return &DiagnosticsSystem{
		ecs:    ecs,
		logger: logger,
		stats:  stats,
		timer:  utils.NewTimer(every, utils.Repeating),
	}
}

func (s *DiagnosticsSystem) Update(deltaTime float64) {
	s.ticks++
	s.timer.Tick(deltaTime)
	if !s.timer.JustFinished() {
		return
	}

	tps, fps := s.stats()
	frameTimeMs := 0.0
	if fps > 0 {
		frameTimeMs = 1000 / fps
	}
	s.logger.Info("diagnostics",
		"ticks", s.ticks,
		"tps", tps,
		"fps", fps,
		"frame_time_ms", frameTimeMs,
		"entities", s.ecs.Len(),
		"enemies", s.ecs.Count(entity.WithEnemy))
	s.ticks = 0
}
