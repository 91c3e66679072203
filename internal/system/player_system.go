// internal/system/player_system.go
package system

import (
	"go-swarm-shooter/internal/entity"
	"go-swarm-shooter/internal/event"
)

// PlayerSystem ведёт счётчики игрока по событиям.
type PlayerSystem struct {
	ecs *entity.ECS
}

func NewPlayerSystem(ecs *entity.ECS) *PlayerSystem {
	return &PlayerSystem{ecs: ecs}
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	kill, ok := e.Data.(event.KillData)
	if !ok {
		return
	}

	// Засчитываем стрелку, если у него есть счётчик
	if shooter, ok := s.ecs.Get(kill.Shooter); ok && shooter.PlayerState != nil {
		shooter.PlayerState.Kills++
	}
}

// Kills возвращает счёт первого игрока.
func (s *PlayerSystem) Kills() int {
	for rec := range s.ecs.Query(entity.WithPlayer) {
		if rec.PlayerState != nil {
			return rec.PlayerState.Kills
		}
	}
	return 0
}
