package system

import (
	"go-swarm-shooter/internal/entity"
	"go-swarm-shooter/pkg/steering"
)

// ChaseSystem поворачивает врагов к игроку и ведёт их вперёд.
type ChaseSystem struct {
	ecs *entity.ECS
}

func NewChaseSystem(ecs *entity.ECS) *ChaseSystem {
	return &ChaseSystem{ecs: ecs}
}

func (s *ChaseSystem) Update(deltaTime float64) {
	player, ok := s.ecs.Player()
	if !ok {
		return
	}
	target := player.Pose.XY()

	for rec := range s.ecs.Query(entity.WithEnemy, entity.WithPose, entity.Without(entity.WithPlayer)) {
		*rec.Pose = steering.Steer(*rec.Pose, rec.Enemy.Profile, target, deltaTime)
	}
}
