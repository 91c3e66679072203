// internal/system/visual_effect.go
package system

import (
	"go-swarm-shooter/internal/entity"
)

// VisualEffectSystem управляет временными визуальными эффектами.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update состаривает линии выстрелов и удаляет истёкшие.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for rec := range s.ecs.Query(entity.WithTrace) {
		rec.Trace.Timer.Tick(deltaTime)
		if rec.Trace.Timer.Finished() {
			s.ecs.Despawn(rec.ID)
		}
	}
}
