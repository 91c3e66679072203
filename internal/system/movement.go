// internal/system/movement.go
package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"go-swarm-shooter/internal/entity"
	"go-swarm-shooter/internal/utils"
)

// MovementInput отдаёт направление движения игрока за текущий тик.
// Компоненты в {-1, 0, 1}; диагональ не нормализуется.
type MovementInput interface {
	Direction() mgl64.Vec2
}

// MovementSystem двигает игрока по вводу и держит его внутри границ
// уровня, центрированных в начале координат.
type MovementSystem struct {
	ecs    *entity.ECS
	input  MovementInput
	bounds mgl64.Vec2
}

func NewMovementSystem(ecs *entity.ECS, input MovementInput, bounds mgl64.Vec2) *MovementSystem {
	return &MovementSystem{ecs: ecs, input: input, bounds: bounds}
}

func (s *MovementSystem) Update(deltaTime float64) {
	direction := s.input.Direction()
	extents := s.bounds.Mul(0.5)

	for rec := range s.ecs.Query(entity.WithPlayer, entity.WithPose) {
		delta := direction.Mul(rec.Player.MovementSpeed * deltaTime)
		pos := rec.Pose.Position.Add(delta.Vec3(0))
		pos[0] = utils.Clamp(pos[0], -extents.X(), extents.X())
		pos[1] = utils.Clamp(pos[1], -extents.Y(), extents.Y())
		rec.Pose.Position = pos
	}
}
