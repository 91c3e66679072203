package system

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"go-swarm-shooter/internal/component"
	"go-swarm-shooter/internal/entity"
	"go-swarm-shooter/internal/utils"
	"go-swarm-shooter/pkg/steering"
)

type fixedInput mgl64.Vec2

func (f fixedInput) Direction() mgl64.Vec2 { return mgl64.Vec2(f) }

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func spawnPlayer(ecs *entity.ECS, x, y, gunRange, cooldown float64) *entity.Record {
	rec := ecs.NewEntity()
	pose := steering.NewPose(x, y, 0)
	rec.Pose = &pose
	rec.Player = &component.Player{MovementSpeed: 600}
	rec.PlayerState = &component.PlayerStateComponent{}
	rec.Gun = &component.Gun{Timer: utils.NewTimer(cooldown, utils.Repeating), Range: gunRange}
	return rec
}

func spawnEnemy(ecs *entity.ECS, x, y float64) *entity.Record {
	rec := ecs.NewEntity()
	pose := steering.NewPose(x, y, 0)
	rec.Pose = &pose
	rec.Enemy = &component.Enemy{Profile: steering.Profile{AngularSpeed: mgl64.DegToRad(90), LinearSpeed: 100}}
	return rec
}
