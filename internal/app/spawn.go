package app

import (
	"github.com/go-gl/mathgl/mgl64"

	"go-swarm-shooter/internal/component"
	"go-swarm-shooter/internal/defs"
	"go-swarm-shooter/internal/types"
	"go-swarm-shooter/internal/utils"
	"go-swarm-shooter/pkg/steering"
)

// spawnPlayer ставит игрока в начало координат.
func (g *Game) spawnPlayer() types.EntityID {
	def := g.opts.Actors.Player()
	rec := g.ECS.NewEntity()

	pose := steering.NewPose(0, 0, g.opts.LayerDepth)
	rec.Pose = &pose
	rec.Sprite, rec.Animation = animationFor(def)
	rec.Player = &component.Player{MovementSpeed: def.MovementSpeed}
	rec.PlayerState = &component.PlayerStateComponent{}
	if def.Gun != nil {
		rec.Gun = &component.Gun{
			Timer: utils.NewTimer(def.Gun.Cooldown, utils.Repeating),
			Range: def.Gun.Range,
		}
	}
	return rec.ID
}

// spawnEnemies расставляет врагов в целых точках области появления:
// x в [-W/2, W/2), y в [-H/2, H/2).
func (g *Game) spawnEnemies(count int) {
	def := g.opts.Actors.Enemy()
	profile := steering.Profile{
		AngularSpeed: mgl64.DegToRad(def.RotationSpeedDeg),
		LinearSpeed:  def.MovementSpeed,
	}
	maxX := int(g.opts.SpawnArea.X() / 2)
	maxY := int(g.opts.SpawnArea.Y() / 2)

	for i := 0; i < count; i++ {
		x := g.Rng.IntRange(-maxX, maxX)
		y := g.Rng.IntRange(-maxY, maxY)

		rec := g.ECS.NewEntity()
		pose := steering.NewPose(float64(x), float64(y), g.opts.LayerDepth)
		rec.Pose = &pose
		rec.Sprite, rec.Animation = animationFor(def)
		rec.Enemy = &component.Enemy{Profile: profile}
	}
}

func animationFor(def defs.ActorDefinition) (*component.Sprite, *component.Animation) {
	return &component.Sprite{Index: def.Animation.MinSprite},
		&component.Animation{
			Timer:     utils.NewTimer(def.Animation.FrameTime, utils.Repeating),
			MinSprite: def.Animation.MinSprite,
			MaxSprite: def.Animation.MaxSprite,
		}
}
