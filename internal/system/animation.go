package system

import "go-swarm-shooter/internal/entity"

// AnimationSystem листает кадры спрайтов по таймерам анимации.
type AnimationSystem struct {
	ecs *entity.ECS
}

func NewAnimationSystem(ecs *entity.ECS) *AnimationSystem {
	return &AnimationSystem{ecs: ecs}
}

func (s *AnimationSystem) Update(deltaTime float64) {
	for rec := range s.ecs.Query(entity.WithAnimation, entity.WithSprite) {
		anim := rec.Animation
		anim.Timer.Tick(deltaTime)
		for n := anim.Timer.TimesFinishedThisTick(); n > 0; n-- {
			next := rec.Sprite.Index + 1
			if next > anim.MaxSprite || next < anim.MinSprite {
				next = anim.MinSprite
			}
			rec.Sprite.Index = next
		}
	}
}
