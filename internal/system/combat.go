package system

import (
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"go-swarm-shooter/internal/component"
	"go-swarm-shooter/internal/entity"
	"go-swarm-shooter/internal/event"
	"go-swarm-shooter/internal/types"
	"go-swarm-shooter/internal/utils"
	"go-swarm-shooter/pkg/targeting"
)

// CombatSystem управляет оружием: по таймеру ищет ближайшего врага в
// радиусе и сбивает его.
type CombatSystem struct {
	ecs           *entity.ECS
	dispatcher    *event.Dispatcher
	logger        *log.Logger
	traceLifetime float64
}

func NewCombatSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, logger *log.Logger, traceLifetime float64) *CombatSystem {
	return &CombatSystem{
		ecs:           ecs,
		dispatcher:    dispatcher,
		logger:        logger,
		traceLifetime: traceLifetime,
	}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for rec := range s.ecs.Query(entity.WithGun, entity.WithPose) {
		rec.Gun.Timer.Tick(deltaTime)
		if rec.Gun.Timer.JustFinished() {
			s.fire(rec)
		}
	}
}

// fire выбирает цель и только потом меняет мир.
func (s *CombatSystem) fire(shooter *entity.Record) {
	origin := shooter.Pose.Position
	target, found := s.findNearestEnemyInRange(shooter)

	s.dispatcher.Dispatch(event.Event{
		Type: event.GunFired,
		Data: event.FireData{Shooter: shooter.ID, Hit: found},
	})
	if !found {
		return
	}

	s.spawnTrace(origin, target.Pose.Position)
	s.ecs.Despawn(target.ID)
	s.logger.Debug("enemy shot",
		"shooter", shooter.ID,
		"target", target.ID,
		"distance", origin.Sub(target.Pose.Position).Len())

	s.dispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.KillData{
			Shooter: shooter.ID,
			Target:  target.ID,
			From:    origin,
			To:      target.Pose.Position,
		},
	})
}

func (s *CombatSystem) findNearestEnemyInRange(shooter *entity.Record) (targeting.Candidate[types.EntityID], bool) {
	return targeting.FindClosest(s.ecs.TargetCandidates(), shooter.Pose.Position, shooter.Gun.Range)
}

func (s *CombatSystem) spawnTrace(from, to mgl64.Vec3) {
	rec := s.ecs.NewEntity()
	rec.Trace = &component.Trace{
		From:  from,
		To:    to,
		Timer: utils.NewTimer(s.traceLifetime, utils.Once),
	}
}
