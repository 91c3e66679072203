// internal/app/game.go
package app

import (
	"github.com/charmbracelet/log"

	"go-swarm-shooter/internal/entity"
	"go-swarm-shooter/internal/event"
	"go-swarm-shooter/internal/system"
	"go-swarm-shooter/internal/types"
	"go-swarm-shooter/internal/utils"
)

// Game holds the main game state and logic.
type Game struct {
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	MovementSystem     *system.MovementSystem
	ChaseSystem        *system.ChaseSystem
	CombatSystem       *system.CombatSystem
	AnimationSystem    *system.AnimationSystem
	VisualEffectSystem *system.VisualEffectSystem
	PlayerSystem       *system.PlayerSystem
	DiagnosticsSystem  *system.DiagnosticsSystem
	PlayerID           types.EntityID

	opts   Options
	logger *log.Logger
}

// NewGame собирает мир, системы и расставляет игрока и врагов.
func NewGame(opts Options, input system.MovementInput, logger *log.Logger) *Game {
	opts = opts.withDefaults()
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()

	g := &Game{
		ECS:                ecs,
		EventDispatcher:    dispatcher,
		Rng:                utils.NewPRNGService(opts.Seed),
		MovementSystem:     system.NewMovementSystem(ecs, input, opts.Bounds),
		ChaseSystem:        system.NewChaseSystem(ecs),
		CombatSystem:       system.NewCombatSystem(ecs, dispatcher, logger, opts.TraceLifetime),
		AnimationSystem:    system.NewAnimationSystem(ecs),
		VisualEffectSystem: system.NewVisualEffectSystem(ecs),
		PlayerSystem:       system.NewPlayerSystem(ecs),
		DiagnosticsSystem:  system.NewDiagnosticsSystem(ecs, logger, opts.FrameStats, opts.DiagnosticsEvery),
		opts:               opts,
		logger:             logger,
	}

	dispatcher.Subscribe(event.EnemyKilled, g.PlayerSystem)
	dispatcher.Subscribe(event.EnemyKilled, event.ListenerFunc(g.onEnemyKilled))
	dispatcher.Subscribe(event.GunFired, event.ListenerFunc(g.onGunFired))

	g.PlayerID = g.spawnPlayer()
	g.spawnEnemies(opts.EnemiesCount)

	logger.Info("scene ready",
		"seed", g.Rng.Seed(),
		"enemies", opts.EnemiesCount,
		"chase", opts.Chase)
	return g
}

// Update выполняет один фиксированный шаг всех систем по порядку.
func (g *Game) Update(deltaTime float64) {
	g.ECS.GameTime += deltaTime

	g.MovementSystem.Update(deltaTime)
	if g.opts.Chase {
		g.ChaseSystem.Update(deltaTime)
	}
	g.CombatSystem.Update(deltaTime)
	g.AnimationSystem.Update(deltaTime)
	g.VisualEffectSystem.Update(deltaTime)
	g.DiagnosticsSystem.Update(deltaTime)
}

func (g *Game) GetGameTime() float64 {
	return g.ECS.GameTime
}

// Kills — сколько врагов сбил игрок.
func (g *Game) Kills() int {
	return g.PlayerSystem.Kills()
}

// EnemiesLeft — сколько врагов ещё живо.
func (g *Game) EnemiesLeft() int {
	return g.ECS.Count(entity.WithEnemy)
}

func (g *Game) onGunFired(e event.Event) {
	if shot, ok := e.Data.(event.FireData); ok {
		g.logger.Debug("gun fired", "shooter", shot.Shooter, "hit", shot.Hit)
	}
}

func (g *Game) onEnemyKilled(e event.Event) {
	if g.EnemiesLeft() == 0 {
		g.logger.Info("all enemies down", "time", g.ECS.GameTime, "kills", g.Kills())
	}
}
