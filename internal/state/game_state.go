// internal/state/game_state.go
package state

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	game "go-swarm-shooter/internal/app"
	"go-swarm-shooter/internal/render"
)

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	game     *game.Game
	renderer *render.Renderer
	logger   *log.Logger
}

func NewGameState(sm *StateMachine, g *game.Game, renderer *render.Renderer, logger *log.Logger) *GameState {
	return &GameState{
		sm:       sm,
		game:     g,
		renderer: renderer,
		logger:   logger,
	}
}

func (g *GameState) Enter() {
	g.logger.Debug("game resumed", "time", g.game.GetGameTime())
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	g.game.Update(deltaTime)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.ECS)

	// Debug text
	hud := fmt.Sprintf(
		"TPS: %0.1f  FPS: %0.1f\nEnemies: %d  Kills: %d\nArrows/WASD move, P pause, Esc quit",
		ebiten.ActualTPS(), ebiten.ActualFPS(), g.game.EnemiesLeft(), g.game.Kills())
	if g.renderer.Placeholder() {
		hud += "\nplaceholder sprites (sheet not found)"
	}
	ebitenutil.DebugPrint(screen, hud)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
