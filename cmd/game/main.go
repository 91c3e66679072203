// cmd/game/main.go
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	game "go-swarm-shooter/internal/app"
	"go-swarm-shooter/internal/assets"
	"go-swarm-shooter/internal/config"
	"go-swarm-shooter/internal/defs"
	"go-swarm-shooter/internal/input"
	"go-swarm-shooter/internal/render"
	"go-swarm-shooter/internal/state"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	// Ebiten вызывает Update ровно TicksPerSecond раз в секунду, поэтому шаг фиксированный.
	a.stateMachine.Update(config.TimeStep)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var (
		seed      = flag.Int64("seed", 0, "PRNG seed for enemy placement (0 = time based)")
		enemies   = flag.Int("enemies", config.EnemiesCount, "number of enemies to spawn")
		chase     = flag.Bool("chase", true, "enemies turn toward and chase the player")
		assetsDir = flag.String("assets", config.AssetsDir, "directory with "+config.SheetName)
		defsPath  = flag.String("defs", "", "actor definitions JSON (embedded defaults when empty)")
		logLevel  = flag.String("log-level", "info", "debug, info, warn or error")
		pprofAddr = flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	)
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "swarm",
	})
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		logger.Fatal("bad -log-level", "err", err)
	}
	logger.SetLevel(level)

	if *pprofAddr != "" {
		go func() {
			logger.Error("pprof stopped", "err", http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	actors := defs.Default()
	if *defsPath != "" {
		actors, err = defs.LoadActorDefinitions(*defsPath)
		if err != nil {
			logger.Fatal("load definitions", "err", err)
		}
	}

	atlas, err := assets.NewAtlas(config.SheetCellW, config.SheetCellH, config.SheetColumns, config.SheetRows)
	if err != nil {
		logger.Fatal("sprite atlas", "err", err)
	}
	manager := assets.NewManager(*assetsDir, assets.PlaceholderPalette{
		Fills: config.PlaceholderFill,
		Ink:   config.PlaceholderInk,
	}, logger)
	defer manager.Cleanup()
	sheet, err := manager.LoadSheet(config.SheetName, atlas)
	if err != nil {
		logger.Fatal("load sprite sheet", "err", err)
	}

	opts := game.DefaultOptions()
	opts.Seed = *seed
	opts.EnemiesCount = *enemies
	opts.Chase = *chase
	opts.Actors = actors
	opts.FrameStats = func() (float64, float64) {
		return ebiten.ActualTPS(), ebiten.ActualFPS()
	}

	g := game.NewGame(opts, input.Keyboard{}, logger)
	renderer := render.NewRenderer(sheet, config.ScreenWidth, config.ScreenHeight, opts.Bounds)

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewGameState(sm, g, renderer, logger))

	app := &AppGame{stateMachine: sm}
	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	if err := ebiten.RunGame(app); err != nil {
		logger.Error("game loop", "err", err)
		manager.Cleanup()
		os.Exit(1)
	}
	logger.Info("bye", "time", g.GetGameTime(), "kills", g.Kills())
}
