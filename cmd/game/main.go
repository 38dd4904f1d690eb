// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	game "go-shadow-defend/internal/app"
	"go-shadow-defend/internal/config"
	"go-shadow-defend/internal/logging"
	"go-shadow-defend/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

const defaultConfigPath = "config/game.toml"

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("SHADOW_DEFEND_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}
	flag.StringVar(&configPath, "config", configPath, "path to the TOML config")
	headless := flag.Bool("headless", false, "run the simulation without a window")
	ticks := flag.Int("ticks", 60*60*10, "headless: maximum number of ticks")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	g, err := game.NewGame(cfg, logger)
	if err != nil {
		return err
	}

	if *headless {
		runHeadless(g, *ticks, logger)
		return nil
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(g))
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Shadow Defend")
	return ebiten.RunGame(&AppGame{stateMachine: sm})
}

// runHeadless играет без окна, каждая волна стартует сразу после предыдущей.
func runHeadless(g *game.Game, maxTicks int, logger *zap.Logger) {
	for i := 0; i < maxTicks; i++ {
		if g.Status() == game.Won || g.Status() == game.Lost {
			break
		}
		if g.Status() == game.AwaitingStart {
			g.StartWave()
		}
		g.Update()
	}
	logger.Info("simulation finished",
		zap.String("status", g.Status().String()),
		zap.Uint64("ticks", g.Ticks()),
		zap.String("level", g.Level.Map.Name),
		zap.Int("wave", g.Level.WaveSystem.WaveNumber()),
		zap.Int("next_wave", g.Level.WaveSystem.NextWaveNumber()),
		zap.Int("pending_instructions", g.Level.WaveSystem.Pending()),
		zap.Int("money", g.Account.Money()),
		zap.Int("lives", g.Account.Lives()),
		zap.Int("kills", g.Stats.Kills),
		zap.Int("leaks", g.Stats.Leaks),
		zap.Int("detonations", g.Stats.Detonations),
	)
	if err := g.Err(); err != nil {
		logger.Error("session stopped", zap.Error(err))
	}
}
