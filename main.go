package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"match-game/config"
	"match-game/game"
	"match-game/game/manager"
	"match-game/ui"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "match-game:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.Load(args, out)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: out}).
		Level(cfg.LogLevel).
		With().Timestamp().Logger()

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.ScreenWidth), int32(cfg.ScreenHeight), "Match Three")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))

	g := game.NewGame(cfg.GameOptions(&logger))
	sm := manager.NewStateManager(g, logger)

	renderer := ui.NewRenderer(cfg.FontPath, logger)
	defer renderer.Close()

	logger.Info().
		Dur("time_limit", cfg.TimeLimit).
		Int("target", cfg.TargetScore).
		Int("fps", cfg.FPS).
		Msg("game started")

	for !rl.WindowShouldClose() {
		renderer.HandleInput(sm)
		sm.Tick()
		renderer.Draw(sm)
	}

	logger.Info().
		Int("games", sm.GamesPlayed()).
		Int("wins", sm.Wins()).
		Int("high_score", sm.HighScore()).
		Float64("average", sm.AverageScore()).
		Msg("session ended")
	return nil
}
