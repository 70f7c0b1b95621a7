package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"match-game/game"
)

// Config holds the runtime settings. Environment variables provide the
// defaults and command-line flags override them.
type Config struct {
	TimeLimit     time.Duration
	TargetScore   int
	AnimationStep int
	Seed          uint64
	FPS           int
	ScreenWidth   int
	ScreenHeight  int
	FontPath      string
	LogLevel      zerolog.Level
}

// LoadDotEnv loads variables from an env file. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load reads the environment and then parses args.
func Load(args []string, out io.Writer) (*Config, error) {
	cfg, err := fromEnv()
	if err != nil {
		return nil, err
	}

	flags := flag.NewFlagSet("match-game", flag.ContinueOnError)
	flags.SetOutput(out)
	flags.DurationVar(&cfg.TimeLimit, "time", cfg.TimeLimit, "Round time limit")
	flags.IntVar(&cfg.TargetScore, "target", cfg.TargetScore, "Score needed to win")
	flags.IntVar(&cfg.AnimationStep, "step", cfg.AnimationStep, "Animation speed in pixels per frame")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 = time based)")
	flags.IntVar(&cfg.FPS, "fps", cfg.FPS, "Target frames per second")
	flags.StringVar(&cfg.FontPath, "font", cfg.FontPath, "TTF font used for the HUD")
	level := flags.String("log-level", cfg.LogLevel.String(), "Log level (debug, info, warn, error)")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if cfg.LogLevel, err = zerolog.ParseLevel(*level); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromEnv() (*Config, error) {
	cfg := &Config{
		TimeLimit:     game.DefaultTimeLimit,
		TargetScore:   game.DefaultTargetScore,
		AnimationStep: game.DefaultAnimationStep,
		FPS:           60,
		ScreenWidth:   800,
		ScreenHeight:  600,
		FontPath:      os.Getenv("FONT_PATH"),
		LogLevel:      zerolog.InfoLevel,
	}

	var err error
	if v := os.Getenv("GAME_TIME"); v != "" {
		if cfg.TimeLimit, err = parseSeconds(v); err != nil {
			return nil, fmt.Errorf("GAME_TIME: %w", err)
		}
	}
	if cfg.TargetScore, err = envInt("TARGET_SCORE", cfg.TargetScore); err != nil {
		return nil, err
	}
	if cfg.AnimationStep, err = envInt("ANIMATION_STEP", cfg.AnimationStep); err != nil {
		return nil, err
	}
	if cfg.FPS, err = envInt("FPS", cfg.FPS); err != nil {
		return nil, err
	}
	if v := os.Getenv("SEED"); v != "" {
		if cfg.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return nil, fmt.Errorf("SEED: %w", err)
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if cfg.LogLevel, err = zerolog.ParseLevel(v); err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}
	return cfg, nil
}

// parseSeconds accepts a Go duration ("90s", "2m") or a bare number of seconds.
func parseSeconds(v string) (time.Duration, error) {
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(v)
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func (c *Config) validate() error {
	switch {
	case c.TimeLimit <= 0:
		return fmt.Errorf("time limit must be positive, got %s", c.TimeLimit)
	case c.TargetScore <= 0:
		return fmt.Errorf("target score must be positive, got %d", c.TargetScore)
	case c.AnimationStep <= 0:
		return fmt.Errorf("animation step must be positive, got %d", c.AnimationStep)
	case c.FPS <= 0:
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	return nil
}

// GameOptions maps the configuration onto engine options.
func (c *Config) GameOptions(logger *zerolog.Logger) game.Options {
	return game.Options{
		TimeLimit:     c.TimeLimit,
		TargetScore:   c.TargetScore,
		AnimationStep: c.AnimationStep,
		Seed:          c.Seed,
		Logger:        logger,
	}
}
