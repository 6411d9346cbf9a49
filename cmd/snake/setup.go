package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// loadSnakeConfig resolves the game rules from the config file, the
// difficulty preset and the --walls and --fps overrides, in that order.
func loadSnakeConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplySnakePreset(&cfg, preset)

	switch flagWalls {
	case "":
	case "wrap":
		cfg.Rules.DieOnWall = false
	case "lethal":
		cfg.Rules.DieOnWall = true
	default:
		return cfg, fmt.Errorf("unknown wall mode %q (want wrap or lethal)", flagWalls)
	}

	if flagFPS > 0 {
		cfg.Rules.TickRate = flagFPS
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// runtimeConfig sizes the playfield to the current terminal.
func runtimeConfig(cfg config.SnakeConfig) core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = cfg.Rules.TickRate
	rt.Seed = flagSeed
	return rt
}

// newLogger builds the CLI logger. Interactive runs own the terminal, so
// without --log-file their logs are discarded.
func newLogger(interactive bool, prefix string) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	var (
		out    io.Writer = os.Stderr
		closer io.Closer = io.NopCloser(nil)
	)
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	case interactive:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
	})
	return logger, closer, nil
}

// openStore opens the memory database. The game still works without it.
func openStore(logger *log.Logger) *storage.Store {
	if flagMemoryDB == "" {
		return nil
	}
	store, err := storage.Open(flagMemoryDB)
	if err != nil {
		logger.Warn("could not open memory database", "path", flagMemoryDB, "error", err)
		return nil
	}
	return store
}

// policyEnv collects what a bot factory may need.
func policyEnv(cfg config.SnakeConfig, seed int64, store *storage.Store, logger *log.Logger) registry.Env {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return registry.Env{
		Seed:            seed,
		Store:           store,
		Logger:          logger,
		MemoryThreshold: cfg.Bot.MemoryThreshold,
	}
}
