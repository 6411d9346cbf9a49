package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/headless"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	flagHeadless bool
	flagGames    int
	flagMaxTicks uint64
)

var botCmd = &cobra.Command{
	Use:   "bot <policy>",
	Short: "Watch or evaluate a bot",
	Long: `Let a bot play. By default the game is shown in the terminal.
With --headless the bot plays a batch of games as fast as possible and a
summary is logged.

Examples:
  snake bot nearest
  snake bot random --fps 10
  snake bot memory --headless --games 500
  snake bot nearest --headless --games 20 --max-ticks 5000 --walls lethal`,
	Args: cobra.ExactArgs(1),
	RunE: runBot,
}

func init() {
	botCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Play without a terminal and log a summary")
	botCmd.Flags().IntVar(&flagGames, "games", 10, "Number of games to play headless")
	botCmd.Flags().Uint64Var(&flagMaxTicks, "max-ticks", 10000, "Give up a headless game after this many ticks (0 = no cap)")
}

func runBot(_ *cobra.Command, args []string) error {
	policy := args[0]
	if !registry.Exists(policy) {
		return fmt.Errorf("unknown policy %q, run 'snake bots' to see available bots", policy)
	}

	cfg, err := loadSnakeConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(!flagHeadless, "snake-"+policy)
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	src, err := registry.Create(policy, policyEnv(cfg, seed, store, logger))
	if err != nil {
		return err
	}

	if !flagHeadless {
		res, err := tui.Run(tui.Options{
			Snake:   cfg,
			Runtime: runtimeConfig(cfg),
			Source:  src,
			Logger:  logger,
		})
		if err != nil {
			return fmt.Errorf("error running game: %w", err)
		}
		fmt.Printf("Final score: %d\n", res.Score)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sum, err := headless.Run(ctx, headless.Options{
		Snake:    cfg,
		Source:   src,
		Games:    flagGames,
		Seed:     seed,
		MaxTicks: flagMaxTicks,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("headless run stopped after %d games: %w", sum.Games, err)
	}

	fmt.Printf("%s: %d games, best %d, mean %.1f\n", policy, sum.Games, sum.Best, sum.Mean())
	for _, cause := range []snake.DeathCause{snake.CauseSelf, snake.CauseWall, snake.CauseForced} {
		fmt.Printf("  %-6s %d\n", cause, sum.Causes[cause])
	}
	return nil
}
