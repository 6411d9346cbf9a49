package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick who plays from a menu",
	Long: `Start snake in interactive menu mode.

Pick yourself or any bot. After a game you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select player
  Q            - Quit

Examples:
  snake menu
  snake menu --fps 15
  snake menu --memory-db ./memory.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadSnakeConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(true, "snake")
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	rt := runtimeConfig(cfg)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(rt)
		if err != nil {
			return err
		}
		rt = menuResult.Config
		rt.TickRate = cfg.Rules.TickRate

		if menuResult.Quit {
			return nil
		}

		rt.Seed = time.Now().UnixNano()
		src, err := tui.NewSource(menuResult.Policy, policyEnv(cfg, rt.Seed, store, logger))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		res, err := tui.Run(tui.Options{
			Snake:   cfg,
			Runtime: rt,
			Source:  src,
			Logger:  logger,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}
		if !res.BackToMenu {
			return nil
		}
	}
}
