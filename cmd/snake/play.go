package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake with the keyboard",
	Long: `Start a game driven by the keyboard.

Controls:
  Arrows/WASD - Steer
  P           - Start
  X           - Give up
  R           - Restart (after game over)
  Ctrl+S      - Screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slow, walls wrap around
  normal - Default speed, walls wrap around
  hard   - Fast, walls are lethal

Without --difficulty the config file decides.

Examples:
  snake play
  snake play --difficulty hard
  snake play --walls lethal --fps 15
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadSnakeConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(true, "snake")
	if err != nil {
		return err
	}
	defer closer.Close()

	res, err := tui.Run(tui.Options{
		Snake:   cfg,
		Runtime: runtimeConfig(cfg),
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	fmt.Printf("Final score: %d\n", res.Score)
	return nil
}
