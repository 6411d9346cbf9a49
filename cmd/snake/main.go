// snake is a terminal Snake game that people and bots can play.
//
// Usage:
//
//	snake play               - Play with the keyboard
//	snake bot <policy>       - Watch a bot play, or evaluate it with --headless
//	snake bots               - List available bot policies
//	snake menu               - Pick who plays interactively
//	snake serve              - Start SSH server for remote play
//	snake memory stats|clear - Inspect or wipe what the memory bot learned
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load game rules from a YAML file
//	--difficulty <preset> - easy, normal or hard
//	--walls <mode>        - wrap or lethal
//	--memory-db <path>    - Memory bot database (default: ~/.snake/memory.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import bots to register them
	_ "github.com/vovakirdan/tui-snake/internal/bot"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagWalls      string
	flagLogLevel   string
	flagLogFile    string
	flagMemoryDB   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - play or watch bots play in your terminal",
	Long: `Snake is the classic game for the terminal. Play it yourself, watch a
bot play it, evaluate bots in batch, or serve it over SSH.

Available commands:
  play     - Play with the keyboard
  bot      - Watch or evaluate a bot
  bots     - Show all bot policies
  menu     - Interactive player picker
  serve    - Start SSH server for remote play
  memory   - Inspect or clear the memory bot's database

Examples:
  snake play
  snake play --difficulty hard
  snake bot nearest
  snake bot memory --headless --games 200
  snake serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in ticks per second (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagWalls, "walls", "", "Wall mode: wrap or lethal (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagMemoryDB, "memory-db", "~/.snake/memory.db", "Path to memory bot database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(botCmd)
	rootCmd.AddCommand(botsCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(memoryCmd)
}
