package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

var memoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "Inspect or clear what the memory bot learned",
	Long: `The memory bot stores every graded move in a SQLite database
(--memory-db, default ~/.snake/memory.db).

Examples:
  snake memory stats
  snake memory clear
  snake memory stats --memory-db ./memory.db`,
}

var memoryStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how many memories are stored",
	Args:  cobra.NoArgs,
	RunE:  runMemoryStats,
}

var memoryClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every stored memory",
	Args:  cobra.NoArgs,
	RunE:  runMemoryClear,
}

func init() {
	memoryCmd.AddCommand(memoryStatsCmd)
	memoryCmd.AddCommand(memoryClearCmd)
}

func runMemoryStats(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagMemoryDB)
	if err != nil {
		return fmt.Errorf("error opening memory database: %w", err)
	}
	defer store.Close()

	stats, err := store.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("error reading memory stats: %w", err)
	}

	fmt.Printf("Memories in %s\n", flagMemoryDB)
	fmt.Println()

	if stats.Total == 0 {
		fmt.Println("Nothing learned yet.")
		fmt.Println()
		fmt.Println("Run 'snake bot memory --headless' to start learning.")
		return nil
	}

	fmt.Printf("  %-8s %d\n", "Total", stats.Total)
	fmt.Printf("  %-8s %d\n", "Good", stats.Good)
	fmt.Printf("  %-8s %d\n", "Bad", stats.Bad)
	if !stats.LastLearned.IsZero() {
		fmt.Printf("  %-8s %s\n", "Last", stats.LastLearned.Format("2006-01-02 15:04"))
	}
	return nil
}

func runMemoryClear(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagMemoryDB)
	if err != nil {
		return fmt.Errorf("error opening memory database: %w", err)
	}
	defer store.Close()

	n, err := store.ClearMemories(cmd.Context())
	if err != nil {
		return fmt.Errorf("error clearing memories: %w", err)
	}

	fmt.Printf("Forgot %d memories.\n", n)
	return nil
}
