package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

var botsCmd = &cobra.Command{
	Use:   "bots",
	Short: "List all bot policies",
	Long:  `Shows every bot policy that can play with 'snake bot <policy>'.`,
	Args:  cobra.NoArgs,
	Run:   runBots,
}

func runBots(_ *cobra.Command, _ []string) {
	policies := registry.List()

	if len(policies) == 0 {
		fmt.Println("No bots available.")
		return
	}

	fmt.Println("Available bots:")
	fmt.Println()

	maxNameLen := len("Policy")
	for _, p := range policies {
		maxNameLen = max(maxNameLen, len(p.Name))
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Policy", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "------", "-----------")

	for _, p := range policies {
		fmt.Printf("  %-*s  %s\n", maxNameLen, p.Name, p.Description)
	}

	fmt.Println()
	fmt.Println("Run 'snake bot <policy>' to watch one play.")
}
