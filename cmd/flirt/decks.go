package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flirt/internal/deck"
)

var decksCmd = &cobra.Command{
	Use:   "decks",
	Short: "List all built-in decks",
	Long:  `Shows the decks bundled with flirt. Use --deck to play your own YAML deck.`,
	Run:   runDecks,
}

func runDecks(cmd *cobra.Command, args []string) {
	decks := deck.List()

	if len(decks) == 0 {
		fmt.Println("No decks available.")
		return
	}

	fmt.Println("Available decks:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, d := range decks {
		maxIDLen = max(maxIDLen, len(d.ID))
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "People", "Name")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "------", "----")
	for _, d := range decks {
		fmt.Printf("  %-*s  %-6d  %s\n", maxIDLen, d.ID, d.Count, d.Name)
	}

	fmt.Println()
	fmt.Println("Run 'flirt play --deck-id <id>' to play a deck.")
}
