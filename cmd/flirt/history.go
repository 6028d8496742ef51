package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flirt/internal/deck"
	"github.com/vovakirdan/flirt/internal/platform/tui"
	"github.com/vovakirdan/flirt/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryDeck  string
	flagHistoryPlain bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past nights",
	Long: `Display recently recorded games and aggregate statistics.

Examples:
  flirt history
  flirt history --deck-id classic --limit 50
  flirt history --plain
  flirt history --deck-id speed-dating --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Maximum number of games to show")
	historyCmd.Flags().StringVar(&flagHistoryDeck, "deck-id", "", "Only show games on this deck")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print a table instead of the interactive view")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete recorded games (for --deck-id, or all)")
}

func runHistory(cmd *cobra.Command, args []string) {
	if flagHistoryDeck != "" && !deck.Exists(flagHistoryDeck) {
		fmt.Fprintf(os.Stderr, "Error: unknown deck %q\n", flagHistoryDeck)
		fmt.Fprintln(os.Stderr, "Run 'flirt decks' to see available decks.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	exitOnErr("opening results database", err)
	defer store.Close()

	if flagHistoryClear {
		exitOnErr("clearing results", store.ClearResults(flagHistoryDeck))
		fmt.Println("History cleared.")
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagHistoryPlain && flagHistoryDeck == "" && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, sizeErr := term.GetSize(fd); sizeErr == nil {
			width, height = w, h
		}
		exitOnErr("history", tui.RunHistory(store, flagHistoryLimit, width, height))
		return
	}

	results, err := store.RecentResults(flagHistoryDeck, flagHistoryLimit)
	exitOnErr("retrieving results", err)

	title := "all decks"
	if flagHistoryDeck != "" {
		title = flagHistoryDeck
	}
	fmt.Printf("Past nights - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No nights recorded yet.")
		fmt.Println()
		fmt.Println("Run 'flirt play' to start one!")
		return
	}

	fmt.Printf("  %-16s  %-12s  %-14s  %-10s  %5s  %4s\n", "Date", "Deck", "Outcome", "Date with", "Turns", "No's")
	fmt.Printf("  %-16s  %-12s  %-14s  %-10s  %5s  %4s\n", "----", "----", "-------", "---------", "-----", "----")
	for _, r := range results {
		fmt.Printf("  %-16s  %-12s  %-14s  %-10s  %5d  %4d\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.DeckID, r.Outcome, r.Opportunity, r.Turns, r.Rejections)
	}

	stats, err := store.Stats(flagHistoryDeck)
	if err == nil {
		fmt.Println()
		fmt.Println(tui.FormatStats(stats))
	}
}
