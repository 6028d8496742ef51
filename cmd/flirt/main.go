// flirt is a card-driven dating game for the terminal.
//
// Usage:
//
//	flirt play              - Spend a night out (TUI, or line mode when piped)
//	flirt decks             - List built-in decks
//	flirt history           - Show past nights and statistics
//	flirt simulate          - Let a bot play many games and report the win rate
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for a reproducible night
//	--db <path>          - Set database path (default: ~/.flirt/results.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Append logs to a file instead of stderr
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flirt",
	Short: "Flirt - a card game about asking someone out",
	Long: `Flirt is a turn-based card game. People come and go, each hiding a row
of cards. Reveal cards to find hearts, and ask someone out once you have seen
enough. Ask too early and everyone on the board cools off.

Available commands:
  play      - Play a game
  decks     - Show all built-in decks
  history   - View past nights
  simulate  - Run a bot over many games

Examples:
  flirt play
  flirt play --deck-id speed-dating --difficulty hard
  flirt play --deck ./my-deck.yaml --plain
  flirt history --limit 50
  flirt simulate --games 1000`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flirt/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(decksCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(simulateCmd)
}
