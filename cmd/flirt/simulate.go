package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flirt/internal/bot"
	"github.com/vovakirdan/flirt/internal/config"
	"github.com/vovakirdan/flirt/internal/deck"
	"github.com/vovakirdan/flirt/internal/game"
)

var (
	flagSimGames    int
	flagSimActions  int
	flagSimMaxTurns int
	flagSimDeckID   string
	flagSimConfig   string
	flagSimPreset   string
	flagSimShuffle  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let a bot play many games",
	Long: `Plays games headlessly with a simple bot that only looks at face-up
cards, then reports how often it got a date. Useful for tuning decks and
configs. Game i uses seed --seed + i, so runs are reproducible.

Examples:
  flirt simulate --games 1000
  flirt simulate --deck-id speed-dating --difficulty hard --actions 3
  flirt simulate --config ./my-rules.yaml --seed 7 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimGames, "games", 100, "Number of games to play")
	simulateCmd.Flags().IntVar(&flagSimActions, "actions", bot.DefaultPolicy().ActionsPerTurn, "Bot actions per turn")
	simulateCmd.Flags().IntVar(&flagSimMaxTurns, "max-turns", 500, "Give up on a game after this many turns")
	simulateCmd.Flags().StringVar(&flagSimDeckID, "deck-id", deck.DefaultID, "Built-in deck to play")
	simulateCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
	simulateCmd.Flags().StringVar(&flagSimPreset, "difficulty", "", "Difficulty preset: easy, normal, hard")
	simulateCmd.Flags().BoolVar(&flagSimShuffle, "shuffle", true, "Shuffle the deck for every game")
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(false)
	exitOnErr("logging", err)
	defer closeLog()

	if flagSimGames < 1 || flagSimActions < 1 {
		exitOnErr("simulate", fmt.Errorf("--games and --actions must be positive"))
	}

	cfg, err := config.Load(flagSimConfig)
	exitOnErr("loading config", err)
	preset, err := config.ParsePreset(flagSimPreset)
	exitOnErr("difficulty", err)
	config.ApplyPreset(&cfg, preset)
	exitOnErr("config", cfg.Validate())

	d, err := deck.Get(flagSimDeckID)
	exitOnErr("loading deck", err)

	seed := flagSeed
	if seed == 0 {
		seed, err = game.NewSeed()
		exitOnErr("seed", err)
	}

	policy := bot.Policy{ActionsPerTurn: flagSimActions}
	rules := cfg.Rules()

	var wins, exhausted, unfinished, winTurns, rejections int
	for i := range flagSimGames {
		res, err := bot.Simulate(rules, d, seed+int64(i), flagSimShuffle, policy, flagSimMaxTurns)
		exitOnErr("simulation", err)

		logger.Debug("game", "n", i, "seed", seed+int64(i), "state", res.State,
			"winner", res.Winner, "turns", res.Turns, "rejections", res.Rejections)

		rejections += res.Rejections
		switch res.State {
		case game.StateWon:
			wins++
			winTurns += res.Turns
		case game.StateDeckExhausted:
			exhausted++
		default:
			unfinished++
		}
	}

	n := float64(flagSimGames)
	fmt.Printf("Deck %s, %s difficulty, %d games from seed %d\n", d.ID, preset, flagSimGames, seed)
	fmt.Println()
	fmt.Printf("  Won:          %d (%.1f%%)\n", wins, float64(wins)/n*100)
	fmt.Printf("  Ran out:      %d (%.1f%%)\n", exhausted, float64(exhausted)/n*100)
	if unfinished > 0 {
		fmt.Printf("  Unfinished:   %d\n", unfinished)
	}
	if wins > 0 {
		fmt.Printf("  Turns to win: %.1f on average\n", float64(winTurns)/float64(wins))
	}
	fmt.Printf("  Rejections:   %.2f per game\n", float64(rejections)/n)
}
