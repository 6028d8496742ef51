package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flirt/internal/config"
	"github.com/vovakirdan/flirt/internal/deck"
	"github.com/vovakirdan/flirt/internal/platform/tui"
	"github.com/vovakirdan/flirt/internal/session"
	"github.com/vovakirdan/flirt/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagDeckPath   string
	flagDeckID     string
	flagPlain      bool
	flagShuffle    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Spend a night out. Type commands at the prompt:

  reveal <who>   - Flip the next hidden card
  reroll <who>   - Swap a face-up blank for a new hidden card
  ask <who>      - Ask them out
  end            - End the turn (also: wait, pass)
  help           - Show commands
  quit           - Leave

<who> is a board number or a name; it may be left out when only one
person is on the board.

Difficulty options:
  easy   - More hearts, a bigger board, milder rejections
  normal - The loaded config as is
  hard   - Fewer hearts, a smaller board, harsher rejections

Without --deck or --deck-id, an interactive terminal shows a deck picker.

Examples:
  flirt play
  flirt play --deck-id classic --difficulty easy
  flirt play --deck ./my-deck.yaml --config ./my-rules.yaml
  echo "reveal 1" | flirt play --plain --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagDeckPath, "deck", "", "Path to a deck YAML file")
	playCmd.Flags().StringVar(&flagDeckID, "deck-id", "", "Built-in deck to play (see 'flirt decks')")
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Use the line-oriented interface")
	playCmd.Flags().BoolVar(&flagShuffle, "shuffle", false, "Shuffle the deck before dealing")
	playCmd.MarkFlagsMutuallyExclusive("deck", "deck-id")
}

func runPlay(cmd *cobra.Command, args []string) {
	interactive := !flagPlain &&
		term.IsTerminal(int(os.Stdin.Fd())) &&
		term.IsTerminal(int(os.Stdout.Fd()))

	logger, closeLog, err := newLogger(interactive)
	exitOnErr("logging", err)
	defer closeLog()

	cfg, err := config.Load(flagConfig)
	exitOnErr("loading config", err)

	preset, err := config.ParsePreset(flagDifficulty)
	exitOnErr("difficulty", err)

	deckID := flagDeckID
	if interactive && flagDeckPath == "" && deckID == "" {
		choice, menuErr := tui.RunMenu(preset)
		exitOnErr("menu", menuErr)
		if choice.Quit {
			return
		}
		deckID = choice.DeckID
		preset = choice.Difficulty
	}
	config.ApplyPreset(&cfg, preset)

	d, err := deck.Resolve(deckID, flagDeckPath)
	exitOnErr("loading deck", err)

	var recorder session.Recorder
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		if !interactive {
			fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		}
	} else {
		defer store.Close()
		recorder = store
	}

	s, err := session.New(session.Options{
		Config:   cfg,
		Deck:     d,
		Seed:     flagSeed,
		Shuffle:  flagShuffle,
		Logger:   logger,
		Recorder: recorder,
	})
	exitOnErr("starting game", err)

	if interactive {
		err = tui.Run(s)
	} else {
		err = tui.RunPlain(os.Stdin, os.Stdout, s)
	}
	exitOnErr("running game", err)
}
