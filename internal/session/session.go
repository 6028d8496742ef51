// Package session runs one player's games: it builds the engine from a config
// and deck, executes parsed commands, turns engine events into text, and
// records each finished game once.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flirt/internal/command"
	"github.com/vovakirdan/flirt/internal/config"
	"github.com/vovakirdan/flirt/internal/deck"
	"github.com/vovakirdan/flirt/internal/game"
	"github.com/vovakirdan/flirt/internal/storage"
)

// ErrQuit is returned by Execute when the player asks to leave.
var ErrQuit = errors.New("quit")

// Recorder stores finished games. *storage.Store implements it.
type Recorder interface {
	SaveResult(r storage.Result) (int64, error)
}

// Options configures a Session.
type Options struct {
	Config   config.Config
	Deck     deck.Deck
	Seed     int64 // 0 picks a random seed
	Shuffle  bool  // Shuffle the deck before building it
	Logger   *log.Logger
	Recorder Recorder // Optional
}

// Session owns the current engine and everything around it.
type Session struct {
	opts   Options
	logger *log.Logger

	engine   *game.Engine
	seed     int64
	pending  []string
	recorded bool
}

// New validates the options and starts the first game.
func New(opts Options) (*Session, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Deck.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{opts: opts, logger: logger}
	if err := s.start(opts.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart abandons the current game if it is still running and deals a new one.
func (s *Session) Restart() error {
	s.Abandon()
	return s.start(0)
}

func (s *Session) start(seed int64) error {
	if seed == 0 {
		var err error
		if seed, err = game.NewSeed(); err != nil {
			return err
		}
	}

	rng := game.NewRNG(seed)
	rules := s.opts.Config.Rules()

	d := s.opts.Deck
	if s.opts.Shuffle {
		d = d.Shuffled(rng)
	}

	s.seed = seed
	s.recorded = false
	s.pending = nil

	engine, err := game.New(rules, d.Build(rules, rng), rng, game.WithSink(s.onEvent))
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.engine = engine

	s.logger.Info("game started", "deck", d.ID, "seed", seed, "opportunities", d.Len())
	s.maybeRecord()
	return nil
}

// Engine returns the running engine for read access.
func (s *Session) Engine() *game.Engine { return s.engine }

// Seed returns the seed of the current game.
func (s *Session) Seed() int64 { return s.seed }

// DeckID returns the ID of the deck being played.
func (s *Session) DeckID() string { return s.opts.Deck.ID }

// Over reports whether the current game has ended.
func (s *Session) Over() bool { return !s.engine.Ongoing() }

// Intro returns the messages shown when a game starts, including any
// events raised while the starting board was dealt.
func (s *Session) Intro() []string {
	msgs := []string{fmt.Sprintf("The night begins. %d people might catch your eye.", s.opts.Deck.Len())}
	return append(msgs, s.drain()...)
}

// BoardNames returns the names on the board, in board order.
func (s *Session) BoardNames() []string {
	board := s.engine.Board()
	names := make([]string, len(board))
	for i, o := range board {
		names[i] = o.Name()
	}
	return names
}

// Execute parses one line of input and runs it.
// The returned messages describe what happened, in order.
func (s *Session) Execute(input string) ([]string, error) {
	cmd, err := command.Parse(input, s.BoardNames())
	if err != nil {
		return nil, err
	}
	return s.Run(cmd)
}

// Run executes a parsed command.
func (s *Session) Run(cmd command.Command) ([]string, error) {
	s.pending = nil

	switch cmd.Verb {
	case command.VerbHelp:
		return []string{command.Usage}, nil
	case command.VerbQuit:
		s.Abandon()
		return nil, ErrQuit
	case command.VerbEndTurn:
		if err := s.engine.EndTurn(); err != nil {
			return nil, err
		}
		msgs := []string{fmt.Sprintf("Turn %d is over.", s.engine.Turn())}
		s.maybeRecord()
		return append(msgs, s.drain()...), nil
	}

	action, ok := cmd.Verb.Action()
	if !ok {
		return nil, fmt.Errorf("%w %q", command.ErrUnknownVerb, cmd.Verb)
	}
	board := s.engine.Board()
	if cmd.Target < 0 || cmd.Target >= len(board) {
		return nil, fmt.Errorf("%w: #%d", game.ErrInvalidTarget, cmd.Target+1)
	}

	out, err := s.engine.Dispatch(action, board[cmd.Target])
	if err != nil {
		return nil, err
	}
	s.logger.Debug("action", "action", action, "target", out.Target.Name(), "turn", s.engine.Turn())

	msgs := describeOutcome(out)
	s.maybeRecord()
	return append(msgs, s.drain()...), nil
}

// Abandon records the current game as abandoned if it is still running.
func (s *Session) Abandon() {
	if s.engine == nil || s.recorded || !s.engine.Ongoing() {
		return
	}
	s.record(storage.OutcomeAbandoned, "")
}

func (s *Session) onEvent(ev game.Event) {
	s.logger.Debug("event", "kind", ev.Kind())
	s.pending = append(s.pending, DescribeEvent(ev))
}

func (s *Session) drain() []string {
	msgs := s.pending
	s.pending = nil
	return msgs
}

// maybeRecord saves the result the first time the engine reaches a terminal state.
func (s *Session) maybeRecord() {
	if s.recorded {
		return
	}
	switch s.engine.State() {
	case game.StateWon:
		s.record(storage.OutcomeWon, s.engine.Winner().Name())
	case game.StateDeckExhausted:
		s.record(storage.OutcomeDeckExhausted, "")
	}
}

func (s *Session) record(outcome, opportunity string) {
	s.recorded = true

	r := storage.Result{
		DeckID:      s.opts.Deck.ID,
		Outcome:     outcome,
		Opportunity: opportunity,
		Turns:       s.engine.Turn(),
		Rejections:  s.engine.Rejections(),
		Seed:        s.seed,
	}
	s.logger.Info("game finished", "outcome", outcome, "turns", r.Turns, "rejections", r.Rejections, "seed", s.seed)

	if s.opts.Recorder == nil {
		return
	}
	if _, err := s.opts.Recorder.SaveResult(r); err != nil {
		s.logger.Warn("could not record result", "error", err)
	}
}
