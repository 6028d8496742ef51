// Package game implements the card-driven dating game: cards that may be
// hearts, opportunities that hold them, and the engine that runs the board.
//
// The engine is single-threaded and synchronous. Every random value comes
// from the injected RNG, so a seed fully determines a game.
package game

import (
	"fmt"
	"math"
	"slices"
)

// State is the engine's position in its lifecycle.
type State int

const (
	StatePlaying State = iota
	StateWon
	StateDeckExhausted
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateDeckExhausted:
		return "deck_exhausted"
	default:
		return "unknown"
	}
}

// Engine owns the deck and the board and runs the turn loop.
type Engine struct {
	rules Rules
	rng   RNG
	sink  Sink

	deck  []*Opportunity // Draw pile; the last element is drawn first
	board []*Opportunity // In play, in draw order

	state      State
	winner     *Opportunity
	turn       int
	rejections int
}

// Option configures an Engine.
type Option func(*Engine)

// WithSink routes events to fn. Without it events are dropped.
func WithSink(fn Sink) Option {
	return func(e *Engine) {
		e.sink = fn
	}
}

// New starts a game with the given deck. The last opportunity in deck is drawn first.
// Events raised while filling the starting board already go to the sink.
func New(rules Rules, deck []*Opportunity, rng RNG, opts ...Option) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	seen := make(map[*Opportunity]bool, len(deck))
	for i, opp := range deck {
		if opp == nil {
			return nil, fmt.Errorf("%w: nil opportunity at %d", ErrInvalidDeck, i)
		}
		if seen[opp] {
			return nil, fmt.Errorf("%w: %q appears twice", ErrInvalidDeck, opp.Name())
		}
		seen[opp] = true
	}

	e := &Engine{
		rules: rules,
		rng:   rng,
		deck:  slices.Clone(deck),
		board: make([]*Opportunity, 0, rules.BoardSize),
		state: StatePlaying,
	}
	for _, opt := range opts {
		opt(e)
	}

	for range rules.StartingOpportunities {
		e.drawOpportunity()
	}
	return e, nil
}

// Rules returns the rules the engine was built with.
func (e *Engine) Rules() Rules { return e.rules }

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// Ongoing reports whether actions are still accepted.
func (e *Engine) Ongoing() bool { return e.state == StatePlaying }

// Winner returns the opportunity that said yes, or nil.
func (e *Engine) Winner() *Opportunity { return e.winner }

// Turn returns the number of completed turns.
func (e *Engine) Turn() int { return e.turn }

// Rejections returns how many ask-outs failed.
func (e *Engine) Rejections() int { return e.rejections }

// DeckRemaining returns how many opportunities are still in the draw pile.
func (e *Engine) DeckRemaining() int { return len(e.deck) }

// Board returns a copy of the opportunities in play, in draw order.
func (e *Engine) Board() []*Opportunity {
	return slices.Clone(e.board)
}

// OnBoard reports whether opp is currently in play.
func (e *Engine) OnBoard(opp *Opportunity) bool {
	return slices.Contains(e.board, opp)
}

// Reveal flips the next hidden card of target.
func (e *Engine) Reveal(target *Opportunity) (CardView, error) {
	if err := e.checkAction(target); err != nil {
		return CardView{}, err
	}
	return target.RevealNext()
}

// Reroll swaps target's first face-up blank for a fresh hidden card.
// It reports false when target has no face-up blank.
func (e *Engine) Reroll(target *Opportunity) (bool, error) {
	if err := e.checkAction(target); err != nil {
		return false, err
	}
	return target.RerollFirstRevealedBlank(), nil
}

// AskOut commits to target. On success the game is won. On failure every
// opportunity on the board loses cards, and the call reports false.
func (e *Engine) AskOut(target *Opportunity) (bool, error) {
	if err := e.checkAction(target); err != nil {
		return false, err
	}

	if target.CheckSuccess(false) {
		e.state = StateWon
		e.winner = target
		e.event(Victory{Opportunity: target})
		return true, nil
	}

	e.rejections++
	punishment := e.punishmentFor(target)
	e.event(Rejection{Opportunity: target, Punishment: punishment})
	for _, opp := range e.board {
		opp.RemoveCards(punishment)
	}
	return false, nil
}

// EndTurn advances every opportunity in play, lets some of them leave,
// and brings at most one new opportunity onto a board with a free slot.
func (e *Engine) EndTurn() error {
	if !e.Ongoing() {
		return ErrGameOver
	}
	e.turn++

	// Replacements change e.board, so walk a copy.
	for _, opp := range e.Board() {
		opp.AdvanceTime()
		if !opp.CheckExpired(e.rng.Float64()) {
			continue
		}
		e.event(OpportunityExpired{Opportunity: opp})
		e.replaceOpportunity(opp)
		if !e.Ongoing() {
			return nil
		}
	}

	if len(e.board) < e.rules.BoardSize {
		e.drawOpportunity()
	}
	return nil
}

// punishmentFor returns how many cards each board opportunity loses after target rejects.
func (e *Engine) punishmentFor(target *Opportunity) int {
	level := target.PunishmentLevel() / float64(e.rules.PunishmentDiv)
	return max(e.rules.MinPunishment+int(math.Floor(level)), 0)
}

// drawOpportunity moves the top of the deck onto the board, or ends the game
// when the deck is empty.
func (e *Engine) drawOpportunity() {
	if !e.Ongoing() {
		return
	}
	if len(e.deck) == 0 {
		e.state = StateDeckExhausted
		e.event(DeckExhausted{})
		return
	}
	last := len(e.deck) - 1
	opp := e.deck[last]
	e.deck[last] = nil
	e.deck = e.deck[:last]
	e.board = append(e.board, opp)
}

// replaceOpportunity discards opp from the board and draws a successor.
func (e *Engine) replaceOpportunity(opp *Opportunity) {
	if i := slices.Index(e.board, opp); i >= 0 {
		e.board = slices.Delete(e.board, i, i+1)
	}
	e.drawOpportunity()
}

func (e *Engine) checkAction(target *Opportunity) error {
	if !e.Ongoing() {
		return ErrGameOver
	}
	if target == nil || !e.OnBoard(target) {
		name := "<nil>"
		if target != nil {
			name = target.Name()
		}
		return fmt.Errorf("%w: %s", ErrInvalidTarget, name)
	}
	return nil
}

func (e *Engine) event(ev Event) {
	if e.sink != nil {
		e.sink(ev)
	}
}
