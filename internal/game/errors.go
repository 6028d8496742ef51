package game

import "errors"

var (
	// ErrInvalidTarget is returned when an action names an opportunity that is not on the board.
	ErrInvalidTarget = errors.New("opportunity is not on the board")
	// ErrAllCardsRevealed is returned by RevealNext when no hidden card remains.
	ErrAllCardsRevealed = errors.New("all cards already revealed")
	// ErrGameOver is returned by any mutating call after the game has ended.
	ErrGameOver = errors.New("game is over")
	// ErrInvalidRules is returned by New when the rules cannot drive a game.
	ErrInvalidRules = errors.New("invalid rules")
	// ErrInvalidDeck is returned by New when the deck holds the same opportunity twice.
	ErrInvalidDeck = errors.New("invalid deck")
)
