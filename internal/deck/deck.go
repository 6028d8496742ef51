// Package deck defines opportunity decks: the YAML file format, the
// built-in decks, and building a shuffled draw pile for the engine.
package deck

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/flirt/internal/game"
)

// ErrInvalidDeck is returned when a deck definition cannot be played.
var ErrInvalidDeck = errors.New("invalid deck")

// Deck is an ordered list of opportunity specs.
// The last entry is drawn first.
type Deck struct {
	ID    string
	Name  string
	Specs []game.Spec
}

// Len returns the number of opportunities in the deck.
func (d Deck) Len() int {
	return len(d.Specs)
}

// Validate checks every entry.
func (d Deck) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidDeck)
	}
	for i, s := range d.Specs {
		switch {
		case s.Name == "":
			return fmt.Errorf("%w: %s entry %d has no name", ErrInvalidDeck, d.ID, i)
		case s.HeartsNeeded < 0:
			return fmt.Errorf("%w: %s entry %d (%s) needs %d hearts", ErrInvalidDeck, d.ID, i, s.Name, s.HeartsNeeded)
		case s.Cards < 0:
			return fmt.Errorf("%w: %s entry %d (%s) has %d cards", ErrInvalidDeck, d.ID, i, s.Name, s.Cards)
		}
	}
	return nil
}

// Shuffled returns a copy of the deck in a random order.
func (d Deck) Shuffled(rng game.RNG) Deck {
	specs := slices.Clone(d.Specs)
	for i := len(specs) - 1; i > 0; i-- {
		j := int(rng.Float64() * float64(i+1))
		specs[i], specs[j] = specs[j], specs[i]
	}
	d.Specs = specs
	return d
}

// Build draws every opportunity's cards and returns the draw pile in deck order.
func (d Deck) Build(rules game.Rules, rng game.RNG) []*game.Opportunity {
	opps := make([]*game.Opportunity, len(d.Specs))
	for i, s := range d.Specs {
		opps[i] = game.NewOpportunity(s, rules, rng)
	}
	return opps
}
