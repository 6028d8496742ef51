// Package command turns a line of player input into a verb and a board target.
//
// Verbs match by unique prefix ("rev" is reveal, "re" is ambiguous). Targets
// match by 1-based board position, exact name, or a unique name prefix or
// suffix, all case-insensitive.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/flirt/internal/game"
)

var (
	ErrEmpty           = errors.New("no command given")
	ErrUnknownVerb     = errors.New("unknown command")
	ErrAmbiguousVerb   = errors.New("ambiguous command")
	ErrNoTarget        = errors.New("command needs a target")
	ErrUnknownTarget   = errors.New("no one by that name")
	ErrAmbiguousTarget = errors.New("more than one match")
)

// Verb is a recognised command word.
type Verb int

const (
	VerbNone Verb = iota
	VerbReveal
	VerbReroll
	VerbAskOut
	VerbEndTurn
	VerbHelp
	VerbQuit
)

// String returns the canonical spelling of the verb.
func (v Verb) String() string {
	switch v {
	case VerbReveal:
		return "reveal"
	case VerbReroll:
		return "reroll"
	case VerbAskOut:
		return "ask"
	case VerbEndTurn:
		return "end"
	case VerbHelp:
		return "help"
	case VerbQuit:
		return "quit"
	default:
		return "none"
	}
}

// Action returns the engine action for verbs that target an opportunity.
func (v Verb) Action() (game.Action, bool) {
	switch v {
	case VerbReveal:
		return game.ActionReveal, true
	case VerbReroll:
		return game.ActionReroll, true
	case VerbAskOut:
		return game.ActionAskOut, true
	default:
		return 0, false
	}
}

// NeedsTarget reports whether the verb acts on an opportunity.
func (v Verb) NeedsTarget() bool {
	_, ok := v.Action()
	return ok
}

// words maps every accepted spelling to its verb.
var words = []struct {
	word string
	verb Verb
}{
	{"reveal", VerbReveal},
	{"flip", VerbReveal},
	{"reroll", VerbReroll},
	{"ask", VerbAskOut},
	{"askout", VerbAskOut},
	{"end", VerbEndTurn},
	{"wait", VerbEndTurn},
	{"pass", VerbEndTurn},
	{"help", VerbHelp},
	{"?", VerbHelp},
	{"quit", VerbQuit},
}

// Command is a parsed line of input.
type Command struct {
	Verb   Verb
	Target int // Index into the board; -1 when the verb takes no target
}

// Parse reads input against the names currently on the board, in board order.
func Parse(input string, board []string) (Command, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return Command{}, ErrEmpty
	}

	verb, err := matchVerb(fields[0])
	if err != nil {
		return Command{}, err
	}
	if !verb.NeedsTarget() {
		return Command{Verb: verb, Target: -1}, nil
	}

	rest := strings.Join(fields[1:], " ")
	target, err := matchTarget(rest, board)
	if err != nil {
		return Command{}, fmt.Errorf("%s: %w", verb, err)
	}
	return Command{Verb: verb, Target: target}, nil
}

func matchVerb(word string) (Verb, error) {
	word = strings.ToLower(word)

	found := VerbNone
	for _, w := range words {
		if w.word == word {
			return w.verb, nil
		}
		if !strings.HasPrefix(w.word, word) {
			continue
		}
		if found != VerbNone && found != w.verb {
			return VerbNone, fmt.Errorf("%w %q", ErrAmbiguousVerb, word)
		}
		found = w.verb
	}
	if found == VerbNone {
		return VerbNone, fmt.Errorf("%w %q", ErrUnknownVerb, word)
	}
	return found, nil
}

func matchTarget(query string, board []string) (int, error) {
	if query == "" {
		// With a single opportunity in play there is nothing to choose.
		if len(board) == 1 {
			return 0, nil
		}
		return -1, ErrNoTarget
	}

	if n, err := strconv.Atoi(strings.TrimPrefix(query, "#")); err == nil {
		if n < 1 || n > len(board) {
			return -1, fmt.Errorf("%w: #%d", ErrUnknownTarget, n)
		}
		return n - 1, nil
	}

	q := strings.ToLower(query)
	var exact, partial []int
	for i, name := range board {
		n := strings.ToLower(name)
		switch {
		case n == q:
			exact = append(exact, i)
		case strings.HasPrefix(n, q) || strings.HasSuffix(n, q):
			partial = append(partial, i)
		}
	}

	matches := exact
	if len(matches) == 0 {
		matches = partial
	}
	switch len(matches) {
	case 0:
		return -1, fmt.Errorf("%w: %q", ErrUnknownTarget, query)
	case 1:
		return matches[0], nil
	default:
		return -1, fmt.Errorf("%w for %q, use a number", ErrAmbiguousTarget, query)
	}
}

// Usage describes the accepted commands.
const Usage = `Commands:
  reveal <who>   flip their next card          (alias: flip)
  reroll <who>   swap their first face-up blank for a new card
  ask <who>      ask them out
  end            end the turn                   (aliases: wait, pass)
  help           show this text
  quit           leave the game

<who> is a board number (1, #2) or any unique part of a name's start or end.
Commands can be shortened: "rev 2", "a cla", "e".`
