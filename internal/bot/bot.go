// Package bot plays games without a human, using only what a player can see.
// It is used to sanity-check deck and rule balance from the command line.
package bot

import (
	"github.com/vovakirdan/flirt/internal/deck"
	"github.com/vovakirdan/flirt/internal/game"
)

// Policy decides the bot's next move.
type Policy struct {
	ActionsPerTurn int // Actions before the bot ends its turn
}

// DefaultPolicy returns a policy that takes two actions per turn.
func DefaultPolicy() Policy {
	return Policy{ActionsPerTurn: 2}
}

// Next picks an action from the visible board.
// It reports false when ending the turn is the best option.
func (p Policy) Next(board []*game.Opportunity) (game.Action, *game.Opportunity, bool) {
	// A face-up heart count that meets the threshold is a guaranteed yes.
	for _, o := range board {
		if revealed := o.RevealedHeartCount(); revealed > 0 && revealed >= o.HeartsNeeded() {
			return game.ActionAskOut, o, true
		}
	}

	var best *game.Opportunity
	for _, o := range board {
		if o.HiddenCount() == 0 {
			continue
		}
		if best == nil || o.RemainingTime() > best.RemainingTime() {
			best = o
		}
	}
	if best != nil {
		return game.ActionReveal, best, true
	}

	// Nothing left to reveal: trade a known blank for a fresh chance.
	for _, o := range board {
		for _, c := range o.Cards() {
			if c.Revealed && !c.Heart {
				return game.ActionReroll, o, true
			}
		}
	}
	return 0, nil, false
}

// Result summarises one bot game.
type Result struct {
	State      game.State
	Winner     string
	Turns      int
	Rejections int
	Actions    int
}

// Run plays engine to completion or until maxTurns turns have passed.
func Run(engine *game.Engine, policy Policy, maxTurns int) (Result, error) {
	var res Result

	for engine.Ongoing() && engine.Turn() < maxTurns {
		for range policy.ActionsPerTurn {
			action, target, ok := policy.Next(engine.Board())
			if !ok {
				break
			}
			if _, err := engine.Dispatch(action, target); err != nil {
				return res, err
			}
			res.Actions++
			if !engine.Ongoing() {
				break
			}
		}
		if !engine.Ongoing() {
			break
		}
		if err := engine.EndTurn(); err != nil {
			return res, err
		}
	}

	res.State = engine.State()
	res.Turns = engine.Turn()
	res.Rejections = engine.Rejections()
	if w := engine.Winner(); w != nil {
		res.Winner = w.Name()
	}
	return res, nil
}

// Simulate deals one game from d with the given seed and lets the policy play it.
func Simulate(rules game.Rules, d deck.Deck, seed int64, shuffle bool, policy Policy, maxTurns int) (Result, error) {
	rng := game.NewRNG(seed)
	if shuffle {
		d = d.Shuffled(rng)
	}
	engine, err := game.New(rules, d.Build(rules, rng), rng)
	if err != nil {
		return Result{}, err
	}
	return Run(engine, policy, maxTurns)
}
