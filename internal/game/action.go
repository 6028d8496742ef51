package game

import "fmt"

// Action is a player intent aimed at one opportunity on the board.
type Action int

const (
	ActionReveal Action = iota
	ActionReroll
	ActionAskOut
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionReveal:
		return "Reveal"
	case ActionReroll:
		return "Reroll"
	case ActionAskOut:
		return "AskOut"
	default:
		return "Unknown"
	}
}

// Outcome describes what an action did.
type Outcome struct {
	Action   Action
	Target   *Opportunity
	Revealed CardView // Set for ActionReveal
	Rerolled bool     // Set for ActionReroll; false when there was no face-up blank
	Accepted bool     // Set for ActionAskOut
}

// Dispatch runs the engine call that matches the action.
func (e *Engine) Dispatch(a Action, target *Opportunity) (Outcome, error) {
	out := Outcome{Action: a, Target: target}
	var err error

	switch a {
	case ActionReveal:
		out.Revealed, err = e.Reveal(target)
	case ActionReroll:
		out.Rerolled, err = e.Reroll(target)
	case ActionAskOut:
		out.Accepted, err = e.AskOut(target)
	default:
		err = fmt.Errorf("unknown action %d", int(a))
	}
	return out, err
}
