package session

import (
	"fmt"

	"github.com/vovakirdan/flirt/internal/game"
)

// DescribeEvent renders an engine event as a line of text.
func DescribeEvent(ev game.Event) string {
	switch e := ev.(type) {
	case game.OpportunityExpired:
		return fmt.Sprintf("%s has left.", e.Opportunity.Name())
	case game.Victory:
		return fmt.Sprintf("%s said yes! You have a date! You win!", e.Opportunity.Name())
	case game.Rejection:
		return fmt.Sprintf("%s said no. Everyone on the board loses %s.", e.Opportunity.Name(), plural(e.Punishment, "card"))
	case game.DeckExhausted:
		return "There is no one left to meet. The night is over."
	default:
		return fmt.Sprintf("Something happened (%v).", ev.Kind())
	}
}

func describeOutcome(out game.Outcome) []string {
	name := out.Target.Name()

	switch out.Action {
	case game.ActionReveal:
		if out.Revealed.Heart {
			return []string{fmt.Sprintf("You get to know %s better: %s", name, out.Revealed)}
		}
		return []string{fmt.Sprintf("You get to know %s better: %s, nothing there.", name, out.Revealed)}
	case game.ActionReroll:
		if !out.Rerolled {
			return []string{fmt.Sprintf("%s has no face-up blank to reroll.", name)}
		}
		return []string{fmt.Sprintf("You try a different approach with %s.", name)}
	case game.ActionAskOut:
		return []string{fmt.Sprintf("You ask %s out...", name)}
	default:
		return nil
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
