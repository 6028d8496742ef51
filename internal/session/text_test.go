package session

import (
	"testing"

	"github.com/vovakirdan/flirt/internal/game"
)

func TestDescribeEvent(t *testing.T) {
	opp := game.NewOpportunity(game.Spec{Name: "Claire", Cards: 1}, game.DefaultRules(), game.NewRNG(1))

	tests := []struct {
		ev   game.Event
		want string
	}{
		{game.OpportunityExpired{Opportunity: opp}, "Claire has left."},
		{game.Victory{Opportunity: opp}, "Claire said yes! You have a date! You win!"},
		{game.Rejection{Opportunity: opp, Punishment: 0}, "Claire said no. Everyone on the board loses 0 cards."},
		{game.Rejection{Opportunity: opp, Punishment: 3}, "Claire said no. Everyone on the board loses 3 cards."},
		{game.DeckExhausted{}, "There is no one left to meet. The night is over."},
	}

	for _, tt := range tests {
		t.Run(tt.ev.Kind().String(), func(t *testing.T) {
			if got := DescribeEvent(tt.ev); got != tt.want {
				t.Errorf("DescribeEvent() = %q, want %q", got, tt.want)
			}
		})
	}
}
