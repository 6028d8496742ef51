package game

import (
	"fmt"
	"math"
	"strings"
)

// Spec fully describes an opportunity before its cards are drawn.
type Spec struct {
	Name         string
	Text         string
	Time         int // Turns before the opportunity is likely to leave
	HeartsNeeded int
	Cards        int
}

// Opportunity is a person on (or waiting to reach) the board.
// It owns a row of hidden cards, a countdown, and a heart threshold.
type Opportunity struct {
	name          string
	description   string
	remainingTime int
	heartsNeeded  int
	cards         []Card
	nextReveal    int // Index of the next card to reveal; always within [0, len(cards)]

	rules Rules
	rng   RNG
}

// NewOpportunity builds an opportunity and draws its cards from rng.
// Negative thresholds and card counts are treated as zero.
func NewOpportunity(spec Spec, rules Rules, rng RNG) *Opportunity {
	hearts := max(spec.HeartsNeeded, 0)
	count := max(spec.Cards, 0)

	o := &Opportunity{
		name:          spec.Name,
		description:   spec.Text,
		remainingTime: spec.Time,
		heartsNeeded:  hearts,
		cards:         make([]Card, 0, count),
		rules:         rules,
		rng:           rng,
	}
	for range count {
		o.cards = append(o.cards, NewCard(rng, rules.ProbabilityHeart))
	}
	return o
}

// Name returns the display name.
func (o *Opportunity) Name() string { return o.name }

// Description returns the flavor text.
func (o *Opportunity) Description() string { return o.description }

// RemainingTime returns the countdown. It goes negative once overdue.
func (o *Opportunity) RemainingTime() int { return o.remainingTime }

// HeartsNeeded returns the success threshold.
func (o *Opportunity) HeartsNeeded() int { return o.heartsNeeded }

// NextRevealIndex returns the position of the next card RevealNext would flip.
func (o *Opportunity) NextRevealIndex() int { return o.nextReveal }

// CardCount returns how many cards the opportunity still holds.
func (o *Opportunity) CardCount() int { return len(o.cards) }

// HiddenCount returns how many cards can still be revealed.
func (o *Opportunity) HiddenCount() int { return len(o.cards) - o.nextReveal }

// Cards returns the player-visible state of every card in order.
func (o *Opportunity) Cards() []CardView {
	views := make([]CardView, len(o.cards))
	for i, c := range o.cards {
		views[i] = c.View()
	}
	return views
}

// AdvanceTime ticks the countdown by one turn.
func (o *Opportunity) AdvanceTime() {
	o.remainingTime--
}

// CheckExpired reports whether the opportunity leaves, given a uniform draw in [0,1).
// Higher draws and lower remaining time make leaving more likely.
func (o *Opportunity) CheckExpired(draw float64) bool {
	return math.Pow(draw, o.rules.ExpiryExponent) > float64(o.remainingTime)/o.rules.ExpiryScale
}

// RevealNext flips the next hidden card and returns it.
func (o *Opportunity) RevealNext() (CardView, error) {
	if o.nextReveal >= len(o.cards) {
		return CardView{}, fmt.Errorf("%s: %w", o.name, ErrAllCardsRevealed)
	}
	card := &o.cards[o.nextReveal]
	card.Reveal()
	o.nextReveal++
	return card.View(), nil
}

// RerollFirstRevealedBlank swaps the first face-up blank for a fresh hidden card
// at the end of the row. It reports false when there is no face-up blank.
func (o *Opportunity) RerollFirstRevealedBlank() bool {
	for i, c := range o.cards {
		if !c.revealed || c.kind == KindHeart {
			continue
		}
		o.cards = append(o.cards[:i], o.cards[i+1:]...)
		o.cards = append(o.cards, NewCard(o.rng, o.rules.ProbabilityHeart))
		// Revealed cards always sit before the cursor, so it moves back by one.
		o.nextReveal--
		return true
	}
	return false
}

// RevealedHeartCount counts hearts among face-up cards.
func (o *Opportunity) RevealedHeartCount() int {
	n := 0
	for _, c := range o.cards {
		if c.revealed {
			n += c.HeartValue()
		}
	}
	return n
}

// TotalHeartCount counts hearts among all cards, hidden or not.
func (o *Opportunity) TotalHeartCount() int {
	n := 0
	for _, c := range o.cards {
		n += c.HeartValue()
	}
	return n
}

// CheckSuccess reports whether asking out would succeed.
// Unless ignoreFacingRule is set, at least one heart must be face up.
func (o *Opportunity) CheckSuccess(ignoreFacingRule bool) bool {
	if o.TotalHeartCount() < o.heartsNeeded {
		return false
	}
	return ignoreFacingRule || o.RevealedHeartCount() > 0
}

// PunishmentLevel grows as time runs out and as more cards are revealed.
func (o *Opportunity) PunishmentLevel() float64 {
	elapsed := float64(o.rules.MaxTurns - o.remainingTime)
	return elapsed/float64(o.rules.TurnsDiv) + float64(o.nextReveal)
}

// RemoveCards drops the last n cards and pulls the cursor back inside the row.
func (o *Opportunity) RemoveCards(n int) {
	if n <= 0 {
		return
	}
	keep := max(len(o.cards)-n, 0)
	o.cards = o.cards[:keep]
	o.nextReveal = min(o.nextReveal, keep)
}

// String renders the opportunity as three text lines.
func (o *Opportunity) String() string {
	cards := make([]string, len(o.cards))
	for i, c := range o.cards {
		cards[i] = c.String()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %s; %s\n", strings.ToUpper(o.name), o.description)
	fmt.Fprintf(&sb, "Cards: %s\n", strings.Join(cards, " "))
	fmt.Fprintf(&sb, "Hearts needed: %d; Approximate time remaining: %d", o.heartsNeeded, o.remainingTime)
	return sb.String()
}
