package game

// Kind is the hidden face of a card.
type Kind int

const (
	KindBlank Kind = iota
	KindHeart
)

// String returns the card face marker.
func (k Kind) String() string {
	if k == KindHeart {
		return "<3"
	}
	return "><"
}

// hiddenMarker is shown in place of the kind of a face-down card.
const hiddenMarker = "??"

// Card is a single face-down or face-up card that may count as a heart.
// Its kind is drawn once at construction and never changes.
type Card struct {
	kind     Kind
	revealed bool
}

// NewCard draws one value from rng and makes a heart if it is below probHeart.
func NewCard(rng RNG, probHeart float64) Card {
	kind := KindBlank
	if rng.Float64() < probHeart {
		kind = KindHeart
	}
	return Card{kind: kind}
}

// Reveal turns the card face up. Calling it twice has no further effect.
func (c *Card) Reveal() {
	c.revealed = true
}

// Revealed reports whether the card is face up.
func (c Card) Revealed() bool {
	return c.revealed
}

// HeartValue returns 1 for a heart and 0 otherwise.
func (c Card) HeartValue() int {
	if c.kind == KindHeart {
		return 1
	}
	return 0
}

// View returns the card as the player is allowed to see it.
func (c Card) View() CardView {
	return CardView{
		Revealed: c.revealed,
		Heart:    c.revealed && c.kind == KindHeart,
	}
}

// String renders the card, hiding its kind until revealed.
func (c Card) String() string {
	return c.View().String()
}

// CardView is the player-facing state of a card.
// Heart is always false while the card is face down.
type CardView struct {
	Revealed bool
	Heart    bool
}

// String renders "[??]" for a hidden card and the face marker otherwise.
func (v CardView) String() string {
	if !v.Revealed {
		return "[" + hiddenMarker + "]"
	}
	if v.Heart {
		return "[" + KindHeart.String() + "]"
	}
	return "[" + KindBlank.String() + "]"
}
