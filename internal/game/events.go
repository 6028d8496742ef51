package game

// EventKind identifies one of the closed set of engine events.
type EventKind int

const (
	EventOpportunityExpired EventKind = iota
	EventVictory
	EventRejection
	EventDeckExhausted
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventOpportunityExpired:
		return "expired"
	case EventVictory:
		return "victory"
	case EventRejection:
		return "rejection"
	case EventDeckExhausted:
		return "deck_exhausted"
	default:
		return "unknown"
	}
}

// Event is something the player needs to be told about.
// Only the types in this file implement it.
type Event interface {
	Kind() EventKind
	gameEvent()
}

// OpportunityExpired is emitted when an opportunity leaves the board on its own.
type OpportunityExpired struct {
	Opportunity *Opportunity
}

func (OpportunityExpired) Kind() EventKind { return EventOpportunityExpired }
func (OpportunityExpired) gameEvent()      {}

// Victory is emitted when an ask-out succeeds. The game ends.
type Victory struct {
	Opportunity *Opportunity
}

func (Victory) Kind() EventKind { return EventVictory }
func (Victory) gameEvent()      {}

// Rejection is emitted when an ask-out fails.
// Punishment is the number of cards removed from every opportunity on the board.
type Rejection struct {
	Opportunity *Opportunity
	Punishment  int
}

func (Rejection) Kind() EventKind { return EventRejection }
func (Rejection) gameEvent()      {}

// DeckExhausted is emitted when the board needs an opportunity and the deck is empty.
// The game ends.
type DeckExhausted struct{}

func (DeckExhausted) Kind() EventKind { return EventDeckExhausted }
func (DeckExhausted) gameEvent()      {}

// Sink receives engine events synchronously, in the order they happen.
type Sink func(Event)
