package game

// sequenceRNG replays a fixed list of draws, cycling when it runs out.
type sequenceRNG struct {
	values []float64
	idx    int
}

func (r *sequenceRNG) Float64() float64 {
	v := r.values[r.idx%len(r.values)]
	r.idx++
	return v
}

// constRNG always returns the same draw.
type constRNG float64

func (c constRNG) Float64() float64 { return float64(c) }

// forcedOpportunity builds an opportunity whose cards have the given kinds.
// Rerolled cards are blanks.
func forcedOpportunity(name string, time, hearts int, kinds ...Kind) *Opportunity {
	o := NewOpportunity(Spec{Name: name, Text: "test", Time: time, HeartsNeeded: hearts}, DefaultRules(), constRNG(0.99))
	for _, k := range kinds {
		o.cards = append(o.cards, Card{kind: k})
	}
	return o
}

// testRules returns default rules with the given board size and starting count.
func testRules(boardSize, starting int) Rules {
	r := DefaultRules()
	r.BoardSize = boardSize
	r.StartingOpportunities = starting
	return r
}

// eventRecorder collects events from an engine sink.
type eventRecorder struct {
	events []Event
}

func (r *eventRecorder) sink(e Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) kinds() []EventKind {
	kinds := make([]EventKind, len(r.events))
	for i, e := range r.events {
		kinds[i] = e.Kind()
	}
	return kinds
}
