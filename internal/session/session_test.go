package session

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/flirt/internal/command"
	"github.com/vovakirdan/flirt/internal/config"
	"github.com/vovakirdan/flirt/internal/deck"
	"github.com/vovakirdan/flirt/internal/game"
	"github.com/vovakirdan/flirt/internal/storage"
)

type fakeRecorder struct {
	results []storage.Result
	err     error
}

func (f *fakeRecorder) SaveResult(r storage.Result) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.results = append(f.results, r)
	return int64(len(f.results)), nil
}

// newTestSession builds a session where every card is a heart (prob 1) or a blank (prob 0).
func newTestSession(t *testing.T, prob float64, specs ...game.Spec) (*Session, *fakeRecorder) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Cards.ProbabilityHeart = prob

	rec := &fakeRecorder{}
	s, err := New(Options{
		Config:   cfg,
		Deck:     deck.Deck{ID: "test", Name: "Test", Specs: specs},
		Seed:     11,
		Recorder: rec,
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s, rec
}

func mustExecute(t *testing.T, s *Session, input string) []string {
	t.Helper()
	msgs, err := s.Execute(input)
	if err != nil {
		t.Fatalf("Execute(%q) failed: %v", input, err)
	}
	return msgs
}

func TestRevealAndWin(t *testing.T) {
	s, rec := newTestSession(t, 1, game.Spec{Name: "Alissa", Text: "Bloop", Time: 50, HeartsNeeded: 1, Cards: 2})

	msgs := mustExecute(t, s, "reveal")
	if len(msgs) != 1 || !strings.Contains(msgs[0], "[<3]") {
		t.Errorf("reveal messages = %v", msgs)
	}

	msgs = mustExecute(t, s, "ask alissa")
	if !slices.Contains(msgs, "Alissa said yes! You have a date! You win!") {
		t.Errorf("ask messages = %v", msgs)
	}
	if !s.Over() {
		t.Error("game should be over after a yes")
	}

	if _, err := s.Execute("end"); !errors.Is(err, game.ErrGameOver) {
		t.Errorf("Execute(end) after win = %v, want ErrGameOver", err)
	}

	if len(rec.results) != 1 {
		t.Fatalf("expected 1 recorded result, got %d", len(rec.results))
	}
	r := rec.results[0]
	if r.Outcome != storage.OutcomeWon || r.Opportunity != "Alissa" || r.DeckID != "test" || r.Seed != 11 {
		t.Errorf("recorded %+v", r)
	}
}

func TestRejection(t *testing.T) {
	s, rec := newTestSession(t, 0,
		game.Spec{Name: "Bella", Time: 10, HeartsNeeded: 1, Cards: 3},
	)

	msgs := mustExecute(t, s, "ask 1")
	want := "Bella said no. Everyone on the board loses 1 card."
	if !slices.Contains(msgs, want) {
		t.Errorf("ask messages = %v, want %q", msgs, want)
	}
	if s.Engine().Board()[0].CardCount() != 2 {
		t.Errorf("cards = %d, want 2", s.Engine().Board()[0].CardCount())
	}
	if len(rec.results) != 0 {
		t.Error("a rejection does not end the game")
	}
}

func TestRerollMessages(t *testing.T) {
	s, _ := newTestSession(t, 0, game.Spec{Name: "Claire", Time: 50, HeartsNeeded: 1, Cards: 2})

	msgs := mustExecute(t, s, "reroll")
	if !strings.Contains(msgs[0], "no face-up blank") {
		t.Errorf("reroll without blanks = %v", msgs)
	}

	mustExecute(t, s, "flip")
	msgs = mustExecute(t, s, "rer claire")
	if !strings.Contains(msgs[0], "different approach") {
		t.Errorf("reroll = %v", msgs)
	}
}

func TestEndTurnAndDeckOut(t *testing.T) {
	s, rec := newTestSession(t, 0.5, game.Spec{Name: "Dian", Time: 100, HeartsNeeded: 2, Cards: 5})

	msgs := mustExecute(t, s, "end")
	if msgs[0] != "Turn 1 is over." {
		t.Errorf("first message = %q", msgs[0])
	}
	if !strings.Contains(msgs[len(msgs)-1], "night is over") {
		t.Errorf("expected deck-out message, got %v", msgs)
	}
	if len(rec.results) != 1 || rec.results[0].Outcome != storage.OutcomeDeckExhausted || rec.results[0].Turns != 1 {
		t.Errorf("recorded %+v", rec.results)
	}
}

func TestEmptyDeckEndsAtIntro(t *testing.T) {
	s, rec := newTestSession(t, 0.4)

	intro := s.Intro()
	if len(intro) != 2 || !strings.Contains(intro[1], "night is over") {
		t.Errorf("Intro() = %v", intro)
	}
	if !s.Over() || len(rec.results) != 1 {
		t.Errorf("over = %v, results = %d", s.Over(), len(rec.results))
	}
}

func TestParseErrorsReachCaller(t *testing.T) {
	s, _ := newTestSession(t, 0.4,
		game.Spec{Name: "Alissa", Time: 50, Cards: 1},
	)

	if _, err := s.Execute("dance"); !errors.Is(err, command.ErrUnknownVerb) {
		t.Errorf("Execute(dance) = %v", err)
	}
	if _, err := s.Execute("reveal zed"); !errors.Is(err, command.ErrUnknownTarget) {
		t.Errorf("Execute(reveal zed) = %v", err)
	}

	mustExecute(t, s, "reveal")
	if _, err := s.Execute("reveal"); !errors.Is(err, game.ErrAllCardsRevealed) {
		t.Errorf("second reveal = %v, want ErrAllCardsRevealed", err)
	}
}

func TestHelp(t *testing.T) {
	s, _ := newTestSession(t, 0.4, game.Spec{Name: "A", Time: 50, Cards: 1})
	msgs := mustExecute(t, s, "help")
	if len(msgs) != 1 || msgs[0] != command.Usage {
		t.Errorf("help = %v", msgs)
	}
}

func TestQuitRecordsAbandoned(t *testing.T) {
	s, rec := newTestSession(t, 0.4, game.Spec{Name: "A", Time: 50, Cards: 1})

	if _, err := s.Execute("quit"); !errors.Is(err, ErrQuit) {
		t.Fatalf("Execute(quit) = %v, want ErrQuit", err)
	}
	if len(rec.results) != 1 || rec.results[0].Outcome != storage.OutcomeAbandoned {
		t.Errorf("recorded %+v", rec.results)
	}

	s.Abandon()
	if len(rec.results) != 1 {
		t.Error("a game is recorded only once")
	}
}

func TestRestart(t *testing.T) {
	s, rec := newTestSession(t, 0.4,
		game.Spec{Name: "A", Time: 50, Cards: 1},
		game.Spec{Name: "B", Time: 50, Cards: 1},
	)
	first := s.Engine()

	if err := s.Restart(); err != nil {
		t.Fatalf("Restart() failed: %v", err)
	}
	if s.Engine() == first || s.Over() {
		t.Error("Restart() should deal a fresh running game")
	}
	if len(rec.results) != 1 || rec.results[0].Outcome != storage.OutcomeAbandoned {
		t.Errorf("recorded %+v", rec.results)
	}
}

func TestRecorderFailureDoesNotBreakGame(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Cards.ProbabilityHeart = 1
	s, err := New(Options{
		Config:   cfg,
		Deck:     deck.Deck{ID: "test", Specs: []game.Spec{{Name: "A", Time: 50, HeartsNeeded: 1, Cards: 1}}},
		Seed:     3,
		Recorder: &fakeRecorder{err: errors.New("disk full")},
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	mustExecute(t, s, "reveal")
	mustExecute(t, s, "ask")
	if !s.Over() {
		t.Error("game should still end")
	}
}

func TestSameSeedSameDeal(t *testing.T) {
	d, err := deck.Get(deck.DefaultID)
	if err != nil {
		t.Fatal(err)
	}
	deal := func() string {
		s, err := New(Options{Config: config.DefaultConfig(), Deck: d, Seed: 99, Shuffle: true})
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}
		mustExecute(t, s, "end")
		mustExecute(t, s, "end")
		var sb strings.Builder
		for _, o := range s.Engine().Board() {
			sb.WriteString(o.String())
		}
		return sb.String()
	}

	if deal() != deal() {
		t.Error("equal seeds dealt different boards")
	}
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Board.Size = 0
	if _, err := New(Options{Config: cfg, Deck: deck.Deck{ID: "x"}}); err == nil {
		t.Error("invalid config should fail")
	}
	if _, err := New(Options{Config: config.DefaultConfig(), Deck: deck.Deck{}}); err == nil {
		t.Error("deck without id should fail")
	}
}
