package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	entries := []Result{
		{DeckID: "classic", Outcome: OutcomeDeckExhausted, Turns: 12, Rejections: 2, Seed: 1},
		{DeckID: "classic", Outcome: OutcomeWon, Opportunity: "Claire", Turns: 4, Seed: 2},
		{DeckID: "speed-dating", Outcome: OutcomeAbandoned, Turns: 1, Seed: 3},
	}
	for _, r := range entries {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	classic, err := store.RecentResults("classic", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(classic) != 2 {
		t.Fatalf("Expected 2 classic results, got %d", len(classic))
	}
	// Newest first
	if classic[0].Opportunity != "Claire" || classic[0].Outcome != OutcomeWon {
		t.Errorf("Expected the win first, got %+v", classic[0])
	}
	if classic[1].Rejections != 2 || classic[1].Seed != 1 {
		t.Errorf("Fields not round-tripped: %+v", classic[1])
	}
	if classic[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	all, err := store.RecentResults("", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 results across decks, got %d", len(all))
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult(Result{DeckID: "classic", Outcome: OutcomeWon, Turns: i})
	}

	results, err := store.RecentResults("classic", 3)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results with limit, got %d", len(results))
	}
	if results[0].Turns != 4 || results[2].Turns != 2 {
		t.Errorf("Results not newest first: %+v", results)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Games != 0 || empty.WinRate() != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveResult(Result{DeckID: "classic", Outcome: OutcomeWon, Turns: 3})
	store.SaveResult(Result{DeckID: "classic", Outcome: OutcomeWon, Turns: 5})
	store.SaveResult(Result{DeckID: "classic", Outcome: OutcomeDeckExhausted, Turns: 20})
	store.SaveResult(Result{DeckID: "classic", Outcome: OutcomeAbandoned, Turns: 1})
	store.SaveResult(Result{DeckID: "other", Outcome: OutcomeWon, Turns: 9})

	st, err := store.Stats("classic")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Games != 4 || st.Wins != 2 || st.Exhausted != 1 || st.Abandoned != 1 {
		t.Errorf("Unexpected counts: %+v", st)
	}
	if st.AvgTurnsToWin != 4 {
		t.Errorf("AvgTurnsToWin = %v, want 4", st.AvgTurnsToWin)
	}
	if st.WinRate() != 0.5 {
		t.Errorf("WinRate() = %v, want 0.5", st.WinRate())
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, _ := store.Stats("")
	if all.Games != 5 || all.Wins != 3 {
		t.Errorf("Unexpected totals: %+v", all)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{DeckID: "classic", Outcome: OutcomeWon})
	store.SaveResult(Result{DeckID: "other", Outcome: OutcomeWon})

	if err := store.ClearResults("classic"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}
	if r, _ := store.RecentResults("classic", 10); len(r) != 0 {
		t.Errorf("Expected 0 classic results after clear, got %d", len(r))
	}
	if r, _ := store.RecentResults("other", 10); len(r) != 1 {
		t.Error("Other deck should not be affected")
	}

	store.ClearResults("")
	if r, _ := store.RecentResults("", 10); len(r) != 0 {
		t.Errorf("Expected no results after full clear, got %d", len(r))
	}
}
