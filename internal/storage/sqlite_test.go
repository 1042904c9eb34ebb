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

func save(t *testing.T, store *Store, rec SessionRecord) int64 {
	t.Helper()
	if rec.SessionID == "" {
		rec.SessionID = "s-" + rec.Player
	}
	id, err := store.SaveSession(rec)
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	return id
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

func TestStoreOpenEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("Open(\"\") should fail")
	}
}

func TestStoreReopenKeepsHistory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	save(t, store, SessionRecord{Player: "ann", Score: 40})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 40 {
		t.Errorf("HighScore() after reopen = %d, want 40", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	save(t, store, SessionRecord{SessionID: "a", Player: "ann", Score: 100, Level: 1, Rows: 12})
	save(t, store, SessionRecord{SessionID: "b", Player: "bob", Score: 50})
	save(t, store, SessionRecord{SessionID: "c", Player: "ann", Score: 200, Level: 2, Rows: 25})

	records, err := store.TopSessions(10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}

	if records[0].Score != 200 || records[1].Score != 100 || records[2].Score != 50 {
		t.Errorf("Records not sorted by score: %+v", records)
	}
	top := records[0]
	if top.SessionID != "c" || top.Player != "ann" || top.Level != 2 || top.Rows != 25 {
		t.Errorf("Top record fields = %+v", top)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreSaveRequiresSessionID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveSession(SessionRecord{Score: 10}); err == nil {
		t.Error("SaveSession() without session id should fail")
	}
}

func TestStoreTopSessionsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, SessionRecord{SessionID: "s", Score: uint32((i + 1) * 100)})
	}

	records, err := store.TopSessions(3)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 records with limit, got %d", len(records))
	}
	if records[0].Score != 500 || records[1].Score != 400 || records[2].Score != 300 {
		t.Errorf("Records not in expected order: %+v", records)
	}

	all, _ := store.TopSessions(0)
	if len(all) != 5 {
		t.Errorf("Default limit should return all 5, got %d", len(all))
	}
}

func TestStoreTopSessionsTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)

	first := save(t, store, SessionRecord{SessionID: "first", Score: 70})
	second := save(t, store, SessionRecord{SessionID: "second", Score: 70})

	records, _ := store.TopSessions(2)
	if records[0].ID != first || records[1].ID != second {
		t.Errorf("tie order = %d, %d; want %d, %d", records[0].ID, records[1].ID, first, second)
	}
}

func TestStorePlayerSessions(t *testing.T) {
	store := openTestStore(t)

	save(t, store, SessionRecord{Player: "ann", Score: 10})
	save(t, store, SessionRecord{Player: "bob", Score: 20})
	last := save(t, store, SessionRecord{Player: "ann", Score: 5})

	records, err := store.PlayerSessions("ann", 10)
	if err != nil {
		t.Fatalf("PlayerSessions() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records for ann, got %d", len(records))
	}
	if records[0].ID != last {
		t.Errorf("newest first: got ID %d, want %d", records[0].ID, last)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty history, got %d", high)
	}

	save(t, store, SessionRecord{Score: 100})
	save(t, store, SessionRecord{Score: 300})
	save(t, store, SessionRecord{Score: 200})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty Stats() = %+v", stats)
	}

	save(t, store, SessionRecord{Score: 100, Level: 1, Rows: 10})
	save(t, store, SessionRecord{Score: 300, Level: 3, Rows: 30})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 2 {
		t.Errorf("Games = %d, want 2", stats.Games)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.TotalRows != 40 {
		t.Errorf("TotalRows = %d, want 40", stats.TotalRows)
	}
	if stats.BestLevel != 3 {
		t.Errorf("BestLevel = %d, want 3", stats.BestLevel)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	save(t, store, SessionRecord{Score: 100})
	save(t, store, SessionRecord{Score: 200})

	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	records, _ := store.TopSessions(10)
	if len(records) != 0 {
		t.Errorf("Expected 0 records after clear, got %d", len(records))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
