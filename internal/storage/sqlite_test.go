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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saves := []struct {
		game  string
		score int
		speed float64
	}{
		{"breakout", 12, 400},
		{"breakout", 5, 300},
		{"breakout", 20, 600},
		{"hello", 500, 0},
	}
	for _, s := range saves {
		if _, err := store.SaveScore(s.game, s.score, s.speed); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("breakout", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending, speed kept with its score
	expected := []struct {
		score int
		speed float64
	}{{20, 600}, {12, 400}, {5, 300}}
	for i, e := range expected {
		if scores[i].Score != e.score || scores[i].Speed != e.speed {
			t.Errorf("scores[%d] = %d@%v, expected %d@%v", i, scores[i].Score, scores[i].Speed, e.score, e.speed)
		}
		if scores[i].GameID != "breakout" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
	}

	helloScores, err := store.TopScores("hello", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(helloScores) != 1 {
		t.Errorf("Expected 1 hello score, got %d", len(helloScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("breakout", i+1, 400)
	}

	scores, err := store.TopScores("breakout", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 5 || scores[1].Score != 4 || scores[2].Score != 3 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Zero limit falls back to 10
	all, err := store.TopScores("breakout", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("breakout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("breakout", 10, 400)
	store.SaveScore("breakout", 20, 400)
	store.SaveScore("breakout", 15, 400)

	high, err = store.HighScore("breakout")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 20 {
		t.Errorf("Expected high score of 20, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("breakout", 10, 400)
	store.SaveScore("breakout", 20, 400)
	store.SaveScore("hello", 300, 0)

	if err := store.ClearScores("breakout"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	breakoutScores, _ := store.TopScores("breakout", 10)
	if len(breakoutScores) != 0 {
		t.Errorf("Expected 0 breakout scores after clear, got %d", len(breakoutScores))
	}

	helloScores, _ := store.TopScores("hello", 10)
	if len(helloScores) != 1 {
		t.Errorf("hello scores should not be affected by clearing breakout")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("breakout")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore("breakout", 10, 300)
	store.SaveScore("breakout", 20, 500)
	store.SaveScore("hello", 7, 0)

	stats, err := store.GetGameStats("breakout")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 20 || stats.TotalScore != 30 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 15 || stats.AvgSpeed != 400 {
		t.Errorf("averages = %v/%v, expected 15/400", stats.AvgScore, stats.AvgSpeed)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["hello"].HighScore != 7 || all["breakout"].GamesCount != 2 {
		t.Errorf("all stats = %+v", all)
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

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.breakout-host/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".breakout-host", "scores.db")); err != nil {
		t.Errorf("Database file was not created under HOME: %v", err)
	}
}
