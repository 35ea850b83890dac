package storage

import (
	"path/filepath"
	"testing"
)

func TestStoreSaveAndListRuns(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	runs := []Run{
		{GameID: "platformer", LevelID: "meadow", Score: 100, Won: true, Ticks: 900, Seed: 1},
		{GameID: "platformer", LevelID: "cavern", Score: 0, Ticks: 300, DroppedTicks: 12, Seed: 2},
		{GameID: "invaders", Score: 70, Ticks: 1200, Seed: 3},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.RecentRuns("platformer", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 platformer runs, got %d", len(got))
	}

	// Newest first
	latest := got[0]
	if latest.LevelID != "cavern" || latest.Won || latest.DroppedTicks != 12 || latest.Seed != 2 {
		t.Errorf("Unexpected latest run: %+v", latest)
	}
	if !got[1].Won || got[1].Ticks != 900 {
		t.Errorf("Unexpected first run: %+v", got[1])
	}
}

func TestStoreWinCount(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(Run{GameID: "platformer", LevelID: "meadow", Won: true})
	store.SaveRun(Run{GameID: "platformer", LevelID: "meadow", Won: true})
	store.SaveRun(Run{GameID: "platformer", LevelID: "cavern", Won: true})
	store.SaveRun(Run{GameID: "platformer", LevelID: "cavern"})

	tests := []struct {
		level string
		want  int
	}{
		{"", 3},
		{"meadow", 2},
		{"cavern", 1},
		{"unknown", 0},
	}
	for _, tt := range tests {
		n, err := store.WinCount("platformer", tt.level)
		if err != nil {
			t.Fatalf("WinCount(%q) failed: %v", tt.level, err)
		}
		if n != tt.want {
			t.Errorf("WinCount(%q) = %d, want %d", tt.level, n, tt.want)
		}
	}
}

func TestClearScoresDropsRuns(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("platformer", 10)
	store.SaveRun(Run{GameID: "platformer", Score: 10})
	store.SaveRun(Run{GameID: "invaders", Score: 5})

	if err := store.ClearScores("platformer"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if runs, _ := store.RecentRuns("platformer", 10); len(runs) != 0 {
		t.Errorf("Expected platformer runs cleared, got %d", len(runs))
	}
	if runs, _ := store.RecentRuns("invaders", 10); len(runs) != 1 {
		t.Errorf("Expected invaders run kept, got %d", len(runs))
	}
}
