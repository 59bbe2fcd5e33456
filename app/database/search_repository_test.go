package database

import (
	"path/filepath"
	"testing"
)

func newTestRepository(t *testing.T) *SQLSearchRepository {
	t.Helper()

	db, err := NewConnection(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, _, err := RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return NewSearchRepository(db)
}

func TestRecordAndGetRecentSearches(t *testing.T) {
	repo := newTestRepository(t)

	searches := []Search{
		{Category: "music", Location: "Oakland, CA", Query: "music in Oakland, CA", Success: true, ResultCount: 7, LatencyMs: 120},
		{Category: "comedy", Location: "San Jose, CA", Query: "comedy in San Jose, CA", Success: false, Error: "search failed: timeout"},
		{Category: "art", Location: "Berkeley, CA", Query: "art in Berkeley, CA", Success: true, ResultCount: 3, LatencyMs: 90},
	}
	for _, s := range searches {
		if err := repo.RecordSearch(s); err != nil {
			t.Fatalf("RecordSearch() error = %v", err)
		}
	}

	recent, err := repo.GetRecentSearches(10)
	if err != nil {
		t.Fatalf("GetRecentSearches() error = %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("len(recent) = %d, want 3", len(recent))
	}

	// Newest first.
	if recent[0].Category != "art" || recent[2].Category != "music" {
		t.Errorf("order = [%s %s %s], want newest first", recent[0].Category, recent[1].Category, recent[2].Category)
	}
	if recent[1].Success {
		t.Error("failed search scanned as successful")
	}
	if recent[1].Error != "search failed: timeout" {
		t.Errorf("Error = %q", recent[1].Error)
	}
	if recent[2].ResultCount != 7 || recent[2].LatencyMs != 120 {
		t.Errorf("music search = %+v", recent[2])
	}
	if recent[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}
}

func TestGetRecentSearchesLimit(t *testing.T) {
	repo := newTestRepository(t)

	for i := 0; i < 5; i++ {
		if err := repo.RecordSearch(Search{Category: "music", Location: "Oakland, CA", Query: "q", Success: true}); err != nil {
			t.Fatalf("RecordSearch() error = %v", err)
		}
	}

	recent, err := repo.GetRecentSearches(2)
	if err != nil {
		t.Fatalf("GetRecentSearches() error = %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("len(recent) = %d, want 2", len(recent))
	}
}

func TestGetSearchCount(t *testing.T) {
	repo := newTestRepository(t)

	count, err := repo.GetSearchCount()
	if err != nil {
		t.Fatalf("GetSearchCount() error = %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}

	if err := repo.RecordSearch(Search{Category: "music", Query: "q", Success: true}); err != nil {
		t.Fatalf("RecordSearch() error = %v", err)
	}

	count, err = repo.GetSearchCount()
	if err != nil {
		t.Fatalf("GetSearchCount() error = %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestGetStats(t *testing.T) {
	repo := newTestRepository(t)

	empty, err := repo.GetStats()
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}
	if empty.Total != 0 || empty.LastSearchAt != nil {
		t.Errorf("empty stats = %+v", empty)
	}

	records := []Search{
		{Category: "music", Query: "q", Success: true, LatencyMs: 100},
		{Category: "music", Query: "q", Success: true, LatencyMs: 300},
		{Category: "comedy", Query: "q", Success: false, Error: "boom"},
	}
	for _, s := range records {
		if err := repo.RecordSearch(s); err != nil {
			t.Fatalf("RecordSearch() error = %v", err)
		}
	}

	stats, err := repo.GetStats()
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}
	if stats.Total != 3 || stats.Succeeded != 2 || stats.Failed != 1 {
		t.Errorf("stats = %+v", stats)
	}
	// Failed searches do not contribute to average latency.
	if stats.AvgLatencyMs != 200 {
		t.Errorf("AvgLatencyMs = %v, want 200", stats.AvgLatencyMs)
	}
	if stats.LastSearchAt == nil {
		t.Error("LastSearchAt is nil")
	}
}

func TestRunMigrationsIdempotent(t *testing.T) {
	db, err := NewConnection(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	version, dirty, err := RunMigrations(db)
	if err != nil {
		t.Fatalf("RunMigrations() error = %v", err)
	}
	if version == 0 || dirty {
		t.Errorf("version = %d, dirty = %v", version, dirty)
	}

	again, dirty, err := RunMigrations(db)
	if err != nil {
		t.Fatalf("second RunMigrations() error = %v", err)
	}
	if again != version || dirty {
		t.Errorf("second run version = %d, dirty = %v, want %d and clean", again, dirty, version)
	}
}
