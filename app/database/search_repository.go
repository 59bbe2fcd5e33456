package database

import (
	"database/sql"
	"fmt"
)

var _ SearchRepository = (*SQLSearchRepository)(nil)

// SQLSearchRepository stores the search log in SQLite.
type SQLSearchRepository struct {
	db *DB
}

func NewSearchRepository(db *DB) *SQLSearchRepository {
	return &SQLSearchRepository{db: db}
}

func (r *SQLSearchRepository) RecordSearch(search Search) error {
	_, err := r.db.Exec(`
		INSERT INTO searches (category, location, query, success, result_count, latency_ms, error)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, search.Category, search.Location, search.Query, boolToInt(search.Success),
		search.ResultCount, search.LatencyMs, search.Error)

	if err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}

	return nil
}

func (r *SQLSearchRepository) GetRecentSearches(limit int) ([]Search, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(`
		SELECT id, category, location, query, success, result_count, latency_ms, error, created_at
		FROM searches
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query searches: %w", err)
	}
	defer rows.Close()

	var searches []Search
	for rows.Next() {
		var s Search
		var success int
		if err := rows.Scan(&s.ID, &s.Category, &s.Location, &s.Query, &success,
			&s.ResultCount, &s.LatencyMs, &s.Error, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan search: %w", err)
		}
		s.Success = success != 0
		searches = append(searches, s)
	}

	return searches, rows.Err()
}

func (r *SQLSearchRepository) GetSearchCount() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM searches`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count searches: %w", err)
	}
	return count, nil
}

func (r *SQLSearchRepository) GetStats() (*SearchStats, error) {
	stats := &SearchStats{}

	var avgLatency sql.NullFloat64
	var lastSearch sql.NullTime
	err := r.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(success), 0),
		       AVG(CASE WHEN success = 1 THEN latency_ms END),
		       MAX(created_at)
		FROM searches
	`).Scan(&stats.Total, &stats.Succeeded, &avgLatency, &lastSearch)
	if err != nil {
		return nil, fmt.Errorf("failed to query search stats: %w", err)
	}

	stats.Failed = stats.Total - stats.Succeeded
	if avgLatency.Valid {
		stats.AvgLatencyMs = avgLatency.Float64
	}
	if lastSearch.Valid {
		t := lastSearch.Time.UTC()
		stats.LastSearchAt = &t
	}

	return stats, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
