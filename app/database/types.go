package database

import (
	"time"
)

// Search is one recorded pipeline invocation. Events themselves are never
// persisted; only the invocation outcome is.
type Search struct {
	ID          int64
	Category    string
	Location    string
	Query       string
	Success     bool
	ResultCount int
	LatencyMs   int64
	Error       string
	CreatedAt   time.Time
}

// SearchStats aggregates the search log.
type SearchStats struct {
	Total        int
	Succeeded    int
	Failed       int
	AvgLatencyMs float64
	LastSearchAt *time.Time
}
