package api

import (
	"context"
	"time"

	"github.com/lysyi3m/event-scout/app/database"
	"github.com/lysyi3m/event-scout/app/event"
)

// EventSearcher is the pipeline surface the handlers depend on.
type EventSearcher interface {
	SearchEvents(ctx context.Context, q event.Query) event.Response
	HealthStatus(ctx context.Context) event.Health
}

var _ EventSearcher = (*event.Searcher)(nil)

type Handler struct {
	searcher   EventSearcher
	searchRepo database.SearchRepository
	version    string
	startedAt  time.Time
}
