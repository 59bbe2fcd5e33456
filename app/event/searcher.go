package event

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lysyi3m/event-scout/app/config"
	"github.com/lysyi3m/event-scout/app/metrics"
	"github.com/lysyi3m/event-scout/app/serper"
)

const (
	// DefaultLimit applies when a query arrives without one.
	DefaultLimit = 10
	// maxProviderResults caps the raw result request regardless of limit.
	maxProviderResults = 20
	// relatedSearchCap bounds how many related-search terms are surfaced
	// as metadata.
	relatedSearchCap = 5
)

// Provider is the outbound fetch capability. *serper.Client satisfies it.
type Provider interface {
	Search(ctx context.Context, req serper.SearchRequest) (*serper.SearchResult, error)
}

// ProfileSource resolves category profiles. *config.Cache satisfies it.
type ProfileSource interface {
	GetProfile(name string) *config.CategoryProfile
}

// Searcher runs the classification and extraction pipeline over raw
// provider results. It holds no mutable state between invocations and is
// safe for concurrent use.
type Searcher struct {
	provider Provider
	profiles ProfileSource
	gl       string
	hl       string
	now      func() time.Time
}

func NewSearcher(provider Provider, profiles ProfileSource, gl, hl string) *Searcher {
	return &Searcher{
		provider: provider,
		profiles: profiles,
		gl:       gl,
		hl:       hl,
		now:      time.Now,
	}
}

// SearchEvents runs the full pipeline for one (category, location) query
// and always returns a well-formed envelope. Transport failures fail the
// whole invocation; per-item normalization failures drop only that item.
func (s *Searcher) SearchEvents(ctx context.Context, q Query) Response {
	start := s.now()

	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}

	profile := s.profiles.GetProfile(q.Category)
	query := s.buildQuery(profile, q.Location)

	num := q.Limit * 2
	if num > maxProviderResults {
		num = maxProviderResults
	}

	result, err := s.provider.Search(ctx, serper.SearchRequest{
		Q:    query,
		GL:   s.gl,
		HL:   s.hl,
		Num:  num,
		Type: "search",
	})
	if err != nil {
		slog.Error("Event search failed", "category", q.Category, "location", q.Location, "error", err)
		resp := s.failure(start, fmt.Sprintf("search failed: %s", err))
		metrics.ObserveSearch(q.Category, false, s.now().Sub(start), 0)
		return resp
	}

	candidates := collectCandidates(result)

	events := make([]Event, 0, q.Limit)
	for _, candidate := range candidates {
		if len(events) >= q.Limit {
			break
		}
		if !IsEventLike(candidate) {
			continue
		}

		text := candidate.CombinedText()
		span := ExtractDateInfo(text, s.now())
		venue := ExtractVenue(text)
		ticketURL := ExtractTicketURL(candidate.Link, candidate.Snippet)
		confidence := Score(candidate, q.Category)

		ev, ok := Normalize(candidate, q.Category, span, venue, ticketURL, confidence)
		if !ok {
			slog.Debug("Dropping result without title or question", "link", candidate.Link)
			continue
		}
		events = append(events, ev)
	}

	elapsed := s.now().Sub(start)
	slog.Info("Event search completed",
		"category", q.Category,
		"location", q.Location,
		"candidates", len(candidates),
		"events", len(events),
		"duration", elapsed)
	metrics.ObserveSearch(q.Category, true, elapsed, len(events))

	resp := Response{
		Success:        true,
		Events:         events,
		Count:          len(events),
		ProcessingTime: elapsed.String(),
		Source:         Source,
	}
	if related := relatedTerms(result); len(related) > 0 {
		resp.Metadata = &Metadata{RelatedSearches: related}
	}
	return resp
}

// HealthStatus issues a minimal one-result probe and reports reachability
// and latency. It shares the transport with SearchEvents but none of the
// pipeline logic.
func (s *Searcher) HealthStatus(ctx context.Context) Health {
	start := s.now()

	result, err := s.provider.Search(ctx, serper.SearchRequest{
		Q:    "events",
		GL:   s.gl,
		HL:   s.hl,
		Num:  1,
		Type: "search",
	})
	if err != nil {
		return Health{
			Status:  StatusUnhealthy,
			Message: err.Error(),
		}
	}

	latency := s.now().Sub(start).Milliseconds()
	return Health{
		Status:  StatusHealthy,
		Latency: &latency,
		Message: "Serper API reachable",
		Credits: result.Credits,
	}
}

func (s *Searcher) buildQuery(profile *config.CategoryProfile, location string) string {
	return fmt.Sprintf("%s in %s %s", profile.QueryText(), location, profile.Recency)
}

func (s *Searcher) failure(start time.Time, message string) Response {
	return Response{
		Success:        false,
		Events:         []Event{},
		Count:          0,
		ProcessingTime: s.now().Sub(start).String(),
		Source:         Source,
		Error:          message,
	}
}

// collectCandidates merges organic results and "people also ask" entries,
// in provider order. Related searches are metadata only and never become
// candidates.
func collectCandidates(result *serper.SearchResult) []RawResult {
	candidates := make([]RawResult, 0, len(result.Organic)+len(result.PeopleAlsoAsk))
	for _, o := range result.Organic {
		candidates = append(candidates, RawResult{
			Title:     o.Title,
			Snippet:   o.Snippet,
			Link:      o.Link,
			Thumbnail: o.Thumbnail,
		})
	}
	for _, p := range result.PeopleAlsoAsk {
		candidates = append(candidates, RawResult{
			Title:    p.Title,
			Snippet:  p.Snippet,
			Link:     p.Link,
			Question: p.Question,
		})
	}
	return candidates
}

func relatedTerms(result *serper.SearchResult) []string {
	terms := make([]string, 0, relatedSearchCap)
	for _, r := range result.RelatedSearches {
		if len(terms) >= relatedSearchCap {
			break
		}
		if r.Query != "" {
			terms = append(terms, r.Query)
		}
	}
	return terms
}
