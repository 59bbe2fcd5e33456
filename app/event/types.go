package event

import (
	"strings"
	"time"
)

// Source tag prepended to generated event IDs.
const Source = "serper"

// RawResult is a single unstructured search result as returned by the
// provider. Organic results carry Title, "people also ask" entries carry
// Question instead.
type RawResult struct {
	Title     string
	Snippet   string
	Link      string
	Question  string
	Thumbnail string
}

// CombinedText concatenates every textual field of the result. All pattern
// matching operates on this single string.
func (r RawResult) CombinedText() string {
	parts := make([]string, 0, 4)
	for _, s := range []string{r.Title, r.Snippet, r.Link, r.Question} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// DateSpan holds the extracted start and end of an event. End is always
// equal to Start: multi-day events are not representable in the current
// extraction rules, every match is treated as a single-day event.
type DateSpan struct {
	Start time.Time
	End   time.Time
}

// Event is the normalized output record assembled from one RawResult.
type Event struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Venue       string  `json:"venue"`
	Location    string  `json:"location"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	EventURL    string  `json:"eventUrl"`
	TicketURL   string  `json:"ticketUrl,omitempty"`
	Source      string  `json:"source"`
	Confidence  float64 `json:"confidence"`
	Thumbnail   string  `json:"thumbnail,omitempty"`
}

// Query is one searchEvents invocation.
type Query struct {
	Category string
	Location string
	Limit    int
}

// Metadata carries auxiliary provider data that is surfaced alongside
// events but never turned into events itself.
type Metadata struct {
	RelatedSearches []string `json:"relatedSearches,omitempty"`
}

// Response is the uniform envelope returned by every pipeline invocation.
// Callers distinguish "no events found" from failure via Success and Error,
// never via Count alone.
type Response struct {
	Success        bool      `json:"success"`
	Events         []Event   `json:"events"`
	Count          int       `json:"count"`
	ProcessingTime string    `json:"processingTime"`
	Source         string    `json:"source"`
	Error          string    `json:"error,omitempty"`
	Metadata       *Metadata `json:"metadata,omitempty"`
}

// Health reports provider reachability. Latency is nil when the probe
// failed.
type Health struct {
	Status  string `json:"status"`
	Latency *int64 `json:"latency"`
	Message string `json:"message"`
	Credits int    `json:"credits,omitempty"`
}

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)
