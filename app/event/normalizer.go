package event

import (
	"regexp"
	"strings"
	"time"
)

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize assembles the final Event record from one raw result and its
// extracted fields. Results with neither a title nor a question cannot be
// normalized and are dropped (ok=false); that is a per-item outcome, not an
// error. IDs are a deterministic slug of the title, so two distinct results
// sharing a title collide; the collision is accepted.
func Normalize(r RawResult, category string, span DateSpan, venue, ticketURL string, confidence float64) (Event, bool) {
	title := r.Title
	if title == "" {
		title = r.Question
	}
	if title == "" {
		return Event{}, false
	}

	return Event{
		ID:          slugID(title),
		Title:       title,
		Description: r.Snippet,
		Category:    category,
		Venue:       venue,
		Location:    venue,
		StartDate:   span.Start.Format(time.RFC3339),
		EndDate:     span.End.Format(time.RFC3339),
		EventURL:    r.Link,
		TicketURL:   ticketURL,
		Source:      Source,
		Confidence:  confidence,
		Thumbnail:   r.Thumbnail,
	}, true
}

func slugID(title string) string {
	slug := slugRe.ReplaceAllString(strings.ToLower(title), "-")
	slug = strings.Trim(slug, "-")
	return Source + "-" + slug
}
