package event

import (
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	span := DateSpan{
		Start: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	}

	raw := RawResult{
		Title:     "Jazz Festival at Blue Note on March 15, 2025",
		Snippet:   "An evening of live jazz downtown.",
		Link:      "https://example.com/jazz",
		Thumbnail: "https://example.com/jazz.jpg",
	}

	ev, ok := Normalize(raw, "music", span, "Blue Note", "https://www.ticketmaster.com/jazz", 0.95)
	if !ok {
		t.Fatal("Normalize() ok = false, want true")
	}

	if ev.ID != "serper-jazz-festival-at-blue-note-on-march-15-2025" {
		t.Errorf("ID = %q", ev.ID)
	}
	if ev.Title != raw.Title {
		t.Errorf("Title = %q", ev.Title)
	}
	if ev.Description != raw.Snippet {
		t.Errorf("Description = %q", ev.Description)
	}
	if ev.Category != "music" {
		t.Errorf("Category = %q", ev.Category)
	}
	if ev.Venue != "Blue Note" || ev.Location != ev.Venue {
		t.Errorf("Venue = %q, Location = %q, want both \"Blue Note\"", ev.Venue, ev.Location)
	}
	if ev.StartDate != "2025-03-15T00:00:00Z" {
		t.Errorf("StartDate = %q", ev.StartDate)
	}
	if ev.EndDate != ev.StartDate {
		t.Errorf("EndDate = %q, want same as StartDate %q", ev.EndDate, ev.StartDate)
	}
	if ev.EventURL != raw.Link {
		t.Errorf("EventURL = %q", ev.EventURL)
	}
	if ev.TicketURL != "https://www.ticketmaster.com/jazz" {
		t.Errorf("TicketURL = %q", ev.TicketURL)
	}
	if ev.Source != "serper" {
		t.Errorf("Source = %q", ev.Source)
	}
	if ev.Confidence != 0.95 {
		t.Errorf("Confidence = %v", ev.Confidence)
	}
	if ev.Thumbnail != raw.Thumbnail {
		t.Errorf("Thumbnail = %q", ev.Thumbnail)
	}
}

func TestNormalizeQuestionFallback(t *testing.T) {
	raw := RawResult{
		Question: "What concerts are in town?",
		Snippet:  "Listings for the week.",
	}

	ev, ok := Normalize(raw, "music", DateSpan{}, "See Event Page", "", 0.6)
	if !ok {
		t.Fatal("Normalize() ok = false, want true")
	}
	if ev.Title != "What concerts are in town?" {
		t.Errorf("Title = %q, want the question text", ev.Title)
	}
	if ev.ID != "serper-what-concerts-are-in-town" {
		t.Errorf("ID = %q", ev.ID)
	}
}

func TestNormalizeDropsUntitled(t *testing.T) {
	raw := RawResult{Snippet: "no title, no question"}
	if _, ok := Normalize(raw, "music", DateSpan{}, "", "", 0.6); ok {
		t.Error("Normalize() ok = true for untitled result, want false")
	}
}

func TestSlugIDDeterministic(t *testing.T) {
	a := slugID("Food & Wine Night!")
	b := slugID("Food & Wine Night!")
	if a != b {
		t.Errorf("slugID not deterministic: %q vs %q", a, b)
	}
	if a != "serper-food-wine-night" {
		t.Errorf("slugID = %q", a)
	}
}
