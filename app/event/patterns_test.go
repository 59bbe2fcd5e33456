package event

import (
	"testing"
)

func TestContainsEventKeyword(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"festival keyword", "Annual Jazz Festival lineup announced", true},
		{"case insensitive", "TICKETS ON SALE NOW", true},
		{"platform name", "listed on eventbrite.com", true},
		{"rsvp", "Please RSVP by Friday", true},
		{"no keyword", "Quarterly earnings report for Q3", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsEventKeyword(tt.text); got != tt.want {
				t.Errorf("ContainsEventKeyword(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestHasDate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"month day year", "Join us March 15, 2025 for the gala", true},
		{"month day no year", "Opening Aug 2 at noon", true},
		{"slash date", "Deadline is 12/31/2025", true},
		{"two digit year", "Starts 1/5/25", true},
		{"weekday month abbrev", "Doors open Friday, Mar at 7pm", true},
		{"relative today", "Things to do today in Oakland", true},
		{"relative this weekend", "Best concerts this weekend", true},
		{"ordinal of month", "3rd of March celebration", true},
		{"no date", "A plain sentence with no time reference", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasDate(tt.text); got != tt.want {
				t.Errorf("HasDate(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestHasVenue(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"at capitalized name", "Live at Blue Note tonight", true},
		{"at with venue noun", "Concert at Madison Square Garden", true},
		{"bare venue noun", "The show moves to Fox Theatre next month", true},
		{"explicit label", "venue: The Basement, doors at 8", true},
		{"no venue", "an update about nothing in particular", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasVenue(tt.text); got != tt.want {
				t.Errorf("HasVenue(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDateRuleOrder(t *testing.T) {
	// Month-name rule is declared before the slash rule, so a text
	// containing both resolves via the month name.
	rule, m := matchDate("March 15, 2025 or maybe 6/20/2025")
	if rule == nil {
		t.Fatal("Expected a date match")
	}
	if rule.kind != dateMonthName {
		t.Errorf("Expected month-name rule to win, got kind %d", rule.kind)
	}
	if m[1] != "March" || m[2] != "15" {
		t.Errorf("Unexpected submatches: %v", m)
	}
}

func TestMonthNumber(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"January", 1},
		{"jan", 1},
		{"Sept", 9},
		{"DECEMBER", 12},
		{"notamonth", 0},
	}

	for _, tt := range tests {
		if got := monthNumber(tt.name); got != tt.want {
			t.Errorf("monthNumber(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestHostOnAllowList(t *testing.T) {
	tests := []struct {
		host string
		want bool
	}{
		{"eventbrite.com", true},
		{"www.eventbrite.com", true},
		{"www.ticketmaster.com", true},
		{"example.com", false},
		{"eventbrite.com.evil.org", false},
	}

	for _, tt := range tests {
		if got := hostOnAllowList(tt.host); got != tt.want {
			t.Errorf("hostOnAllowList(%q) = %v, want %v", tt.host, got, tt.want)
		}
	}
}
