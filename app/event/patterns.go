package event

import (
	"regexp"
	"strings"
)

// The three rule sets below are independent: the classifier ORs them, the
// extractor walks the date and venue lists in declaration order and stops
// at the first hit. Order is significant, no attempt is made to find the
// "best" match among multiple hits.

var eventKeywords = []string{
	"event",
	"events",
	"concert",
	"festival",
	"show",
	"performance",
	"exhibition",
	"conference",
	"meetup",
	"workshop",
	"screening",
	"gala",
	"fair",
	"expo",
	"tournament",
	"live music",
	"tickets",
	"rsvp",
	"eventbrite",
	"ticketmaster",
	"happening",
}

// coreEventKeywords is the smaller set used by the confidence scorer. A hit
// here is a stronger signal than the broad classifier list.
var coreEventKeywords = []string{
	"event",
	"concert",
	"festival",
	"show",
	"tickets",
	"live",
}

type dateKind int

const (
	dateMonthName dateKind = iota
	dateSlash
	dateWeekday
	dateRelative
	dateOrdinal
)

type dateRule struct {
	re   *regexp.Regexp
	kind dateKind
}

const monthNames = `january|jan|february|feb|march|mar|april|apr|may|june|jun|july|jul|august|aug|september|sept|sep|october|oct|november|nov|december|dec`

var dateRules = []dateRule{
	// Month Day[, Year]: "March 15, 2025", "Aug 2"
	{regexp.MustCompile(`(?i)\b(` + monthNames + `)\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?\b`), dateMonthName},
	// MM/DD/YY(YY)
	{regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{2,4})\b`), dateSlash},
	// Weekday, Month-abbrev: "Friday, Mar"
	{regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday),?\s+(` + monthNames + `)\b`), dateWeekday},
	// Relative terms
	{regexp.MustCompile(`(?i)\b(today|tonight|tomorrow|this\s+week(?:end)?|next\s+week(?:end)?)\b`), dateRelative},
	// Ordinal day + month: "3rd of March[, 2025]"
	{regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)\s+(?:of\s+)?(` + monthNames + `)(?:,?\s+(\d{4}))?\b`), dateOrdinal},
}

var monthNumbers = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// monthNumber resolves a matched month name (full or abbreviated) to 1-12.
// Returns 0 for anything unrecognized.
func monthNumber(name string) int {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) > 3 {
		name = name[:3]
	}
	return monthNumbers[name]
}

const venueNouns = `Theatre|Theater|Arena|Stadium|Hall|Center|Centre|Club|Venue|Park|Auditorium|Amphitheatre|Amphitheater|Ballroom|Pavilion|Lounge|Garden|Gardens|Museum|Gallery`

var venueRules = []*regexp.Regexp{
	// "at <Name>" / "@ <Name>": capitalized word run, optionally ending in
	// a venue-type noun. The run stops at the first lowercase word, so
	// "at Blue Note on March 15" captures "Blue Note".
	regexp.MustCompile(`(?:\bat\s+|@\s*)([A-Z][\w'&.-]*(?:\s+[A-Z][\w'&.-]*)*(?:\s+(?:` + venueNouns + `))?)`),
	// Bare capitalized run ending in a venue-type noun.
	regexp.MustCompile(`\b([A-Z][\w'&.-]*(?:\s+[A-Z][\w'&.-]*)*\s+(?:` + venueNouns + `))\b`),
	// Explicit labels.
	regexp.MustCompile(`(?i)(?:venue|location):\s*([^,.;|\n]+)`),
}

// ticketDomains is the allow-list of ticketing platforms checked by both
// the ticket URL extractor and the confidence scorer.
var ticketDomains = []string{
	"eventbrite.com",
	"ticketmaster.com",
	"stubhub.com",
	"seatgeek.com",
	"axs.com",
	"dice.fm",
	"songkick.com",
	"bandsintown.com",
	"meetup.com",
	"universe.com",
}

// ContainsEventKeyword reports whether any classifier keyword appears as a
// case-insensitive substring of text.
func ContainsEventKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range eventKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func containsCoreKeyword(lower string) bool {
	for _, kw := range coreEventKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// HasDate reports whether any date rule matches text.
func HasDate(text string) bool {
	for _, rule := range dateRules {
		if rule.re.MatchString(text) {
			return true
		}
	}
	return false
}

// matchDate returns the first date rule that matches together with its
// submatches, or nil when nothing matches.
func matchDate(text string) (*dateRule, []string) {
	for i := range dateRules {
		if m := dateRules[i].re.FindStringSubmatch(text); m != nil {
			return &dateRules[i], m
		}
	}
	return nil, nil
}

// HasVenue reports whether any venue rule matches text.
func HasVenue(text string) bool {
	for _, re := range venueRules {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// matchVenue returns the first venue capture, untouched except for
// surrounding whitespace.
func matchVenue(text string) (string, bool) {
	for _, re := range venueRules {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

func containsTicketDomain(lower string) bool {
	for _, domain := range ticketDomains {
		if strings.Contains(lower, domain) {
			return true
		}
	}
	return false
}

// hostOnAllowList checks a URL host against the ticketing allow-list,
// tolerating a www. or other subdomain prefix.
func hostOnAllowList(host string) bool {
	host = strings.ToLower(host)
	for _, domain := range ticketDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}
