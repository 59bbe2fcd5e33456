package event

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// SentinelVenue is returned when no venue rule matches. Never empty: the
// output record always carries a venue string.
const SentinelVenue = "See Event Page"

var urlRe = regexp.MustCompile(`https?://[^\s"'<>)]+`)

// ExtractDateInfo walks the date rules in order and parses the first match
// into a DateSpan. Rules whose match carries no usable day (weekday and
// relative terms) and matches that do not form a valid calendar date fall
// through to the next rule. When nothing parses, both ends of the span are
// set to now; "unknown" is an explicit default, not an error.
func ExtractDateInfo(text string, now time.Time) DateSpan {
	for i := range dateRules {
		rule := &dateRules[i]
		m := rule.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		var month, day, year int
		switch rule.kind {
		case dateMonthName:
			month = monthNumber(m[1])
			day = atoi(m[2])
			year = yearOrCurrent(m[3], now)
		case dateSlash:
			month = atoi(m[1])
			day = atoi(m[2])
			year = normalizeYear(atoi(m[3]))
		case dateOrdinal:
			day = atoi(m[1])
			month = monthNumber(m[2])
			year = yearOrCurrent(m[3], now)
		default:
			// Weekday and relative matches carry no day number.
			continue
		}

		if t, ok := buildDate(year, month, day); ok {
			return DateSpan{Start: t, End: t}
		}
	}

	return DateSpan{Start: now, End: now}
}

// ExtractVenue returns the first venue capture, trimmed but otherwise
// verbatim, or the sentinel when no rule matches.
func ExtractVenue(text string) string {
	if venue, ok := matchVenue(text); ok {
		return venue
	}
	return SentinelVenue
}

// ExtractTicketURL resolves a ticket URL for the result. The event URL is
// checked first so the canonical event page wins over links buried in the
// snippet; only then are snippet URLs scanned in order. Returns "" when
// neither yields an allow-listed domain.
func ExtractTicketURL(eventURL, snippet string) string {
	if eventURL != "" {
		if u, err := url.Parse(eventURL); err == nil && hostOnAllowList(u.Hostname()) {
			return eventURL
		}
	}

	for _, candidate := range urlRe.FindAllString(snippet, -1) {
		candidate = strings.TrimRight(candidate, ".,;")
		if u, err := url.Parse(candidate); err == nil && hostOnAllowList(u.Hostname()) {
			return candidate
		}
	}

	return ""
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func yearOrCurrent(s string, now time.Time) int {
	if s == "" {
		return now.Year()
	}
	return atoi(s)
}

// normalizeYear maps two-digit years onto 2000-2099.
func normalizeYear(y int) int {
	if y < 100 {
		return 2000 + y
	}
	return y
}

// buildDate validates the triple by constructing the date and checking it
// did not roll over (time.Date normalizes Feb 30 to Mar 1 and so on).
func buildDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
