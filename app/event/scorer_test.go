package event

import (
	"math"
	"testing"
)

func scoreClose(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		result   RawResult
		category string
		want     float64
	}{
		{
			"bare result keeps the base",
			RawResult{Title: "Nothing of note here"},
			"music",
			0.6,
		},
		{
			"platform domain boost",
			RawResult{Title: "Get passes", Link: "https://www.stubhub.com/p/99"},
			"",
			0.8,
		},
		{
			"category mention boost",
			RawResult{Title: "Local music night"},
			"music",
			0.7,
		},
		{
			"core keyword boost",
			RawResult{Title: "Tickets on sale now"},
			"",
			0.7,
		},
		{
			"date boost",
			RawResult{Snippet: "Doors open March 15, 2025"},
			"",
			0.65,
		},
		{
			"platform, core keyword and date stack",
			RawResult{
				Title:   "Jazz concert March 15, 2025",
				Link:    "https://www.ticketmaster.com/jazz",
				Snippet: "Tickets available",
			},
			"",
			0.95,
		},
		{
			"all boosts clamp to one",
			RawResult{
				Title:   "Music festival tickets",
				Link:    "https://www.ticketmaster.com/fest",
				Snippet: "Live shows every night starting June 21, 2025",
			},
			"music",
			1.0,
		},
		{
			"category match is case insensitive",
			RawResult{Title: "COMEDY open mic"},
			"comedy",
			0.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.result, tt.category)
			if !scoreClose(got, tt.want) {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("Score() = %v, out of [0,1]", got)
			}
		})
	}
}
