package event

import "testing"

func TestIsEventLike(t *testing.T) {
	tests := []struct {
		name   string
		result RawResult
		want   bool
	}{
		{
			"keyword only",
			RawResult{Title: "Annual food festival returns"},
			true,
		},
		{
			"date only qualifies without any keyword",
			RawResult{Title: "Join us on March 15, 2025"},
			true,
		},
		{
			"venue only",
			RawResult{Snippet: "Doors at Fox Theatre"},
			true,
		},
		{
			"question entry",
			RawResult{Question: "What concerts are happening this weekend?"},
			true,
		},
		{
			"keyword in link",
			RawResult{Link: "https://www.eventbrite.com/e/12345"},
			true,
		},
		{
			"nothing event-like",
			RawResult{Title: "Quarterly earnings report", Snippet: "revenue grew by three percent"},
			false,
		},
		{
			"empty result",
			RawResult{},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEventLike(tt.result); got != tt.want {
				t.Errorf("IsEventLike(%+v) = %v, want %v", tt.result, got, tt.want)
			}
		})
	}
}
