package event

import "strings"

// Score bounds.
const (
	baseConfidence   = 0.6
	platformBoost    = 0.20
	categoryBoost    = 0.10
	coreKeywordBoost = 0.10
	dateBoost        = 0.05
	maxConfidence    = 1.0
)

// Score computes the [0,1] trust score for a result. The model is purely
// additive on top of a 0.6 base: each boost applies at most once and there
// is no penalty path, so a classifier false positive is ranked low rather
// than disqualified. The sum is clamped to 1.0.
func Score(r RawResult, category string) float64 {
	text := r.CombinedText()
	lower := strings.ToLower(text)

	score := baseConfidence

	if containsTicketDomain(lower) {
		score += platformBoost
	}
	if category != "" && strings.Contains(lower, strings.ToLower(category)) {
		score += categoryBoost
	}
	if containsCoreKeyword(lower) {
		score += coreKeywordBoost
	}
	if HasDate(text) {
		score += dateBoost
	}

	if score > maxConfidence {
		score = maxConfidence
	}
	return score
}
