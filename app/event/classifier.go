package event

// IsEventLike decides whether a raw result plausibly describes an event.
// The decision is a pure OR over the three rule sets: an event keyword, a
// date match, or a venue match alone is enough. The filter is deliberately
// permissive; false positives are kept and surface as lower confidence
// scores rather than being dropped here.
func IsEventLike(r RawResult) bool {
	text := r.CombinedText()
	if text == "" {
		return false
	}
	return ContainsEventKeyword(text) || HasDate(text) || HasVenue(text)
}
