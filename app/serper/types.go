package serper

// SearchRequest is the JSON body of a Serper.dev search call.
type SearchRequest struct {
	Q    string `json:"q"`
	GL   string `json:"gl,omitempty"`
	HL   string `json:"hl,omitempty"`
	Num  int    `json:"num,omitempty"`
	Type string `json:"type,omitempty"`
}

// OrganicResult is one organic search hit.
type OrganicResult struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Snippet   string `json:"snippet"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Position  int    `json:"position,omitempty"`
}

// PeopleAlsoAskResult is one "people also ask" entry. These carry a
// question instead of a title.
type PeopleAlsoAskResult struct {
	Question string `json:"question"`
	Title    string `json:"title,omitempty"`
	Link     string `json:"link,omitempty"`
	Snippet  string `json:"snippet,omitempty"`
}

// RelatedSearch is a suggested follow-up query.
type RelatedSearch struct {
	Query string `json:"query"`
}

// SearchResult is the provider response payload. A populated Error field is
// treated the same as a transport failure by the client.
type SearchResult struct {
	Organic         []OrganicResult       `json:"organic"`
	PeopleAlsoAsk   []PeopleAlsoAskResult `json:"peopleAlsoAsk"`
	RelatedSearches []RelatedSearch       `json:"relatedSearches"`
	Credits         int                   `json:"credits,omitempty"`
	Error           string                `json:"error,omitempty"`
}
