package config

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// GetDisplayName returns the configured display name, falling back to a
// title-cased category name.
func (p *CategoryProfile) GetDisplayName() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return titleCaser.String(p.Name)
}

// QueryText returns the provider query terms for the category, joined, or
// the category name itself when no terms are configured.
func (p *CategoryProfile) QueryText() string {
	if len(p.QueryTerms) == 0 {
		return p.Name + " events"
	}
	return strings.Join(p.QueryTerms, " ")
}
