package config

// CategoryProfile describes how one event category is turned into a
// provider query. Profiles are loaded from per-category YAML files; a
// category without a profile falls back to a generic one built from the
// raw category string.
type CategoryProfile struct {
	Name         string   // Derived from filename (without .yml extension)
	DisplayName  string   `yaml:"display_name"`
	QueryTerms   []string `yaml:"query_terms"`
	Recency      string   `yaml:"recency"`
	DefaultLimit int      `yaml:"default_limit"`
}
