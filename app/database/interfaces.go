package database

type SearchRepository interface {
	RecordSearch(search Search) error
	GetRecentSearches(limit int) ([]Search, error)
	GetSearchCount() (int, error)
	GetStats() (*SearchStats, error)
}
