package cfg

type Cfg struct {
	// Provider configuration
	SerperAPIKey      string
	SerperURL         string
	SearchTimeout     int // seconds
	RateLimitInterval int // milliseconds between provider calls

	// Application configuration
	Port            string
	GL              string
	HL              string
	DBPath          string
	CategoriesDir   string
	MonitorInterval int // seconds
	APIAccessKey    string

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
