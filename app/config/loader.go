package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Cache loads and holds category profiles. Profiles are read once at
// startup via Run; GetProfile never touches the filesystem afterwards.
type Cache struct {
	categoriesDir string
	cache         map[string]*CategoryProfile
	mu            sync.RWMutex
}

func NewCache(categoriesDir string) *Cache {
	return &Cache{
		categoriesDir: categoriesDir,
		cache:         make(map[string]*CategoryProfile),
	}
}

func (c *Cache) Run() error {
	if _, err := os.Stat(c.categoriesDir); os.IsNotExist(err) {
		return nil
	}

	files, err := filepath.Glob(filepath.Join(c.categoriesDir, "*.yml"))
	if err != nil {
		return fmt.Errorf("failed to find YML files: %w", err)
	}

	for _, file := range files {
		fileName := filepath.Base(file)
		name := strings.TrimSuffix(fileName, ".yml")

		profile, err := c.LoadProfile(name)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}

		slog.Debug("Category profile loaded", "category", name, "query_terms", len(profile.QueryTerms))
	}

	return nil
}

func (c *Cache) LoadProfile(name string) (*CategoryProfile, error) {
	profileFile := filepath.Join(c.categoriesDir, name+".yml")

	data, err := os.ReadFile(profileFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var profile CategoryProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	profile.Name = name
	setDefaults(&profile)

	if err := validateProfile(&profile); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", profileFile, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[profile.Name] = &profile

	return &profile, nil
}

// GetProfile looks up a loaded profile by category name. Lookup is
// case-insensitive; an unknown category yields a generic profile built
// from the raw string rather than an error, so any category is queryable.
func (c *Cache) GetProfile(name string) *CategoryProfile {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if profile, ok := c.cache[strings.ToLower(name)]; ok {
		return profile
	}

	generic := &CategoryProfile{Name: strings.ToLower(name)}
	setDefaults(generic)
	return generic
}

func (c *Cache) GetProfileCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

func setDefaults(profile *CategoryProfile) {
	if profile.Recency == "" {
		profile.Recency = "this week"
	}
	if profile.DefaultLimit == 0 {
		profile.DefaultLimit = 10
	}
}

func validateProfile(profile *CategoryProfile) error {
	if profile.Name == "" {
		return fmt.Errorf("category name is required")
	}
	if profile.DefaultLimit < 0 {
		return fmt.Errorf("default limit must be non-negative")
	}
	for i, term := range profile.QueryTerms {
		if strings.TrimSpace(term) == "" {
			return fmt.Errorf("query term at index %d is empty", i)
		}
	}
	return nil
}
