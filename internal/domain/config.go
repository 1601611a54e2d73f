package domain

import "time"

// Config represents the pawsearch configuration loaded from pawsearch.yaml.
type Config struct {
	API    APIConfig
	Search SearchConfig
}

type APIConfig struct {
	BaseURL     string
	Path        string
	ResultsPath string // JSONPath to the customer list in the response body
	Timeout     time.Duration
}

type SearchConfig struct {
	// Debounce delays the automatic fetch after a text change. Zero fetches
	// on every change.
	Debounce time.Duration
}

// DefaultConfig provides sane defaults if pawsearch.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:     "http://localhost:3000",
			Path:        "/api/customers",
			ResultsPath: "$.customers",
			Timeout:     10 * time.Second,
		},
		Search: SearchConfig{
			Debounce: 250 * time.Millisecond,
		},
	}
}
