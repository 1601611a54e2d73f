package workspacefinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/pawsearch/internal/app/template"
	"github.com/aalvaropc/pawsearch/internal/domain"
)

// LoadConfig loads pawsearch.yaml from the workspace root and applies defaults.
// A missing file is not an error: the defaults are returned.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	return ParseConfig(path, b)
}

// ParseConfig applies a pawsearch.yaml document on top of the defaults.
// base_url and path may reference environment variables as {{NAME}}.
func ParseConfig(path string, b []byte) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, invalid(path, err)
	}

	api := y.Pawsearch.API
	if s := strings.TrimSpace(api.BaseURL); s != "" {
		v, err := template.RenderString(s, template.Env())
		if err != nil {
			return cfg, invalid(path, fmt.Errorf("api.base_url: %w", err))
		}
		cfg.API.BaseURL = v
	}
	if s := strings.TrimSpace(api.Path); s != "" {
		v, err := template.RenderString(s, template.Env())
		if err != nil {
			return cfg, invalid(path, fmt.Errorf("api.path: %w", err))
		}
		cfg.API.Path = v
	}
	if s := strings.TrimSpace(api.ResultsPath); s != "" {
		cfg.API.ResultsPath = s
	}
	if api.Timeout != nil {
		d, err := parseDuration("api.timeout", *api.Timeout)
		if err != nil {
			return cfg, invalid(path, err)
		}
		if d <= 0 {
			return cfg, invalid(path, fmt.Errorf("api.timeout must be positive, got %s", *api.Timeout))
		}
		cfg.API.Timeout = d
	}

	if y.Pawsearch.Search.Debounce != nil {
		d, err := parseDuration("search.debounce", *y.Pawsearch.Search.Debounce)
		if err != nil {
			return cfg, invalid(path, err)
		}
		if d < 0 {
			return cfg, invalid(path, fmt.Errorf("search.debounce must not be negative, got %s", *y.Pawsearch.Search.Debounce))
		}
		cfg.Search.Debounce = d
	}

	return cfg, nil
}

func parseDuration(field, s string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return d, nil
}

func invalid(path string, err error) error {
	return &domain.OpError{
		Op:   "workspacefinder.loadconfig",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  err,
	}
}

type yamlConfig struct {
	Pawsearch struct {
		API struct {
			BaseURL     string  `yaml:"base_url"`
			Path        string  `yaml:"path"`
			ResultsPath string  `yaml:"results_path"`
			Timeout     *string `yaml:"timeout"`
		} `yaml:"api"`

		Search struct {
			Debounce *string `yaml:"debounce"`
		} `yaml:"search"`
	} `yaml:"pawsearch"`
}
