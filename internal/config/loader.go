package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if COURSEREC_CONFIG is set
//  3. env (prefix COURSEREC_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("COURSEREC_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: COURSEREC_ADDR, COURSEREC_CATALOG_PATH, ...
	// Map env keys like COURSEREC_MAX_RESULTS -> max_results (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("COURSEREC_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "courserec_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate enforces basic invariants before the service starts.
func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case strings.TrimSpace(c.CatalogPath) == "":
		return fmt.Errorf("%w: catalog_path must not be empty", ErrInvalidConfig)
	case c.MaxResults < 1:
		return fmt.Errorf("%w: max_results must be positive", ErrInvalidConfig)
	case c.DefaultTopK < 1:
		return fmt.Errorf("%w: default_top_k must be positive", ErrInvalidConfig)
	case c.DefaultTopK > c.MaxResults:
		return fmt.Errorf("%w: default_top_k must not exceed max_results", ErrInvalidConfig)
	case c.MinScore < 0 || c.MinScore > 1:
		return fmt.Errorf("%w: min_score must lie in [0, 1]", ErrInvalidConfig)
	}
	return nil
}
