package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if MATCHER_CONFIG is set
//  3. env (prefix MATCHER_)
//
// A local .env file is loaded first when present, and a bare GITHUB_TOKEN
// variable is honored as a fallback for the token.
func Load(_ context.Context) (*Config, error) {
	// Best-effort; a missing .env is not an error.
	_ = godotenv.Load()

	base := New()

	k := koanf.New(".")

	if path := os.Getenv("MATCHER_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: MATCHER_ADDR, MATCHER_GITHUB_TOKEN, ...
	// Map env keys like MATCHER_LOG_LEVEL -> log_level (flat keys).
	envProvider := env.Provider("MATCHER_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "matcher_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if cfg.GitHubToken == "" {
		cfg.GitHubToken = os.Getenv("GITHUB_TOKEN")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.DefaultMaxResults < 1:
		return fmt.Errorf("%w: default_max_results must be positive", ErrInvalidConfig)
	case c.MaxResultsCap < c.DefaultMaxResults:
		return fmt.Errorf("%w: max_results_cap below default_max_results", ErrInvalidConfig)
	case c.MaxReposPerUser < 1:
		return fmt.Errorf("%w: max_repos_per_user must be positive", ErrInvalidConfig)
	}
	for _, t := range c.DefaultIssueTypes {
		if !c.IsSupportedIssueType(t) {
			return fmt.Errorf("%w: default issue type %q not in supported_issue_types", ErrInvalidConfig, t)
		}
	}
	return nil
}
