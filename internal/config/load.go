package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the yaml config file, overlays environment variables
// (.env files included, via godotenv), and validates. An empty path means
// "config.yaml if present"; an explicit path must exist.
func Load(path string) (*Config, error) {
	// Missing .env is fine; keys may come from the real environment
	_ = godotenv.Load()

	optional := false
	if path == "" {
		path = "config.yaml"
		optional = true
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && optional:
		// defaults + environment only
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// applyEnv overlays secrets and common overrides from the environment.
// GEMINI_API_KEYS takes a comma-separated list; GEMINI_API_KEY a single key.
func (c *Config) applyEnv() {
	if keys := os.Getenv("GEMINI_API_KEYS"); keys != "" {
		c.Gemini.APIKeys = c.Gemini.APIKeys[:0]
		for _, key := range strings.Split(keys, ",") {
			if key = strings.TrimSpace(key); key != "" {
				c.Gemini.APIKeys = append(c.Gemini.APIKeys, key)
			}
		}
	} else if key := os.Getenv("GEMINI_API_KEY"); key != "" && len(c.Gemini.APIKeys) == 0 {
		c.Gemini.APIKeys = []string{key}
	}

	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		c.Gemini.Model = model
	}
	if dir := os.Getenv("OUTPUT_DIR"); dir != "" {
		c.Output.Dir = dir
	}
}
