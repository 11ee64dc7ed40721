// Package config loads wordladder settings from YAML.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds the full wordladder configuration.
type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Search     SearchConfig     `yaml:"search"`
	Server     ServerConfig     `yaml:"server"`
	LogLevel   string           `yaml:"log_level"`
}

// DictionaryConfig locates and filters the word list.
type DictionaryConfig struct {
	Path      string `yaml:"path"`
	MinLength int    `yaml:"min_length"`
	MaxLength int    `yaml:"max_length"`
	Dedupe    bool   `yaml:"dedupe"`
}

// SearchConfig tunes the solver.
type SearchConfig struct {
	Randomize bool  `yaml:"randomize"`
	Seed      int64 `yaml:"seed"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Listen      string `yaml:"listen"`
	MaxSessions int    `yaml:"max_sessions"` // 0 means unbounded
}

// Default returns sane defaults.
func Default() *Config {
	return &Config{
		Dictionary: DictionaryConfig{
			Path: "words.txt",
		},
		Server: ServerConfig{
			Listen:      ":8080",
			MaxSessions: 1024,
		},
		LogLevel: "info",
	}
}

// Load reads and parses a YAML config file from fs. Returns Default merged
// with the file.
func Load(fs afero.Fs, path string) (*Config, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	cfg := Default()
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks that required fields are present and values are sane.
func (c *Config) Validate() error {
	if c.Dictionary.Path == "" {
		return fmt.Errorf("%w: dictionary.path is required", ErrInvalid)
	}
	if c.Dictionary.MinLength < 0 || c.Dictionary.MaxLength < 0 {
		return fmt.Errorf("%w: dictionary length bounds must be >= 0", ErrInvalid)
	}
	if c.Dictionary.MaxLength > 0 && c.Dictionary.MinLength > c.Dictionary.MaxLength {
		return fmt.Errorf("%w: dictionary.min_length > dictionary.max_length", ErrInvalid)
	}
	if c.Search.Seed < 0 {
		return fmt.Errorf("%w: search.seed must be >= 0", ErrInvalid)
	}
	if c.Server.MaxSessions < 0 {
		return fmt.Errorf("%w: server.max_sessions must be >= 0", ErrInvalid)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unsupported log_level %q (use debug, info, warn or error)", ErrInvalid, c.LogLevel)
	}
	return nil
}
