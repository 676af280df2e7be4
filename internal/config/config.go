// Package config loads typey configuration from defaults, a YAML file,
// TYPEY_* environment variables and command-line flags, in increasing
// order of priority.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/jladdjr/typey-type/internal/ports"
)

// EnvPrefix is the prefix for environment overrides (TYPEY_PROFILE, TYPEY_LOG_LEVEL, ...).
const EnvPrefix = "TYPEY"

// Config is the full application configuration.
type Config struct {
	DataDir      string                   `mapstructure:"data_dir" yaml:"data_dir"`
	Profile      string                   `mapstructure:"profile" yaml:"profile"`
	Log          LogConfig                `mapstructure:"log" yaml:"log"`
	Dictionaries []ports.DictionarySource `mapstructure:"dictionaries" yaml:"dictionaries"`
	Fetch        FetchConfig              `mapstructure:"fetch" yaml:"fetch"`
	Lookup       LookupConfig             `mapstructure:"lookup" yaml:"lookup"`
	Watch        bool                     `mapstructure:"watch" yaml:"watch"`
	HTTP         HTTPConfig               `mapstructure:"http" yaml:"http"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`   // debug, info, warn, error
	Format string `mapstructure:"format" yaml:"format"` // text, json
}

// FetchConfig tunes remote dictionary downloads.
type FetchConfig struct {
	Timeout           time.Duration `mapstructure:"timeout" yaml:"timeout"`
	MaxBytes          int64         `mapstructure:"max_bytes" yaml:"max_bytes"`
	CacheTTL          time.Duration `mapstructure:"cache_ttl" yaml:"cache_ttl"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second" yaml:"requests_per_second"`
	Burst             int           `mapstructure:"burst" yaml:"burst"`
	UserAgent         string        `mapstructure:"user_agent" yaml:"user_agent"`
}

// LookupConfig controls how words resolve to strokes.
type LookupConfig struct {
	TieBreak       string `mapstructure:"tie_break" yaml:"tie_break"`
	PhraseFallback bool   `mapstructure:"phrase_fallback" yaml:"phrase_fallback"`
}

// HTTPConfig configures `typey serve`.
type HTTPConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataDir: DefaultDataDir(),
		Profile: "default",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Fetch: FetchConfig{
			Timeout:           30 * time.Second,
			MaxBytes:          64 << 20,
			CacheTTL:          10 * time.Minute,
			RequestsPerSecond: 2,
			Burst:             2,
			UserAgent:         "typey/1.0",
		},
		Lookup: LookupConfig{
			TieBreak: "first",
		},
		HTTP: HTTPConfig{
			Addr: "127.0.0.1:8484",
		},
	}
}

// DefaultDataDir returns $HOME/.typey, or .typey if there is no home.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".typey"
	}
	return filepath.Join(home, ".typey")
}
