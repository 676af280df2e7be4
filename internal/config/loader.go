package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jladdjr/typey-type/internal/domain/lookup"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Init points v at the config file (or $HOME/.typey/config.yaml when
// cfgFile is empty), wires TYPEY_* env overrides and registers defaults.
// A missing default config file is not an error.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(DefaultDataDir())
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read %q: %w", v.ConfigFileUsed(), err)
	}
	slog.Debug("using config file", "path", v.ConfigFileUsed())
	return nil
}

// SetDefaults registers every key so env overrides apply to it.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("profile", d.Profile)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("dictionaries", d.Dictionaries)
	v.SetDefault("fetch.timeout", d.Fetch.Timeout)
	v.SetDefault("fetch.max_bytes", d.Fetch.MaxBytes)
	v.SetDefault("fetch.cache_ttl", d.Fetch.CacheTTL)
	v.SetDefault("fetch.requests_per_second", d.Fetch.RequestsPerSecond)
	v.SetDefault("fetch.burst", d.Fetch.Burst)
	v.SetDefault("fetch.user_agent", d.Fetch.UserAgent)
	v.SetDefault("lookup.tie_break", d.Lookup.TieBreak)
	v.SetDefault("lookup.phrase_fallback", d.Lookup.PhraseFallback)
	v.SetDefault("watch", d.Watch)
	v.SetDefault("http.addr", d.HTTP.Addr)
}

// Load decodes v into a validated Config.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.DataDir = ExpandHome(cfg.DataDir)
	for i := range cfg.Dictionaries {
		cfg.Dictionaries[i].Path = ExpandHome(cfg.Dictionaries[i].Path)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.DataDir == "" {
		errs = append(errs, errors.New("data_dir is required"))
	}
	if cfg.Profile == "" {
		errs = append(errs, errors.New("profile is required"))
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is invalid; valid values: debug, info, warn, error", cfg.Log.Level))
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q is invalid; valid values: text, json", cfg.Log.Format))
	}

	seen := make(map[string]int, len(cfg.Dictionaries))
	for i, d := range cfg.Dictionaries {
		prefix := fmt.Sprintf("dictionaries[%d]", i)
		if err := d.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
			continue
		}
		label := d.Label()
		if prev, ok := seen[label]; ok {
			errs = append(errs, fmt.Errorf("%s: name %q is a duplicate of dictionaries[%d]", prefix, label, prev))
		}
		seen[label] = i
	}

	if cfg.Fetch.Timeout < 0 {
		errs = append(errs, fmt.Errorf("fetch.timeout %s must not be negative", cfg.Fetch.Timeout))
	}
	if cfg.Fetch.MaxBytes < 0 {
		errs = append(errs, fmt.Errorf("fetch.max_bytes %d must not be negative", cfg.Fetch.MaxBytes))
	}
	if cfg.Fetch.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("fetch.requests_per_second %.2f must not be negative", cfg.Fetch.RequestsPerSecond))
	}

	if _, err := lookup.ParseTieBreak(cfg.Lookup.TieBreak); err != nil {
		errs = append(errs, fmt.Errorf("lookup.tie_break: %w", err))
	}

	return errors.Join(errs...)
}

// WriteDefault writes cfg as a commented YAML config file.
func WriteDefault(w io.Writer, cfg *Config) error {
	header := `# typey configuration
#
# Priority (highest first):
#   1. command-line flags
#   2. environment variables (TYPEY_PROFILE, TYPEY_LOG_LEVEL, ...)
#   3. this file
#   4. built-in defaults
#
# dictionaries are merged in the order listed; the first dictionary to
# define a word decides its stroke. Example:
#
# dictionaries:
#   - name: main
#     path: ~/plover/main.json
#   - name: typey
#     url: https://example.com/typey-type.json

`
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("config: encode yaml: %w", err)
	}
	return enc.Close()
}
