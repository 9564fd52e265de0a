package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	// DefaultConfigPath is the project-local config file, relative to the
	// working directory.
	DefaultConfigPath = ".gatekeep/config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "GATEKEEP"
)

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// LoadConfig loads configuration from the specified path, applies defaults,
// merges environment variables, and validates the result.
// An explicit path must exist. An empty path searches DefaultConfigPath and
// then ~/.gatekeep/config.yaml, falling back to defaults when neither exists.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = findConfig()
		if path == "" {
			return l.finish(NewConfig(), "")
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &LoadError{
			Path:    path,
			Message: "config file not found",
			Err:     err,
		}
	}

	l.v.SetConfigFile(path)

	if err := l.v.ReadInConfig(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to read config file",
			Err:     err,
		}
	}

	// Start with defaults
	cfg := NewConfig()

	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to parse config file",
			Err:     err,
		}
	}

	return l.finish(cfg, path)
}

// finish applies env overrides and defaults, then validates.
func (l *Loader) finish(cfg *Config, path string) (*Config, error) {
	l.applyEnvOverrides(cfg)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

// findConfig returns the first existing config file, or "".
func findConfig() string {
	candidates := []string{DefaultConfigPath}
	if dir, err := UserDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "config.yaml"))
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

// UserDir returns the per-user gatekeep directory (~/.gatekeep).
func UserDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".gatekeep"), nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "_FORMAT_MARKER"); v != "" {
		cfg.Format.Marker = v
	}
	if v := os.Getenv(EnvPrefix + "_FORMAT_MARKER_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Format.MarkerWidth = n
		}
	}

	if v := os.Getenv(EnvPrefix + "_FILE_DEFAULT"); v != "" {
		cfg.File.Default = v
	}

	if v := os.Getenv(EnvPrefix + "_UI_COLOR"); v != "" {
		cfg.UI.Color = ColorMode(strings.ToLower(v))
	}

	if v := os.Getenv(EnvPrefix + "_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvPrefix + "_LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}
	if v := os.Getenv(EnvPrefix + "_LOG_JSON"); v != "" {
		cfg.Log.JSON = parseBool(v)
	}

	if v := os.Getenv(EnvPrefix + "_RECENT_MAX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Recent.Max = n
		}
	}
	if v := os.Getenv(EnvPrefix + "_RECENT_PATH"); v != "" {
		cfg.Recent.Path = v
	}
}

// parseBool parses a string as a boolean value.
// Returns true for "true", "1", "yes" (case-insensitive).
// Returns false for anything else.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}

// viperDecodeHook provides custom decoding for viper unmarshaling.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
		stringToColorModeHookFunc(),
	)
}

// stringToColorModeHookFunc lowercases color modes so "Always" and
// "always" both validate.
func stringToColorModeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(ColorMode("")) {
			return data, nil
		}
		return ColorMode(strings.ToLower(strings.TrimSpace(data.(string)))), nil
	}
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	path := e.Path
	if path == "" {
		path = "(defaults)"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load is a convenience function that creates a new Loader and loads configuration.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}
