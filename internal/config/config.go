// Package config provides configuration data structures for gatekeep.
package config

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/wexinc/gatekeep/internal/gates"
	"github.com/wexinc/gatekeep/internal/logging"
)

// Config represents the complete gatekeep configuration loaded from
// .gatekeep/config.yaml.
type Config struct {
	Format FormatConfig `yaml:"format" json:"format" mapstructure:"format"`
	File   FileConfig   `yaml:"file"   json:"file"   mapstructure:"file"`
	UI     UIConfig     `yaml:"ui"     json:"ui"     mapstructure:"ui"`
	Log    LogConfig    `yaml:"log"    json:"log"    mapstructure:"log"`
	Recent RecentConfig `yaml:"recent" json:"recent" mapstructure:"recent"`
}

// FormatConfig configures the section header layout of gate files.
type FormatConfig struct {
	// Marker is the single delimiter character around section names (default: "#").
	Marker string `yaml:"marker" json:"marker" mapstructure:"marker"`
	// MarkerWidth is how many markers appear on each side (default: 20).
	MarkerWidth int `yaml:"marker_width" json:"marker_width" mapstructure:"marker_width"`
}

// FileConfig configures which gate file is opened.
type FileConfig struct {
	// Default is opened when no --file flag is given. Empty means prompt.
	Default string `yaml:"default" json:"default" mapstructure:"default"`
}

// ColorMode controls colored console output.
type ColorMode string

const (
	// ColorAuto colors output only when stdout is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways always colors output.
	ColorAlways ColorMode = "always"
	// ColorNever never colors output.
	ColorNever ColorMode = "never"
)

// UIConfig configures console presentation.
type UIConfig struct {
	// Color is the color mode (default: auto).
	Color ColorMode `yaml:"color" json:"color" mapstructure:"color"`
}

// LogConfig configures the run log.
type LogConfig struct {
	// Level is the minimum level written (default: info).
	Level string `yaml:"level" json:"level" mapstructure:"level"`
	// Dir is the log directory (default: ~/.gatekeep/logs).
	Dir string `yaml:"dir" json:"dir" mapstructure:"dir"`
	// JSON writes JSON lines instead of text.
	JSON bool `yaml:"json" json:"json" mapstructure:"json"`
}

// RecentConfig configures the recently edited files list.
type RecentConfig struct {
	// Max is how many files are remembered (default: 10, 0 disables).
	Max int `yaml:"max" json:"max" mapstructure:"max"`
	// Path is the list location (default: ~/.gatekeep/recent.json).
	Path string `yaml:"path" json:"path" mapstructure:"path"`
}

// Default values.
const (
	DefaultMarker      = gates.DefaultMarker
	DefaultMarkerWidth = gates.DefaultMarkerWidth
	DefaultLogLevel    = "info"
	DefaultRecentMax   = 10
)

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Format: FormatConfig{
			Marker:      DefaultMarker,
			MarkerWidth: DefaultMarkerWidth,
		},
		UI: UIConfig{
			Color: ColorAuto,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Recent: RecentConfig{
			Max: DefaultRecentMax,
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.Format.Marker == "" {
		c.Format.Marker = defaults.Format.Marker
	}
	if c.Format.MarkerWidth == 0 {
		c.Format.MarkerWidth = defaults.Format.MarkerWidth
	}
	if c.UI.Color == "" {
		c.UI.Color = defaults.UI.Color
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// GateFormat returns the header layout described by the config.
func (c *Config) GateFormat() *gates.Format {
	return gates.NewFormat(c.Format.Marker, c.Format.MarkerWidth)
}

// LoggingConfig returns the logger configuration described by the config.
func (c *Config) LoggingConfig() *logging.Config {
	lc := logging.DefaultConfig()
	if level, err := logging.ParseLevel(c.Log.Level); err == nil {
		lc.Level = level
	}
	if c.Log.Dir != "" {
		lc.LogDir = c.Log.Dir
	}
	lc.JSONFormat = c.Log.JSON
	return lc
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if utf8.RuneCountInString(c.Format.Marker) != 1 {
		errs = append(errs, &ValidationError{Field: "format.marker", Message: "must be a single character"})
	} else if r, _ := utf8.DecodeRuneInString(c.Format.Marker); unicode.IsSpace(r) || unicode.IsLetter(r) || unicode.IsDigit(r) || r == ':' {
		errs = append(errs, &ValidationError{
			Field:   "format.marker",
			Message: fmt.Sprintf("%q cannot be used as a header marker", c.Format.Marker),
		})
	}
	if c.Format.MarkerWidth < 1 {
		errs = append(errs, &ValidationError{Field: "format.marker_width", Message: "must be at least 1"})
	}

	switch c.UI.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		errs = append(errs, &ValidationError{
			Field:   "ui.color",
			Message: "must be 'auto', 'always', or 'never'",
		})
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, &ValidationError{
			Field:   "log.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	if c.Recent.Max < 0 {
		errs = append(errs, &ValidationError{Field: "recent.max", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
