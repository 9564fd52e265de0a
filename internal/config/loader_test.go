package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

// isolate points the home directory and working directory at empty temp
// dirs so search paths find nothing.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load("nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if loadErr.Path != "nonexistent/config.yaml" {
		t.Errorf("Path = %q", loadErr.Path)
	}
	if loadErr.Message != "config file not found" {
		t.Errorf("Message = %q", loadErr.Message)
	}
}

func TestLoad_NoConfigUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Format.Marker != DefaultMarker || cfg.Format.MarkerWidth != DefaultMarkerWidth {
		t.Errorf("Format = %+v", cfg.Format)
	}
}

func TestLoad_SearchesProjectThenHome(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	if err := os.MkdirAll(filepath.Join(home, ".gatekeep"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, ".gatekeep", "config.yaml"), []byte("format:\n  marker_width: 7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format.MarkerWidth != 7 {
		t.Errorf("home config: MarkerWidth = %d, want 7", cfg.Format.MarkerWidth)
	}

	if err := os.MkdirAll(filepath.Join(work, ".gatekeep"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, DefaultConfigPath), []byte("format:\n  marker_width: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format.MarkerWidth != 3 {
		t.Errorf("project config: MarkerWidth = %d, want 3", cfg.Format.MarkerWidth)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
format:
  marker: "="
  marker_width: 10
file:
  default: /srv/app/gates.yaml
ui:
  color: Never
log:
  level: debug
  dir: /tmp/gk
  json: true
recent:
  max: 3
  path: /tmp/recent.json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Format.Marker != "=" || cfg.Format.MarkerWidth != 10 {
		t.Errorf("Format = %+v", cfg.Format)
	}
	if cfg.File.Default != "/srv/app/gates.yaml" {
		t.Errorf("File.Default = %q", cfg.File.Default)
	}
	if cfg.UI.Color != ColorNever {
		t.Errorf("UI.Color = %q, want %q", cfg.UI.Color, ColorNever)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Dir != "/tmp/gk" || !cfg.Log.JSON {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Recent.Max != 3 || cfg.Recent.Path != "/tmp/recent.json" {
		t.Errorf("Recent = %+v", cfg.Recent)
	}
}

func TestLoad_PartialConfig(t *testing.T) {
	path := writeConfig(t, "ui:\n  color: always\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.UI.Color != ColorAlways {
		t.Errorf("UI.Color = %q", cfg.UI.Color)
	}
	if cfg.Format.Marker != DefaultMarker || cfg.Format.MarkerWidth != DefaultMarkerWidth {
		t.Errorf("defaults not applied: %+v", cfg.Format)
	}
}

func TestLoad_EmptyConfigFile(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Recent.Max != DefaultRecentMax {
		t.Errorf("Recent.Max = %d", cfg.Recent.Max)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "format:\n  marker: \"#\"\n")

	t.Setenv("GATEKEEP_FORMAT_MARKER", "*")
	t.Setenv("GATEKEEP_FORMAT_MARKER_WIDTH", "5")
	t.Setenv("GATEKEEP_FILE_DEFAULT", "/env/gates.yaml")
	t.Setenv("GATEKEEP_UI_COLOR", "NEVER")
	t.Setenv("GATEKEEP_LOG_LEVEL", "warn")
	t.Setenv("GATEKEEP_LOG_JSON", "yes")
	t.Setenv("GATEKEEP_RECENT_MAX", "2")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Format.Marker != "*" || cfg.Format.MarkerWidth != 5 {
		t.Errorf("Format = %+v", cfg.Format)
	}
	if cfg.File.Default != "/env/gates.yaml" {
		t.Errorf("File.Default = %q", cfg.File.Default)
	}
	if cfg.UI.Color != ColorNever {
		t.Errorf("UI.Color = %q", cfg.UI.Color)
	}
	if cfg.Log.Level != "warn" || !cfg.Log.JSON {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Recent.Max != 2 {
		t.Errorf("Recent.Max = %d", cfg.Recent.Max)
	}
}

func TestLoad_EnvOverridesWithoutFile(t *testing.T) {
	isolate(t)
	t.Setenv("GATEKEEP_FORMAT_MARKER_WIDTH", "12")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format.MarkerWidth != 12 {
		t.Errorf("MarkerWidth = %d, want 12", cfg.Format.MarkerWidth)
	}
}

func TestLoad_ValidationError(t *testing.T) {
	path := writeConfig(t, "format:\n  marker: \"ab\"\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if loadErr.Message != "configuration validation failed" {
		t.Errorf("Message = %q", loadErr.Message)
	}
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Error("cause should be ValidationErrors")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "format: [unclosed\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	var loadErr *LoadError
	if !errors.As(err, &loadErr) || loadErr.Message != "failed to read config file" {
		t.Errorf("error = %v", err)
	}
}

func TestParseBool(t *testing.T) {
	tests := map[string]bool{
		"true":  true,
		"TRUE":  true,
		"1":     true,
		"yes":   true,
		" Yes ": true,
		"false": false,
		"0":     false,
		"no":    false,
		"":      false,
	}
	for in, want := range tests {
		if got := parseBool(in); got != want {
			t.Errorf("parseBool(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLoadError_Error(t *testing.T) {
	e := &LoadError{Path: "x.yaml", Message: "bad"}
	if e.Error() != "x.yaml: bad" {
		t.Errorf("Error() = %q", e.Error())
	}

	cause := errors.New("boom")
	e = &LoadError{Message: "bad", Err: cause}
	if e.Error() != "(defaults): bad: boom" {
		t.Errorf("Error() = %q", e.Error())
	}
	if !errors.Is(e, cause) {
		t.Error("Unwrap should expose the cause")
	}
}

func TestUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := UserDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join(home, ".gatekeep") {
		t.Errorf("UserDir() = %q", dir)
	}
}
