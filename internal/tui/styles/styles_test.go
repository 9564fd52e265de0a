package styles

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/wexinc/gatekeep/internal/config"
)

func restoreProfile(t *testing.T) {
	t.Helper()
	p := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(p) })
}

func TestConfigure(t *testing.T) {
	tests := []struct {
		name  string
		mode  config.ColorMode
		start termenv.Profile
		want  termenv.Profile
	}{
		{"never", config.ColorNever, termenv.TrueColor, termenv.Ascii},
		{"always upgrades ascii", config.ColorAlways, termenv.Ascii, termenv.ANSI256},
		{"always keeps truecolor", config.ColorAlways, termenv.TrueColor, termenv.TrueColor},
		{"auto on buffer", config.ColorAuto, termenv.TrueColor, termenv.Ascii},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreProfile(t)
			lipgloss.SetColorProfile(tt.start)

			Configure(tt.mode, &bytes.Buffer{})

			if got := lipgloss.ColorProfile(); got != tt.want {
				t.Errorf("ColorProfile() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValue_Plain(t *testing.T) {
	restoreProfile(t)
	Configure(config.ColorNever, nil)

	if got := Value(true); got != "true" {
		t.Errorf("Value(true) = %q", got)
	}
	if got := Value(false); got != "false" {
		t.Errorf("Value(false) = %q", got)
	}
	if got := SuccessTextStyle.Render("ok"); got != "ok" {
		t.Errorf("plain render = %q", got)
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("a regular file is not a terminal")
	}
}
