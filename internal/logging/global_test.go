package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetGlobal() {
	globalMu.Lock()
	globalLogger = nil
	globalMu.Unlock()
}

func TestGlobal(t *testing.T) {
	resetGlobal()

	logger := Global()
	if logger == nil {
		t.Fatal("Global() returned nil")
	}

	// Should not panic
	logger.Info("test message")
}

func TestSetGlobal(t *testing.T) {
	resetGlobal()

	logger, err := New(&Config{Level: LevelInfo, LogDir: t.TempDir()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer logger.Close()

	SetGlobal(logger)
	defer SetGlobal(nil)

	if Global() != logger {
		t.Error("Global() should return the logger set by SetGlobal()")
	}
}

func TestCloseGlobal(t *testing.T) {
	resetGlobal()

	if err := InitGlobal(&Config{Level: LevelInfo, LogDir: t.TempDir()}); err != nil {
		t.Fatalf("InitGlobal() error = %v", err)
	}
	if err := CloseGlobal(); err != nil {
		t.Fatalf("CloseGlobal() error = %v", err)
	}

	// After close the no-op logger takes over.
	if Global() == nil {
		t.Fatal("Global() returned nil after CloseGlobal()")
	}
	Global().Info("after close")

	// Closing again is harmless.
	if err := CloseGlobal(); err != nil {
		t.Errorf("second CloseGlobal() error = %v", err)
	}
}

func TestGlobalConvenienceFunctions(t *testing.T) {
	resetGlobal()
	tmpDir := t.TempDir()

	if err := InitGlobal(&Config{Level: LevelDebug, LogDir: tmpDir}); err != nil {
		t.Fatal(err)
	}
	defer CloseGlobal()

	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message")
	With("file", "/tmp/gates.yaml").Info("with message")

	entries, _ := os.ReadDir(tmpDir)
	var logPath string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), FilePrefix) {
			logPath = filepath.Join(tmpDir, e.Name())
			break
		}
	}
	if logPath == "" {
		t.Fatal("No log file found")
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	for _, msg := range []string{"debug message", "info message", "warn message", "error message", "/tmp/gates.yaml"} {
		if !strings.Contains(string(content), msg) {
			t.Errorf("Log should contain %q", msg)
		}
	}
}
