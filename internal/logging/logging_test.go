package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetup_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := Setup("warn", &buf)

	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("warn message missing")
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	Setup("info", &buf)

	WithComponent("carousel").Info("hello")

	out := buf.String()
	if !strings.Contains(out, "component=carousel") {
		t.Errorf("output %q missing component field", out)
	}
	if !strings.Contains(out, "msg=hello") {
		t.Errorf("output %q missing message", out)
	}
}

func TestSetupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reel.log")

	l, err := SetupFile("debug", path)
	if err != nil {
		t.Fatalf("SetupFile() error: %v", err)
	}
	l.Debug("to file", "page", 3)
	if err := Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "page=3") {
		t.Errorf("log file = %q, want page=3", data)
	}

	// Logging after Close must not panic.
	Get().Info("discarded")
}

func TestSetupFile_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "reel.log")
	if _, err := SetupFile("info", path); err == nil {
		t.Error("SetupFile() with missing directory should fail")
	}
}
