// Package logging owns the process-wide slog logger.
//
// The terminal belongs to the UI, so logs go to a file under the XDG state
// directory instead of stdout.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

var (
	mu     sync.Mutex
	logger *slog.Logger
	file   *os.File
)

// ParseLevel maps a level name to a slog level. Unknown names fall back to INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup installs a text logger writing to w as the global and slog default logger.
func Setup(level string, w io.Writer) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	logger = slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// DefaultPath returns the log file location, creating its directory.
func DefaultPath() (string, error) {
	path, err := xdg.StateFile("reel/reel.log")
	if err != nil {
		return "", fmt.Errorf("resolve log path: %w", err)
	}
	return path, nil
}

// SetupFile opens (appending) the log file at path and installs a logger
// writing to it. Close releases the file.
func SetupFile(level, path string) (*slog.Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l := Setup(level, f)

	mu.Lock()
	prev := file
	file = f
	mu.Unlock()

	if prev != nil {
		_ = prev.Close()
	}
	return l, nil
}

// Close closes the log file opened by SetupFile, if any. Logging afterwards
// is discarded.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return err
}

// Get returns the configured logger. Before Setup it discards everything.
func Get() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger
}

// WithComponent returns a logger with the component field set.
func WithComponent(name string) *slog.Logger {
	return Get().With(slog.String("component", name))
}
