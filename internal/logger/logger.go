package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
)

var (
	mu    sync.Mutex
	file  *os.File
	level = new(slog.LevelVar)

	// Until InitLogging is called all output is discarded, so the TUI screen is never written to.
	current atomic.Pointer[slog.Logger]
)

func init() {
	setOutput(io.Discard)
}

// InitLogging sends log output to the file at path. Debug lines are written only when debug is true.
func InitLogging(debug bool, path string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	if file != nil {
		file.Close()
	}

	file = f
	setLevel(debug)
	setOutput(f)

	return nil
}

// SetOutput redirects logging to w. Used by tests.
func SetOutput(w io.Writer, debug bool) {
	mu.Lock()
	defer mu.Unlock()

	setLevel(debug)
	setOutput(w)
}

// Close flushes and closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	setOutput(io.Discard)

	if file != nil {
		file.Close()
		file = nil
	}
}

func Debugf(format string, args ...any) {
	logf(slog.LevelDebug, format, args...)
}

func Infof(format string, args ...any) {
	logf(slog.LevelInfo, format, args...)
}

func Warnf(format string, args ...any) {
	logf(slog.LevelWarn, format, args...)
}

func Errorf(format string, args ...any) {
	logf(slog.LevelError, format, args...)
}

func logf(l slog.Level, format string, args ...any) {
	ctx := context.Background()

	logger := current.Load()
	if !logger.Enabled(ctx, l) {
		return
	}

	logger.Log(ctx, l, fmt.Sprintf(format, args...))
}

func setLevel(debug bool) {
	if debug {
		level.Set(slog.LevelDebug)
		return
	}

	level.Set(slog.LevelInfo)
}

func setOutput(w io.Writer) {
	current.Store(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
