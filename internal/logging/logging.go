package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// New builds the process logger. The TUI owns the terminal, so logs normally
// go to a file; "-" sends them to stderr and an empty path discards them.
// The returned closer must be called on exit.
func New(file string, level slog.Level) (*slog.Logger, io.Closer, error) {
	opts := &slog.HandlerOptions{Level: level}
	switch file {
	case "":
		return slog.New(slog.NewTextHandler(io.Discard, opts)), nopCloser{}, nil
	case "-":
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, opts)), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
