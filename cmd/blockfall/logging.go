package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
)

// newLogger creates a leveled logger writing to w.
func newLogger(w io.Writer, prefix string, cfg config.LogConfig) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(cfg.Level); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// newFileLogger creates a logger appending to the configured log file, so
// interactive sessions keep the terminal clean. Falls back to discarding
// output when no file is configured.
func newFileLogger(prefix string, cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	if cfg.File == "" {
		return newLogger(io.Discard, prefix, cfg), io.NopCloser(nil), nil
	}

	path, err := config.ExpandPath(cfg.File)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return newLogger(f, prefix, cfg), f, nil
}
