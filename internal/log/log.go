// Package log builds the editor's structured logger.
//
// The terminal belongs to the editor while it runs, so records only ever go
// to a rotating file, or nowhere.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/iw2rmb/kilo/internal/config"
)

// Init returns a logger for cfg and a cleanup that closes the log file.
// With an empty cfg.File the logger discards everything.
func Init(cfg config.LogConfig) (*slog.Logger, func(), error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.File == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, opts)), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}

	w := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   true,
	}
	logger := slog.New(slog.NewJSONHandler(w, opts)).With("pid", os.Getpid())
	return logger, func() { _ = w.Close() }, nil
}
