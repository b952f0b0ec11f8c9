// Package logger holds the process-wide structured logger for the
// mintrianglepath command. Library packages never log; only the CLI does.
package logger

import (
	"io"
	"log/slog"
	"sync"
)

// Config selects where logs go and how verbose they are.
type Config struct {
	Out   io.Writer
	Debug bool
}

var (
	mu     sync.RWMutex
	global = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Setup installs a text logger writing to cfg.Out. Without Debug only
// warnings and errors are emitted; with Debug everything is, with source
// positions. A nil Out discards all output.
// The returned function restores the discarding logger.
func Setup(cfg Config) func() {
	out := cfg.Out
	if out == nil {
		out = io.Discard
	}
	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}

	l := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Debug,
	}))

	mu.Lock()
	global = l
	mu.Unlock()

	l.Debug("logger.initialized", "debug", cfg.Debug)

	return func() {
		mu.Lock()
		defer mu.Unlock()
		global = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

// L returns the current logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
