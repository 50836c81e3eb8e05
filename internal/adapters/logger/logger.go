// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"sync"

	"go.trai.ch/semi/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu       sync.RWMutex
	logger   *slog.Logger
	output   io.Writer
	jsonMode bool
}

// New creates a Logger writing human-readable lines to stderr.
func New() ports.Logger {
	l := &Logger{output: os.Stderr}
	l.rebuild()
	return l
}

// SetOutput updates the logger's output destination. A nil writer restores stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and text output, keeping the destination.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.jsonMode = enable
	l.rebuild()
}

// rebuild must be called with mu held for writing (or before publication).
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(l.output, opts)
	} else {
		handler = slog.NewTextHandler(l.output, opts)
	}
	l.logger = slog.New(handler)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error. Nil errors are ignored. Metadata attached anywhere in a
// zerr chain is emitted as attributes, outermost value winning.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", append([]any{"error", err.Error()}, attrs(err)...)...)
}

// metadataer matches zerr.Error.
type metadataer interface {
	Metadata() map[string]any
}

func attrs(err error) []any {
	seen := make(map[string]bool)
	var out []any
	for current := err; current != nil; current = errors.Unwrap(current) {
		m, ok := current.(metadataer)
		if !ok {
			continue
		}
		md := m.Metadata()
		for _, k := range slices.Sorted(maps.Keys(md)) {
			if seen[k] || k == "error" {
				continue
			}
			seen[k] = true
			out = append(out, slog.Any(k, md[k]))
		}
	}
	return out
}
