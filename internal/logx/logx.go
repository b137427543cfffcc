// Package logx holds the process-wide diagnostic logger.
//
// By default nothing is logged: stdout and stderr belong to the terminal
// UI, so the logger starts as a silent no-op. The CLI installs a real
// handler (writing to a file) when --debug-log is given.
package logx

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

// nopHandler discards all records. Enabled returns false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(nopHandler{}))
}

// Log returns the active logger.
func Log() *slog.Logger { return logger.Load() }

// SetLogger replaces the active logger. Pass nil to restore the silent
// default. Safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	logger.Store(l)
}

// ToFile opens (or creates) path and installs a debug-level text logger
// writing to it. The returned file should be closed on shutdown.
func ToFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return f, nil
}
