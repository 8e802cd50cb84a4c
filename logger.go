package breakout

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Safe for concurrent use.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for breakout and all its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used by breakout:
//   - [slog.LevelDebug]: level parsing, texture and sound loading
//   - [slog.LevelInfo]: state transitions, lives lost, power-ups activated
//   - [slog.LevelWarn]: degraded continuation (empty level, missing asset)
//
// Example:
//
//	breakout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by breakout.
// The render, resource and audio packages call this so they share one
// configuration without import cycles.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
