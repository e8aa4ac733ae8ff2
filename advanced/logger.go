package advanced

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. It keeps the package silent until a caller
// opts in with SetLogger.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h nopHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h nopHandler) WithGroup(string) slog.Handler           { return h }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the package-wide logger used when Options.Logger is nil.
// Passing nil restores the silent default. Safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the package-wide logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
