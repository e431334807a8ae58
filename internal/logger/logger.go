package logger

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func Nop() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(Nop())
}

// SetLogger configures the logger shared by the inkstone packages. By
// default nothing is logged; pass nil to restore that.
//
// Levels in use:
//   - [slog.LevelDebug]: per-candidate alignment scores, session transitions
//   - [slog.LevelInfo]: dataset loading, matcher construction
//   - [slog.LevelWarn]: settings problems that fell back to defaults
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = Nop()
	}
	loggerPtr.Store(l)
}

func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// ParseLevel maps a settings string onto a slog level, defaulting to warn.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn
	}
	return level
}
