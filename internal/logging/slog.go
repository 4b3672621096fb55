package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// SlogLogger implements Logger on top of a *slog.Logger.
type SlogLogger struct {
	l *slog.Logger
}

// NewSlogLogger wraps l.
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{l: l}
}

// NewTextLogger writes logfmt-style records at or above level to w.
// Unknown level names fall back to info; see ParseLevel.
func NewTextLogger(w io.Writer, level string) *SlogLogger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return NewSlogLogger(slog.New(h))
}

// ParseLevel maps a level name such as "debug" or "WARN" to a slog.Level.
// Names slog does not recognize yield slog.LevelInfo.
func ParseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Debug logs a diagnostic message, dropped unless the level is debug.
func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, args...)
}

// Info logs an informational message.
func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, args...)
}

// Warn logs an unusual but non-fatal condition.
func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, args...)
}

// Error logs a failure.
func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, args...)
}

// With returns a child logger that adds args to every record.
func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(args...)}
}
