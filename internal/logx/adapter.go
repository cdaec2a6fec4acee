package logx

import "log/slog"

// slogAdapter backs the Logger interface with a *slog.Logger.
type slogAdapter struct {
	l *slog.Logger
}

// NewSlogAdapter wraps a *slog.Logger as a Logger.
func NewSlogAdapter(l *slog.Logger) Logger {
	return &slogAdapter{l: l}
}

func (s *slogAdapter) Debug(msg string, fields ...Field) { s.l.Debug(msg, slogArgs(fields)...) }

func (s *slogAdapter) Info(msg string, fields ...Field) { s.l.Info(msg, slogArgs(fields)...) }

func (s *slogAdapter) Warn(msg string, fields ...Field) { s.l.Warn(msg, slogArgs(fields)...) }

func (s *slogAdapter) Error(msg string, fields ...Field) { s.l.Error(msg, slogArgs(fields)...) }

// With attaches fields to every entry the returned logger writes.
func (s *slogAdapter) With(fields ...Field) Logger {
	return &slogAdapter{l: s.l.With(slogArgs(fields)...)}
}

// Sync is a no-op; slog handlers write through.
func (s *slogAdapter) Sync() error { return nil }

func slogArgs(fields []Field) []any {
	args := make([]any, 0, len(fields))
	for _, f := range fields {
		args = append(args, slog.Any(f.Key, f.Value))
	}
	return args
}
