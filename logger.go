package staticvec

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with staticvec-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithRegion adds a region field to the logger.
func (l *Logger) WithRegion(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("region", name),
	}
}

// LogDeclare logs a region declaration.
func (l *Logger) LogDeclare(name string, backing Backing, capacity int, bytes int64, err error) {
	if err != nil {
		l.Error("declare failed",
			"region", name,
			"backing", backing.String(),
			"capacity", capacity,
			"error", err,
		)
		return
	}
	l.Info("region declared",
		"region", name,
		"backing", backing.String(),
		"capacity", capacity,
		"bytes", bytes,
	)
}

// LogAcquire logs an acquire attempt.
func (l *Logger) LogAcquire(name string, err error) {
	if err != nil {
		l.Debug("acquire refused",
			"region", name,
			"error", err,
		)
		return
	}
	l.Debug("region acquired",
		"region", name,
	)
}

// LogRelease logs the release of a handle.
func (l *Logger) LogRelease(name string, held time.Duration) {
	l.Debug("region released",
		"region", name,
		"held", held,
	)
}

// LogLeak logs a handle that was garbage collected without Release.
func (l *Logger) LogLeak(name string) {
	l.Warn("handle reclaimed without release",
		"region", name,
	)
}

// LogViolation logs a bounds violation right before it panics.
func (l *Logger) LogViolation(be *BoundsError) {
	l.Error("bounds violation",
		"region", be.Region,
		"op", be.Op,
		"kind", be.Kind.Error(),
		"index", be.Index,
		"len", be.Len,
		"cap", be.Cap,
	)
}
