package pebble

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/cockroachdb/pebble"
)

var _ pebble.LoggerAndTracer = (*Logger)(nil)

// Logger sends Pebble's internal logging to a slog.Logger. Tracing is
// disabled.
type Logger struct {
	logger *slog.Logger
}

// NewLogger returns a Pebble logger writing to l, or slog.Default if l is nil.
func NewLogger(l *slog.Logger) *Logger {
	if l == nil {
		l = slog.Default()
	}
	return &Logger{logger: l.With("component", "pebble")}
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}

func (l *Logger) Eventf(ctx context.Context, format string, args ...interface{}) {}

func (l *Logger) IsTracingEnabled(ctx context.Context) bool {
	return false
}
