// Package log provides a leveled logger with structured logging support.
package log

import (
	"context"
	"os"
)

var (
	// std is the default logger.
	std = New(WithOutput(os.Stderr), WithLevel(InfoLevel))
)

type ctxKey byte

const loggerContextKey ctxKey = iota

// Default returns the standard logger. Prefer passing loggers explicitly; this one is shared process-wide.
func Default() Logger {
	return std
}

// ContextWithLogger returns a copy of ctx that carries the logger.
func ContextWithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

// LoggerFromContext returns the logger carried by ctx, or the default logger.
func LoggerFromContext(ctx context.Context) Logger {
	if val, ok := ctx.Value(loggerContextKey).(Logger); ok {
		return val
	}

	return std
}

// Debugf logs a message at level Debug on the standard logger.
func Debugf(format string, args ...any) {
	std.Debugf(format, args...)
}

// Infof logs a message at level Info on the standard logger.
func Infof(format string, args ...any) {
	std.Infof(format, args...)
}

// Warnf logs a message at level Warn on the standard logger.
func Warnf(format string, args ...any) {
	std.Warnf(format, args...)
}

// Errorf logs a message at level Error on the standard logger.
func Errorf(format string, args ...any) {
	std.Errorf(format, args...)
}
