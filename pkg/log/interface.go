// Package log provides a structured logging interface for the resampling pipeline.
//
// The Logger interface mirrors the method set of log/slog so that callers can
// plug in any backend. The default backend is zerolog (see zerolog.go); tests
// use TestLogger, which captures JSON lines in memory.
//
// Example usage:
//
//	logger := log.GetLoggerWithName("oversampling").With(
//	    log.OperationKey, log.OperationFitResample,
//	)
//	logger.Info("Imbalance before resampling",
//	    log.MeanIRKey, 3.9,
//	    log.SamplesKey, 1000,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Fields are passed as alternating key/value pairs. An error value may be
// passed under ErrAttrKey; backends render it with its stack trace.
type Logger interface {
	// Debug logs detailed diagnostic information such as per-iteration state.
	Debug(msg string, fields ...any)

	// Info logs operational information: sample counts, mean imbalance ratios.
	Info(msg string, fields ...any)

	// Warn logs recoverable data-quality conditions.
	Warn(msg string, fields ...any)

	// Error logs failures that abort an operation.
	Error(msg string, fields ...any)

	// With returns a Logger that adds the given fields to every record.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider creates loggers. SetProvider swaps the process-wide provider,
// which is how tests capture the output of package-level loggers.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger tagged with a component name.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for all loggers created by this provider.
	SetLevel(level Level)
}
