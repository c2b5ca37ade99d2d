// Package observability provides opt-in observability for attrmap:
// structured logging and metrics.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds attrmap context to a logger.
// Returns a new logger with the map_id field attached.
//
// Example:
//
//	enriched := EnrichLogger(logger, m.ID())
//	enriched.Info("loaded settings") // includes map_id
func EnrichLogger(logger *slog.Logger, mapID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("map_id", mapID),
	)
}

// LogMaterialization logs the in-place wrapping of a nested mapping.
func LogMaterialization(logger *slog.Logger, mapID, key string) {
	if logger == nil {
		return
	}
	logger.Debug("nested mapping materialized",
		slog.String("map_id", mapID),
		slog.String("key", key),
	)
}

// LogFlattenedLookup logs a lookup that fell through to the flattened view.
func LogFlattenedLookup(logger *slog.Logger, mapID, key string, found bool) {
	if logger == nil {
		return
	}
	logger.Debug("flattened lookup",
		slog.String("map_id", mapID),
		slog.String("key", key),
		slog.Bool("found", found),
	)
}

// LogWrite logs a top-level store write.
func LogWrite(logger *slog.Logger, mapID, key string) {
	if logger == nil {
		return
	}
	logger.Debug("attribute written",
		slog.String("map_id", mapID),
		slog.String("key", key),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	elapsed := done()
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}
