package attrmap

import (
	"log/slog"

	"github.com/gautampuneet/dataloop-ai/pkg/attrmap/observability"
)

// Option configures a Map at construction time.
type Option func(*Map)

// WithLogger attaches a structured logger to the Map. Per-key events
// (materializations, flattened lookups, writes) are logged at Debug level
// with the instance's map_id attached. Maps materialized from nested
// mappings inherit the logger.
//
// Example:
//
//	m := attrmap.New(entries, attrmap.WithLogger(slog.Default()))
func WithLogger(logger *slog.Logger) Option {
	return func(m *Map) {
		m.logger = logger
	}
}

// WithMetrics attaches a metrics recorder to the Map. Use
// observability.NewMetricsRecorder() for OpenTelemetry metrics. Maps
// materialized from nested mappings inherit it.
//
// Example:
//
//	m := attrmap.New(entries, attrmap.WithMetrics(observability.NewMetricsRecorder()))
func WithMetrics(recorder observability.MetricsRecorder) Option {
	return func(m *Map) {
		if recorder != nil {
			m.metrics = recorder
		}
	}
}
