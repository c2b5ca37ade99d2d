package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// LookupResult classifies how a name was resolved.
type LookupResult string

// Lookup resolution outcomes.
const (
	// LookupTopLevel means the name hit a top-level store entry.
	LookupTopLevel LookupResult = "top_level"

	// LookupFlattened means the name resolved through the flattened view.
	LookupFlattened LookupResult = "flattened"

	// LookupMiss means the name resolved nowhere.
	LookupMiss LookupResult = "miss"
)

// MetricsRecorder records attrmap metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordLookup records a name resolution with its outcome.
	RecordLookup(ctx context.Context, result LookupResult)

	// RecordMaterialization records the in-place wrapping of a nested mapping.
	RecordMaterialization(ctx context.Context)

	// RecordWrite records a top-level store write.
	RecordWrite(ctx context.Context)

	// RecordFlatten records a flattened-view computation with the number of
	// keys produced and its duration.
	RecordFlatten(ctx context.Context, keys int, duration time.Duration)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	lookups          metric.Int64Counter
	materializations metric.Int64Counter
	writes           metric.Int64Counter
	flattenKeys      metric.Int64Histogram
	flattenLatency   metric.Float64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("attrmap")

	lookups, err := meter.Int64Counter("attrmap.lookups",
		metric.WithDescription("Number of name resolutions"),
	)
	if err != nil {
		return nil, err
	}

	materializations, err := meter.Int64Counter("attrmap.materializations",
		metric.WithDescription("Number of nested mappings wrapped in place"),
	)
	if err != nil {
		return nil, err
	}

	writes, err := meter.Int64Counter("attrmap.writes",
		metric.WithDescription("Number of top-level store writes"),
	)
	if err != nil {
		return nil, err
	}

	flattenKeys, err := meter.Int64Histogram("attrmap.flatten.keys",
		metric.WithDescription("Number of keys in computed flattened views"),
	)
	if err != nil {
		return nil, err
	}

	flattenLatency, err := meter.Float64Histogram("attrmap.flatten.latency_ms",
		metric.WithDescription("Flattened-view computation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		lookups:          lookups,
		materializations: materializations,
		writes:           writes,
		flattenKeys:      flattenKeys,
		flattenLatency:   flattenLatency,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordLookup records a name resolution.
func (m *otelMetrics) RecordLookup(ctx context.Context, result LookupResult) {
	m.lookups.Add(ctx, 1, metric.WithAttributes(
		attribute.String("result", string(result)),
	))
}

// RecordMaterialization records a nested-mapping wrap.
func (m *otelMetrics) RecordMaterialization(ctx context.Context) {
	m.materializations.Add(ctx, 1)
}

// RecordWrite records a store write.
func (m *otelMetrics) RecordWrite(ctx context.Context) {
	m.writes.Add(ctx, 1)
}

// RecordFlatten records a flattened-view computation.
func (m *otelMetrics) RecordFlatten(ctx context.Context, keys int, duration time.Duration) {
	m.flattenKeys.Record(ctx, int64(keys))
	m.flattenLatency.Record(ctx, float64(duration)/float64(time.Millisecond))
}
