package observability

import (
	"context"
	"time"
)

// NoopMetrics is a MetricsRecorder that does nothing.
// Use when metrics are disabled to avoid overhead.
type NoopMetrics struct{}

// Compile-time interface check.
var _ MetricsRecorder = NoopMetrics{}

// RecordLookup does nothing.
func (NoopMetrics) RecordLookup(_ context.Context, _ LookupResult) {}

// RecordMaterialization does nothing.
func (NoopMetrics) RecordMaterialization(_ context.Context) {}

// RecordWrite does nothing.
func (NoopMetrics) RecordWrite(_ context.Context) {}

// RecordFlatten does nothing.
func (NoopMetrics) RecordFlatten(_ context.Context, _ int, _ time.Duration) {}
