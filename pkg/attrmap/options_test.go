package attrmap_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gautampuneet/dataloop-ai/pkg/attrmap"
	"github.com/gautampuneet/dataloop-ai/pkg/attrmap/observability"
)

// countingRecorder records invocations for assertions.
type countingRecorder struct {
	lookups          map[observability.LookupResult]int
	materializations int
	writes           int
	flattens         int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{lookups: make(map[observability.LookupResult]int)}
}

func (r *countingRecorder) RecordLookup(_ context.Context, result observability.LookupResult) {
	r.lookups[result]++
}

func (r *countingRecorder) RecordMaterialization(_ context.Context) { r.materializations++ }

func (r *countingRecorder) RecordWrite(_ context.Context) { r.writes++ }

func (r *countingRecorder) RecordFlatten(_ context.Context, _ int, _ time.Duration) { r.flattens++ }

// TestWithMetrics verifies lookup, write, and flatten instrumentation.
func TestWithMetrics(t *testing.T) {
	rec := newCountingRecorder()
	m := attrmap.FromMap(sampleEntries(), attrmap.WithMetrics(rec))

	m.Get("name")    // top-level hit
	m.Get("height")  // flattened hit
	m.Get("color")   // miss, flattened
	m.Get("_hidden") // miss, no flatten
	m.Set("extra", 1)

	assert.Equal(t, 1, rec.lookups[observability.LookupTopLevel])
	assert.Equal(t, 1, rec.lookups[observability.LookupFlattened])
	assert.Equal(t, 2, rec.lookups[observability.LookupMiss])
	assert.Equal(t, 2, rec.flattens)
	assert.Equal(t, 1, rec.writes)
	assert.Equal(t, 0, rec.materializations)
}

// TestWithMetrics_Materialization verifies wrappers inherit the recorder.
func TestWithMetrics_Materialization(t *testing.T) {
	rec := newCountingRecorder()
	m := attrmap.FromMap(sampleEntries(), attrmap.WithMetrics(rec))

	meta, ok := m.Get("metadata").(*attrmap.Map)
	require.True(t, ok)
	assert.Equal(t, 1, rec.materializations)

	// The wrapper records through the same recorder.
	meta.Get("batch")
	assert.Equal(t, 1, rec.lookups[observability.LookupFlattened])
}

// TestWithLogger verifies per-key events reach the configured logger.
func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := attrmap.FromMap(sampleEntries(), attrmap.WithLogger(logger))

	m.Get("height")
	assert.Contains(t, buf.String(), "flattened lookup")
	assert.Contains(t, buf.String(), "map_id")

	m.Set("name", "second")
	assert.Contains(t, buf.String(), "attribute written")

	meta := m.Get("metadata")
	require.IsType(t, &attrmap.Map{}, meta)
	assert.Contains(t, buf.String(), "nested mapping materialized")
}

// TestDefaultsAreSilent verifies an unconfigured Map neither logs nor panics.
func TestDefaultsAreSilent(t *testing.T) {
	m := attrmap.New(map[string]any{"name": "first"})
	assert.NotPanics(t, func() {
		m.Get("name")
		m.Get("missing")
		m.Set("k", "v")
	})
}
