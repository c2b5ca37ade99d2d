package attrmap

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/gautampuneet/dataloop-ai/pkg/attrmap/observability"
)

// Default values injected under metadata.system at construction time.
const (
	DefaultHeight = 100
	DefaultSize   = 10
)

// Map wraps a nested map[string]any store and resolves names against it:
// top-level entries first, then a flattened view of the whole structure.
// Absent names resolve to nil rather than an error.
//
// Map is not safe for concurrent use; see the package documentation.
type Map struct {
	data map[string]any

	// Observability only. The id carries no behavioral identity: two Maps
	// with equal stores behave identically regardless of their ids.
	id      string
	logger  *slog.Logger
	metrics observability.MetricsRecorder
}

// Map converts itself like any other Record.
var _ Record = (*Map)(nil)

// New creates a Map from the given entries. The top level of entries is
// shallow-copied into a fresh store (values are shared); nil entries yield
// an empty store. Default values are injected under metadata.system after
// the entries are stored. Any string key and any value are accepted.
func New(entries map[string]any, opts ...Option) *Map {
	data := make(map[string]any, len(entries))
	for k, v := range entries {
		data[k] = v
	}

	m := &Map{
		data:    data,
		id:      uuid.New().String(),
		metrics: observability.NoopMetrics{},
	}
	for _, opt := range opts {
		opt(m)
	}

	m.setDefaults()
	return m
}

// FromMap creates a Map from an existing nested mapping. It is equivalent
// to New(source, opts...) and exists for symmetry with ToMap.
func FromMap(source map[string]any, opts ...Option) *Map {
	return New(source, opts...)
}

// Get resolves name and returns its value, or nil if the name resolves
// nowhere. Resolution order:
//
//  1. A top-level store entry. If the stored value is a plain
//     map[string]any it is materialized in place as a *Map (memoized, so
//     repeated reads return the same wrapper) and the wrapper is returned.
//  2. Names starting with "_" never fall through to flattening; the prefix
//     is reserved for implementation internals.
//  3. The flattened view of the store (see Flatten). Nested keys at any
//     depth resolve here; later-walked occurrences of a duplicated key win.
//
// Stored nil values are indistinguishable from absence; use Lookup to tell
// them apart.
func (m *Map) Get(name string) any {
	v, _ := m.Lookup(name)
	return v
}

// Lookup resolves name like Get and additionally reports whether the name
// was found at all.
func (m *Map) Lookup(name string) (any, bool) {
	ctx := context.Background()

	if v, ok := m.data[name]; ok {
		if raw, isMap := v.(map[string]any); isMap {
			wrapped := m.materialize(raw)
			m.data[name] = wrapped
			v = wrapped
			observability.LogMaterialization(m.logger, m.id, name)
			m.metrics.RecordMaterialization(ctx)
		}
		m.metrics.RecordLookup(ctx, observability.LookupTopLevel)
		return v, true
	}

	// Reserved prefix: internal state lives on the struct, not in the
	// store, so these names never resolve through the flattened view.
	if strings.HasPrefix(name, "_") {
		m.metrics.RecordLookup(ctx, observability.LookupMiss)
		return nil, false
	}

	done := observability.TimedOperation()
	flat := Flatten(m.data)
	m.metrics.RecordFlatten(ctx, len(flat), done())

	v, ok := flat[name]
	observability.LogFlattenedLookup(m.logger, m.id, name, ok)
	if !ok {
		m.metrics.RecordLookup(ctx, observability.LookupMiss)
		return nil, false
	}
	m.metrics.RecordLookup(ctx, observability.LookupFlattened)
	return v, true
}

// Set inserts or overwrites name in the top-level store. Writes never
// descend into nested mappings: a same-named key deeper in the structure is
// shadowed, not updated.
func (m *Map) Set(name string, value any) {
	m.data[name] = value
	observability.LogWrite(m.logger, m.id, name)
	m.metrics.RecordWrite(context.Background())
}

// Keys returns the top-level store keys in sorted order. Introspection and
// debugging only; resolution goes through Get/Lookup.
func (m *Map) Keys() []string {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of top-level store entries.
func (m *Map) Len() int {
	return len(m.data)
}

// ToMap converts the Map to a new, fully plain nested mapping. Values
// implementing Record (including nested *Map wrappers) are replaced by
// their own ToMap result; plain map[string]any values are converted
// recursively; everything else is copied verbatim. Slices and other
// containers are NOT descended into, so wrappers or records nested inside
// them survive unconverted.
func (m *Map) ToMap() map[string]any {
	return toPlain(m.data)
}

// toPlain applies the asymmetric conversion rule: records delegate, plain
// mappings recurse, all other values pass through.
func toPlain(data map[string]any) map[string]any {
	result := make(map[string]any, len(data))
	for k, v := range data {
		switch val := v.(type) {
		case Record:
			result[k] = val.ToMap()
		case map[string]any:
			result[k] = toPlain(val)
		default:
			result[k] = v
		}
	}
	return result
}

// materialize wraps a nested plain mapping as a *Map that inherits this
// Map's observability sinks. Construction runs default injection on the
// wrapper, same as any other Map.
func (m *Map) materialize(raw map[string]any) *Map {
	opts := []Option{WithMetrics(m.metrics)}
	if m.logger != nil {
		opts = append(opts, WithLogger(m.logger))
	}
	return New(raw, opts...)
}

// setDefaults guarantees metadata.system.height and metadata.system.size
// exist after construction. Presence, not truthiness, decides whether a
// default applies, so caller-supplied falsy values survive. Existing
// non-mapping values under metadata or metadata.system are left untouched.
func (m *Map) setDefaults() {
	if _, ok := m.data["metadata"]; !ok {
		m.data["metadata"] = map[string]any{}
	}
	meta, ok := m.data["metadata"].(map[string]any)
	if !ok {
		return
	}

	if _, ok := meta["system"]; !ok {
		meta["system"] = map[string]any{}
	}
	system, ok := meta["system"].(map[string]any)
	if !ok {
		return
	}

	if _, ok := system["height"]; !ok {
		system["height"] = DefaultHeight
	}
	if _, ok := system["size"]; !ok {
		system["size"] = DefaultSize
	}
}
