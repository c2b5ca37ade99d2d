/*
Package attrmap provides attribute-style access over nested map[string]any
structures.

# Overview

attrmap wraps an arbitrary nested mapping and lets callers read and write its
entries by name without spelling out the full nesting path. Reads resolve
against the top level first; names that miss at the top level are resolved
through a flattened view of the whole structure, so deeply nested keys can be
reached directly. Absence is never an error: a name that resolves nowhere
yields nil.

# Basic Usage

Build a Map from a nested mapping and read values at any depth:

	m := attrmap.FromMap(map[string]any{
	    "id":   "1",
	    "name": "first",
	    "metadata": map[string]any{
	        "system": map[string]any{"size": 10.7, "height": 11},
	        "user":   map[string]any{"batch": 1121},
	    },
	})

	m.Get("name")   // "first"
	m.Get("height") // 11, found through the flattened view
	m.Get("batch")  // 1121
	m.Get("color")  // nil, absent everywhere

Writes always land at the top level, shadowing deeper occurrences of the
same name:

	m.Set("height", 5)
	m.Get("height") // 5

# Defaults

Every Map guarantees a metadata.system sub-mapping after construction, with
height defaulting to 100 and size to 10 when the caller did not supply them.
Caller-supplied values, including falsy ones, are preserved.

	m := attrmap.New(map[string]any{"name": "my"})
	m.Get("height") // 100
	m.Get("size")   // 10

# Materialization

Reading a top-level key whose value is a plain map[string]any replaces it in
the store with a *Map wrapping those entries. The wrapper is memoized, so
repeated reads return the same instance:

	meta := m.Get("metadata").(*attrmap.Map)
	meta.Get("batch") // 1121

# Conversion

ToMap produces a fully plain nested mapping. Nested *Map values and any
value implementing Record are replaced by their own ToMap result; plain
nested mappings are converted recursively; all other values, including
slices, pass through verbatim.

# Typed Accessors

String, Int, Float, Bool, Duration and StringSlice coerce resolved values
and fall back to a caller default on absence or type mismatch, in the style
of configuration lookups:

	m.Float("size", 0)              // 10.7
	m.Int("batch", -1)              // 1121
	m.String("color", "unknown")    // "unknown"

# Thread Safety

Map is not safe for concurrent use. Reads can mutate the store (wrapper
materialization), so even concurrent readers need external synchronization.
*/
package attrmap
