package attrmap

// Record is implemented by structured values that can convert themselves to
// a plain nested mapping. ToMap conversion delegates to a record's own
// ToMap and does not recurse past what it returns.
//
// *Map satisfies Record, so materialized nested wrappers convert back to
// plain mappings transparently.
type Record interface {
	ToMap() map[string]any
}
