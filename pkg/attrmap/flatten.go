package attrmap

import "sort"

// Flatten merges every nested plain mapping's entries into a single level.
//
// For each entry whose value is itself a map[string]any, the entry's
// flattened descendants are inserted first and the entry's own key/value
// pair after, so a key duplicated at several depths resolves to the
// later-walked occurrence. Nested mappings therefore appear in the result
// both as whole sub-mappings under their own key and as their individual
// descendant pairs.
//
// Go maps have no insertion order, so siblings are walked in sorted key
// order to keep collision outcomes deterministic. Materialized *Map values
// are opaque to Flatten: only plain mappings are descended into.
func Flatten(data map[string]any) map[string]any {
	flat := make(map[string]any, len(data))

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := data[k]
		if sub, ok := v.(map[string]any); ok {
			for fk, fv := range Flatten(sub) {
				flat[fk] = fv
			}
		}
		flat[k] = v
	}
	return flat
}
