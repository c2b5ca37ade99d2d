package attrmap

import (
	"time"
)

// Typed accessors resolve through Get, so the flattened fallback applies:
// a nested key like metadata.system.height is reachable as just "height".
// All accessors return defaultVal if the name resolves nowhere or the value
// cannot be converted to the requested type.

// String returns the string value for name, or defaultVal if absent or not
// a string.
func (m *Map) String(name, defaultVal string) string {
	v, ok := m.Lookup(name)
	if !ok {
		return defaultVal
	}
	if s, ok := v.(string); ok {
		return s
	}
	return defaultVal
}

// Bool returns the boolean value for name, or defaultVal if absent or not
// a bool.
func (m *Map) Bool(name string, defaultVal bool) bool {
	v, ok := m.Lookup(name)
	if !ok {
		return defaultVal
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultVal
}

// Int returns the integer value for name, or defaultVal if absent or not
// convertible.
//
// Accepts:
//   - int: used directly
//   - int64: converted to int
//   - float64: converted to int, only if there is no fractional part
func (m *Map) Int(name string, defaultVal int) int {
	v, ok := m.Lookup(name)
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		if val == float64(int(val)) {
			return int(val)
		}
	}
	return defaultVal
}

// Float returns the float64 value for name, or defaultVal if absent or not
// convertible.
//
// Accepts:
//   - float64: used directly
//   - int: converted to float64
//   - int64: converted to float64
func (m *Map) Float(name string, defaultVal float64) float64 {
	v, ok := m.Lookup(name)
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case int64:
		return float64(val)
	}
	return defaultVal
}

// Duration returns the duration value for name, or defaultVal if absent or
// invalid.
//
// Accepts:
//   - string: parsed with time.ParseDuration
//   - int: interpreted as seconds
//   - int64: interpreted as seconds
//   - float64: interpreted as seconds
//   - time.Duration: used directly
func (m *Map) Duration(name string, defaultVal time.Duration) time.Duration {
	v, ok := m.Lookup(name)
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case string:
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	case float64:
		return time.Duration(val * float64(time.Second))
	case int:
		return time.Duration(val) * time.Second
	case int64:
		return time.Duration(val) * time.Second
	case time.Duration:
		return val
	}
	return defaultVal
}

// StringSlice returns the string slice for name, or defaultVal if absent
// or not convertible.
//
// Accepts:
//   - []string: used directly
//   - []any: each element converted to string; any non-string element
//     falls back to defaultVal
func (m *Map) StringSlice(name string, defaultVal []string) []string {
	v, ok := m.Lookup(name)
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case []string:
		return val
	case []any:
		result := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return defaultVal
			}
			result = append(result, s)
		}
		return result
	}
	return defaultVal
}

// Any returns the raw resolved value for name, or defaultVal if absent.
func (m *Map) Any(name string, defaultVal any) any {
	v, ok := m.Lookup(name)
	if !ok {
		return defaultVal
	}
	return v
}

// Has reports whether name resolves at any depth.
func (m *Map) Has(name string) bool {
	_, ok := m.Lookup(name)
	return ok
}
