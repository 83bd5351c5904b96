// File: appconfig/source.go
package appconfig

// KV is a single key/value pair in a List.
type KV struct {
	Key   string
	Value any
}

// List is an explicit ordered sequence of key/value pairs with unique
// keys. It can be used directly as a Source and as a nested value inside
// another Source.
type List []KV

// Source is a read-only key/value registry consulted by a lookup.
// The resolver never mutates a Source.
type Source interface {
	// Lookup returns the raw value stored under a single key.
	Lookup(key string) (any, bool)
}

// Lookup returns the raw value stored under key. The first matching pair
// wins.
func (l List) Lookup(key string) (any, bool) {
	for _, kv := range l {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return nil, false
}

// Map adapts a plain map, such as a decoded configuration file section,
// to a Source.
type Map map[string]any

// Lookup returns the raw value stored under key.
func (m Map) Lookup(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// asSource converts a raw stored value into a Source for path traversal.
// Only key/value sequences qualify; anything else (including environment
// markers) fails, which the caller reports as not found.
func asSource(raw any) (Source, bool) {
	switch v := raw.(type) {
	case List:
		return v, true
	case []KV:
		return List(v), true
	case Map:
		return v, true
	case map[string]any:
		return Map(v), true
	case Source:
		return v, true
	default:
		return nil, false
	}
}
