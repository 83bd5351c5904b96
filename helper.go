// File: appconfig/helper.go
package appconfig

import (
	"fmt"
	"strings"
)

// splitPath splits a dot-separated path and validates every segment.
func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}
	segments := strings.Split(path, ".")
	for _, segment := range segments {
		if !isValidKeySegment(segment) {
			return nil, fmt.Errorf("invalid path segment %q in path %q", segment, path)
		}
	}
	return segments, nil
}

// isValidKeySegment reports whether a single path segment is a valid bare
// key: ASCII letters, digits, underscores and dashes.
func isValidKeySegment(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !(isLetter || isDigit || r == '_' || r == '-') {
			return false
		}
	}
	return true
}

// setListValue sets a value in a nested List along the path segments,
// creating intermediate sequences as needed. A segment whose existing
// value is not a sequence is replaced by one.
//
// The lists along the path are rebuilt rather than written in place, so
// a reader holding a previously fetched List keeps a consistent view
// while a concurrent mutation is in flight.
func setListValue(list List, segments []string, value any) List {
	key := segments[0]

	out := make(List, len(list), len(list)+1)
	copy(out, list)

	for i, kv := range out {
		if kv.Key != key {
			continue
		}
		if len(segments) == 1 {
			out[i].Value = value
		} else {
			nested, _ := kv.Value.(List)
			out[i].Value = setListValue(nested, segments[1:], value)
		}
		return out
	}

	if len(segments) == 1 {
		return append(out, KV{Key: key, Value: value})
	}
	return append(out, KV{Key: key, Value: setListValue(nil, segments[1:], value)})
}

// removeListValue removes the value at the path segments, reporting
// whether anything was removed. Like setListValue, it rebuilds the
// lists along the path instead of mutating them.
func removeListValue(list List, segments []string) (List, bool) {
	key := segments[0]

	for i, kv := range list {
		if kv.Key != key {
			continue
		}
		if len(segments) == 1 {
			out := make(List, 0, len(list)-1)
			out = append(out, list[:i]...)
			out = append(out, list[i+1:]...)
			return out, true
		}
		nested, ok := kv.Value.(List)
		if !ok {
			return list, false
		}
		updated, removed := removeListValue(nested, segments[1:])
		if !removed {
			return list, false
		}
		out := make(List, len(list))
		copy(out, list)
		out[i].Value = updated
		return out, true
	}
	return list, false
}
