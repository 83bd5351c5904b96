// File: appconfig/fetch.go
package appconfig

import (
	"fmt"
	"strings"
)

// Fetch looks up a dot-separated path in src, applying environment
// substitution to the final value. Intermediate segments must resolve to
// key/value sequences; a segment that is absent, or whose value is not a
// sequence, makes the whole lookup report not found.
//
// The result is always a literal, never an environment marker. The OS
// environment is re-read on every call; nothing is cached.
func Fetch(src Source, path string) (any, bool) {
	if src == nil || path == "" {
		return nil, false
	}
	return fetchPath(src, strings.Split(path, "."))
}

func fetchPath(src Source, segments []string) (any, bool) {
	raw, ok := src.Lookup(segments[0])
	if !ok {
		return nil, false
	}
	if len(segments) == 1 {
		return resolve(raw)
	}
	nested, ok := asSource(raw)
	if !ok {
		// Traversing through a non-sequence value is indistinguishable
		// from a missing key.
		return nil, false
	}
	return fetchPath(nested, segments[1:])
}

// MustFetch is like Fetch but panics with a *MissingError when the path
// cannot be resolved. Intended for configuration the application cannot
// run without.
func MustFetch(src Source, path string) any {
	v, ok := Fetch(src, path)
	if !ok {
		panic(&MissingError{Source: sourceName(src), Path: path})
	}
	return v
}

// sourceName describes a source for diagnostics. Bound applications are
// named by their identifier, everything else by its type.
func sourceName(src Source) string {
	if a, ok := src.(*App); ok {
		return a.name
	}
	return fmt.Sprintf("%T", src)
}
