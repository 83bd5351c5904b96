// File: appconfig/scan.go
package appconfig

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Scan resolves the subtree at path and decodes it into target, which
// must be a non-nil pointer to a struct or map. Environment markers in
// the subtree are substituted first; markers whose variable is unset
// with no fallback are omitted. Fields are matched through the "toml"
// tag. An empty path scans the whole source; a path that does not exist
// decodes an empty section, leaving target untouched.
func Scan(src Source, path string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be a non-nil pointer, got %T", target)
	}

	var node any
	if path == "" {
		node = src
	} else if v, ok := Fetch(src, path); ok {
		node = v
	} else {
		node = map[string]any{}
	}

	section, ok := resolveTree(node)
	if !ok {
		return fmt.Errorf("configuration path %q does not refer to a section, but to type %T", path, node)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(section); err != nil {
		return fmt.Errorf("failed to scan section %q into %T: %w", path, target, err)
	}

	return nil
}

// resolveTree flattens a sequence value into a plain map with
// environment substitution applied to every leaf.
func resolveTree(node any) (map[string]any, bool) {
	switch v := node.(type) {
	case List:
		out := make(map[string]any, len(v))
		for _, kv := range v {
			if val, ok := resolveLeaf(kv.Value); ok {
				out[kv.Key] = val
			}
		}
		return out, true
	case []KV:
		return resolveTree(List(v))
	case Map:
		return resolveTree(map[string]any(v))
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, raw := range v {
			if val, ok := resolveLeaf(raw); ok {
				out[k] = val
			}
		}
		return out, true
	case *App:
		return resolveTree(v.reg.snapshot(v.name))
	default:
		return nil, false
	}
}

func resolveLeaf(raw any) (any, bool) {
	switch v := raw.(type) {
	case List, []KV, Map, map[string]any:
		m, _ := resolveTree(v)
		return m, true
	case []any:
		out := make([]any, 0, len(v))
		for _, e := range v {
			if r, ok := resolveLeaf(e); ok {
				out = append(out, r)
			}
		}
		return out, true
	default:
		return resolve(raw)
	}
}
