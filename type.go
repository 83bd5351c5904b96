// File: appconfig/type.go
package appconfig

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Get returns the resolved value at path, or def when the path cannot be
// resolved. def is returned verbatim, whatever its type.
func Get(src Source, path string, def any) any {
	if v, ok := Fetch(src, path); ok {
		return v
	}
	return def
}

// String returns the resolved value at path as a string. Strings pass
// through unchanged; numbers and booleans are formatted. Anything else,
// or an unresolvable path, yields def.
func String(src Source, path string, def string) string {
	val, ok := Fetch(src, path)
	if !ok || val == nil {
		return def
	}

	switch v := val.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case int, int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(val).Int(), 10)
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(val).Uint(), 10)
	case float32, float64:
		return strconv.FormatFloat(reflect.ValueOf(val).Float(), 'f', -1, 64)
	default:
		return def
	}
}

// Int64 returns the resolved value at path as an int64. An integer
// literal is returned unchanged; a string is parsed as a base-10 integer
// prefix, with trailing non-numeric characters ignored. Any other type,
// an unparseable string, or an unresolvable path yields def. def itself
// is never coerced.
func Int64(src Source, path string, def int64) int64 {
	val, ok := Fetch(src, path)
	if !ok || val == nil {
		return def
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		if u > math.MaxInt64 {
			return def
		}
		return int64(u)
	case reflect.String:
		if n, ok := parseLeadingInt(v.String()); ok {
			return n
		}
	}
	return def
}

// Float64 returns the resolved value at path as a float64. A float
// literal is returned unchanged; a string is parsed as a numeric prefix
// with an optional fractional part. Any other type, an unparseable
// string, or an unresolvable path yields def.
func Float64(src Source, path string, def float64) float64 {
	val, ok := Fetch(src, path)
	if !ok || val == nil {
		return def
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.String:
		if f, ok := parseLeadingFloat(v.String()); ok {
			return f
		}
	}
	return def
}

// Bool returns the resolved value at path as a bool. A bool literal is
// returned unchanged; a string is matched case-insensitively against
// {0,false,no,off,disabled} and {1,true,yes,on,enabled}. Any other value
// or an unresolvable path yields def.
func Bool(src Source, path string, def bool) bool {
	val, ok := Fetch(src, path)
	if !ok || val == nil {
		return def
	}

	switch v := val.(type) {
	case bool:
		return v
	case string:
		if b, ok := boolSynonyms[strings.ToLower(v)]; ok {
			return b
		}
	}
	return def
}

var boolSynonyms = map[string]bool{
	"0": false, "false": false, "no": false, "off": false, "disabled": false,
	"1": true, "true": true, "yes": true, "on": true, "enabled": true,
}

// parseLeadingInt parses a base-10 integer prefix with an optional sign,
// ignoring any trailing non-numeric characters ("100ms" parses as 100).
func parseLeadingInt(s string) (int64, bool) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:j], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseLeadingFloat parses a numeric prefix with an optional fractional
// part. The decimal point is only consumed when digits follow it, so
// "1.x" parses as 1.
func parseLeadingFloat(s string) (float64, bool) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0, false
	}
	end := j
	if j < len(s) && s[j] == '.' {
		k := j + 1
		for k < len(s) && s[k] >= '0' && s[k] <= '9' {
			k++
		}
		if k > j+1 {
			end = k
		}
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
