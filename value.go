// File: appconfig/value.go
package appconfig

import "os"

// EnvRef marks a stored value as sourced from an OS environment variable.
// The variable is read at lookup time; if it is unset the key is treated
// as absent.
type EnvRef struct {
	Var string
}

// EnvRefDefault is an EnvRef with a fallback literal used when the
// variable is unset. The fallback keeps whatever type it was stored with.
type EnvRefDefault struct {
	Var     string
	Default any
}

// Env returns a marker that resolves to the value of the environment
// variable name.
func Env(name string) EnvRef {
	return EnvRef{Var: name}
}

// EnvDefault returns a marker that resolves to the value of the
// environment variable name, or to fallback when the variable is unset.
func EnvDefault(name string, fallback any) EnvRefDefault {
	return EnvRefDefault{Var: name, Default: fallback}
}

// resolve applies environment substitution to a raw stored value.
// A set variable always wins over a stored fallback, regardless of the
// fallback's type. Values that are not environment markers pass through
// unchanged.
func resolve(raw any) (any, bool) {
	switch v := raw.(type) {
	case EnvRef:
		if s, ok := os.LookupEnv(v.Var); ok {
			return s, true
		}
		return nil, false
	case EnvRefDefault:
		if s, ok := os.LookupEnv(v.Var); ok {
			return s, true
		}
		return v.Default, true
	default:
		return raw, true
	}
}
