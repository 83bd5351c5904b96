// File: appconfig/doc.go

// Package appconfig resolves configuration values for an application
// from an in-process registry or an explicit key/value list,
// substituting OS environment variables for values marked as externally
// sourced. It lets configuration parameters be overridden at deployment
// time without recompiling.
//
// Values are addressed by dot-separated paths ("db.port"). A stored
// value is either a literal, a nested key/value sequence, or an
// environment marker created with Env or EnvDefault:
//
//	appconfig.SetApp("myapp", appconfig.List{
//	    {Key: "db", Value: appconfig.List{
//	        {Key: "host", Value: "localhost"},
//	        {Key: "port", Value: appconfig.EnvDefault("DB_PORT", "5432")},
//	    }},
//	})
//
//	app := appconfig.MustBind("myapp")
//	port := app.Int64("db.port", 5432)
//
// A set environment variable always wins over a stored fallback, and
// the variable is re-read on every lookup; nothing is cached or
// watched.
//
// The typed getters never fail: a value that cannot be coerced falls
// through to the caller-supplied default, untouched. MustFetch is the
// only raising entry point and panics with *MissingError when a
// required value is absent.
//
// The registry can also be populated from a TOML, JSON or YAML file
// with LoadFile, where strings of the form "${VAR}" and
// "${VAR:-fallback}" decode to environment markers, and a resolved
// subtree can be decoded into a struct with Scan.
package appconfig
