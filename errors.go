// File: appconfig/errors.go
package appconfig

import (
	"errors"
	"fmt"
)

// ErrNoApp is returned when an operation that needs an application
// identifier is given an empty one. Binding without an identifier is a
// programming error, reported at bind time rather than at first lookup.
var ErrNoApp = errors.New("appconfig: application identifier cannot be empty")

// ErrFileNotFound is returned by LoadFile when the configuration file
// does not exist.
var ErrFileNotFound = errors.New("appconfig: configuration file not found")

// MissingError reports a required configuration value that could not be
// resolved. It is the panic value of the Must* lookup forms.
type MissingError struct {
	Source string
	Path   string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("appconfig: required value %q not found in source %q", e.Path, e.Source)
}
