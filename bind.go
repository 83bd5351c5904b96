// File: appconfig/bind.go
package appconfig

import "fmt"

// App is a Source bound to a fixed application identifier in a Registry.
// Consuming packages declare the identifier once and use the bound forms
// of every lookup.
type App struct {
	name string
	reg  *Registry
}

// Bind returns an App bound to name in the default registry. It returns
// ErrNoApp when name is empty.
func Bind(name string) (*App, error) {
	return Default.Bind(name)
}

// MustBind is like Bind but panics on error.
func MustBind(name string) *App {
	a, err := Bind(name)
	if err != nil {
		panic(fmt.Sprintf("appconfig: bind failed: %v", err))
	}
	return a
}

// Bind returns an App bound to name in r. It returns ErrNoApp when name
// is empty.
func (r *Registry) Bind(name string) (*App, error) {
	if name == "" {
		return nil, ErrNoApp
	}
	return &App{name: name, reg: r}, nil
}

// Name returns the bound application identifier.
func (a *App) Name() string {
	return a.name
}

// Lookup implements Source against the bound application's configuration.
func (a *App) Lookup(key string) (any, bool) {
	return a.reg.lookup(a.name, key)
}

// Fetch resolves path in the bound application's configuration.
func (a *App) Fetch(path string) (any, bool) {
	return Fetch(a, path)
}

// MustFetch is like Fetch but panics with a *MissingError when the path
// cannot be resolved.
func (a *App) MustFetch(path string) any {
	return MustFetch(a, path)
}

// Get returns the resolved value at path, or def when unresolvable.
func (a *App) Get(path string, def any) any {
	return Get(a, path, def)
}

// String returns the resolved value at path as a string.
func (a *App) String(path string, def string) string {
	return String(a, path, def)
}

// Int64 returns the resolved value at path as an int64.
func (a *App) Int64(path string, def int64) int64 {
	return Int64(a, path, def)
}

// Float64 returns the resolved value at path as a float64.
func (a *App) Float64(path string, def float64) float64 {
	return Float64(a, path, def)
}

// Bool returns the resolved value at path as a bool.
func (a *App) Bool(path string, def bool) bool {
	return Bool(a, path, def)
}

// Scan decodes the resolved subtree at path into target.
func (a *App) Scan(path string, target any) error {
	return Scan(a, path, target)
}
