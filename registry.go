// File: appconfig/registry.go
package appconfig

import "sync"

// Registry is a process-wide store of per-application configuration
// lists. It is safe for concurrent use; the resolver only ever reads
// from it, so a lookup observes whatever values are current at call
// time.
type Registry struct {
	mu   sync.RWMutex
	apps map[string]List
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		apps: make(map[string]List),
	}
}

// Default is the registry used by the package-level helpers.
var Default = NewRegistry()

// SetApp replaces the stored configuration for app with values. The
// list is copied, so later Set and Unset calls never touch the
// caller's slice.
func (r *Registry) SetApp(app string, values List) error {
	if app == "" {
		return ErrNoApp
	}

	stored := make(List, len(values))
	copy(stored, values)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.apps[app] = stored
	return nil
}

// Set stores value under a dot-separated path for app, creating
// intermediate sequences as needed. Each path segment must be a valid
// bare key.
func (r *Registry) Set(app, path string, value any) error {
	if app == "" {
		return ErrNoApp
	}
	segments, err := splitPath(path)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.apps[app] = setListValue(r.apps[app], segments, value)
	return nil
}

// Unset removes the value stored under path for app, including any
// nested children. It reports whether a value was removed.
func (r *Registry) Unset(app, path string) (bool, error) {
	if app == "" {
		return false, ErrNoApp
	}
	segments, err := splitPath(path)
	if err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	updated, removed := removeListValue(r.apps[app], segments)
	if removed {
		r.apps[app] = updated
	}
	return removed, nil
}

// DeleteApp drops all configuration stored for app.
func (r *Registry) DeleteApp(app string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.apps, app)
}

// lookup reads a single top-level key from an application's list.
func (r *Registry) lookup(app, key string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.apps[app].Lookup(key)
}

// snapshot returns the current list stored for app.
func (r *Registry) snapshot(app string) List {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.apps[app]
}

// SetApp replaces the configuration for app in the default registry.
func SetApp(app string, values List) error {
	return Default.SetApp(app, values)
}

// Set stores value under path for app in the default registry.
func Set(app, path string, value any) error {
	return Default.Set(app, path, value)
}

// Unset removes the value under path for app in the default registry.
func Unset(app, path string) (bool, error) {
	return Default.Unset(app, path)
}

// DeleteApp drops all configuration for app in the default registry.
func DeleteApp(app string) {
	Default.DeleteApp(app)
}

// LoadFile loads a configuration file for app into the default registry.
func LoadFile(app, path string) error {
	return Default.LoadFile(app, path)
}
