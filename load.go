// File: appconfig/load.go
package appconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a TOML, JSON or YAML file and stores its contents as
// the configuration for app, replacing whatever was stored before. The
// format is detected from the file extension, falling back to content
// probing.
//
// String values of the exact form "${VAR}" or "${VAR:-fallback}" decode
// to environment markers; "$${...}" escapes to a literal "${...}".
func (r *Registry) LoadFile(app, path string) error {
	if app == "" {
		return ErrNoApp
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrFileNotFound
		}
		return fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
		if format == "" {
			return fmt.Errorf("unable to determine config format for file %q", path)
		}
	}

	raw := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse TOML config file %q: %w", path, err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&raw); err != nil {
			return fmt.Errorf("failed to parse JSON config file %q: %w", path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse YAML config file %q: %w", path, err)
		}
	}

	values := listFromMap(raw)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.apps[app] = values
	return nil
}

// listFromMap converts a decoded file tree into an ordered List,
// recognizing environment markers in string values. Keys are sorted so
// repeated loads produce identical lists.
func listFromMap(m map[string]any) List {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	list := make(List, 0, len(m))
	for _, k := range keys {
		list = append(list, KV{Key: k, Value: decodeFileValue(m[k])})
	}
	return list
}

func decodeFileValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return listFromMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = decodeFileValue(e)
		}
		return out
	case string:
		return decodeEnvMarker(t)
	default:
		return v
	}
}

// decodeEnvMarker turns "${VAR}" and "${VAR:-fallback}" strings into
// environment markers. Every other string, including malformed markers,
// stays a literal.
func decodeEnvMarker(s string) any {
	if strings.HasPrefix(s, "$${") && strings.HasSuffix(s, "}") {
		return s[1:]
	}
	if !strings.HasPrefix(s, "${") || !strings.HasSuffix(s, "}") {
		return s
	}
	body := s[2 : len(s)-1]
	if name, fallback, found := strings.Cut(body, ":-"); found {
		if name == "" {
			return s
		}
		return EnvDefault(name, fallback)
	}
	if body == "" {
		return s
	}
	return Env(body)
}

// detectFileFormat determines format from the file extension.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing.
// YAML accepts almost any scalar document, so it is probed last.
func detectFormatFromContent(data []byte) string {
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	tomlTest := make(map[string]any)
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	return ""
}
