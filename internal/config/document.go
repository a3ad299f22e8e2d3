// Package config implements the layered configuration resolver: a TOML
// document addressed by dot-separated key paths, with per-site overrides
// under the reserved `sites` subtree, placeholder substitution in string
// values, and all-or-nothing reload.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Document is an immutable snapshot of a parsed configuration file. A reload
// builds a whole new Document before it replaces the previous one, so readers
// never observe a partially-updated tree.
type Document struct {
	tree map[string]interface{}
}

// ParseDocument reads and parses a TOML file.
func ParseDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseDocumentString(string(data))
}

// ParseDocumentString parses a TOML document from a string literal.
func ParseDocumentString(raw string) (*Document, error) {
	tree := make(map[string]interface{})
	if err := toml.Unmarshal([]byte(raw), &tree); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &Document{tree: tree}, nil
}

// Lookup traverses the tree by a dot-separated key path. Segments may be
// double-quoted so host names containing dots stay single segments, e.g.
// `sites."example.com".allow-plugins`. A missing or non-table intermediate
// segment yields (nil, false); Lookup never panics.
func (d *Document) Lookup(key string) (interface{}, bool) {
	if d == nil {
		return nil, false
	}
	segments := splitKey(key)
	if len(segments) == 0 {
		return nil, false
	}

	var current interface{} = d.tree
	for _, segment := range segments {
		table, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = table[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// LookupStr returns the string at key without any substitution.
func (d *Document) LookupStr(key string) (string, bool) {
	value, ok := d.Lookup(key)
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

// LookupBool returns the boolean at key.
func (d *Document) LookupBool(key string) (bool, bool) {
	value, ok := d.Lookup(key)
	if !ok {
		return false, false
	}
	b, ok := value.(bool)
	return b, ok
}

// LookupStrSlice returns the list of strings at key. A list holding any
// non-string element is treated as absent rather than partially converted.
func (d *Document) LookupStrSlice(key string) ([]string, bool) {
	value, ok := d.Lookup(key)
	if !ok {
		return nil, false
	}
	items, ok := value.([]interface{})
	if !ok {
		return nil, false
	}
	result := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		result = append(result, s)
	}
	return result, true
}

// LookupTable returns the nested table at key.
func (d *Document) LookupTable(key string) (map[string]interface{}, bool) {
	value, ok := d.Lookup(key)
	if !ok {
		return nil, false
	}
	table, ok := value.(map[string]interface{})
	return table, ok
}

// splitKey splits a dotted key path into segments, honoring double quotes so
// a quoted segment may itself contain dots. Quotes are stripped from the
// returned segments.
func splitKey(key string) []string {
	var segments []string
	var current strings.Builder
	quoted := false

	for _, r := range key {
		switch {
		case r == '"':
			quoted = !quoted
		case r == '.' && !quoted:
			segments = append(segments, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	segments = append(segments, current.String())

	for _, segment := range segments {
		if segment == "" {
			return nil
		}
	}
	return segments
}
