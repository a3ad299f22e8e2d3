package config

import (
	"net/url"
	"strings"

	"github.com/prowl-browser/prowl/internal/logging"
	"go.uber.org/zap"
)

// PlaceholderConfigDir is the reserved token replaced in string values with
// the configured `general.config-dir` at lookup time.
const PlaceholderConfigDir = "CONFIG_DIR"

// Config holds the current configuration document and resolves typed,
// substituted, and site-scoped lookups against it. Load swaps in a fresh
// document only after a successful parse, so a failed reload leaves the
// previous configuration in force.
//
// Config is not internally synchronized: dispatch is single-threaded and
// callback-driven, so a reload cannot race an in-flight lookup.
type Config struct {
	doc *Document
	log *logging.Logger
}

// New parses the document at path and returns a Config holding it. A parse
// failure is fatal to construction.
func New(path string, log *logging.Logger) (*Config, error) {
	if log == nil {
		log = logging.NewNop()
	}
	doc, err := ParseDocument(path)
	if err != nil {
		return nil, err
	}
	return &Config{doc: doc, log: log}, nil
}

// NewFromString builds a Config from a raw TOML literal. Used by tests and
// front ends with embedded defaults.
func NewFromString(raw string, log *logging.Logger) (*Config, error) {
	if log == nil {
		log = logging.NewNop()
	}
	doc, err := ParseDocumentString(raw)
	if err != nil {
		return nil, err
	}
	return &Config{doc: doc, log: log}, nil
}

// Load re-parses the document at path and reports success. On failure the
// previously held document remains in effect.
func (c *Config) Load(path string) bool {
	doc, err := ParseDocument(path)
	if err != nil {
		c.log.Warn("config reload failed, keeping previous document",
			zap.String("path", path), zap.Error(err))
		return false
	}
	c.doc = doc
	c.log.Info("config reloaded", zap.String("path", path))
	return true
}

// Lookup traverses the current document by a dot-separated key path without
// substituting variables.
func (c *Config) Lookup(key string) (interface{}, bool) {
	return c.doc.Lookup(key)
}

// LookupStr returns the string at key, replacing the CONFIG_DIR placeholder
// with the configured directory where possible.
func (c *Config) LookupStr(key string) (string, bool) {
	raw, ok := c.doc.LookupStr(key)
	if !ok {
		return "", false
	}
	return c.substitute(raw), true
}

// LookupRawStr returns the string at key without any substitution. The
// substitution source itself is fetched this way to avoid recursion.
func (c *Config) LookupRawStr(key string) (string, bool) {
	return c.doc.LookupStr(key)
}

// LookupBool returns the boolean at key.
func (c *Config) LookupBool(key string) (bool, bool) {
	return c.doc.LookupBool(key)
}

// LookupStrSlice returns the list of strings at key, substituting the
// CONFIG_DIR placeholder in each element.
func (c *Config) LookupStrSlice(key string) ([]string, bool) {
	values, ok := c.doc.LookupStrSlice(key)
	if !ok {
		return nil, false
	}
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = c.substitute(v)
	}
	return result, true
}

// LookupSiteBool returns the boolean at `sites."<host>".<key>` for the host
// component of uri.
func (c *Config) LookupSiteBool(uri, key string) (bool, bool) {
	siteKey, ok := siteKey(uri, key)
	if !ok {
		return false, false
	}
	return c.doc.LookupBool(siteKey)
}

// LookupSiteStr returns the substituted string at `sites."<host>".<key>`.
func (c *Config) LookupSiteStr(uri, key string) (string, bool) {
	siteKey, ok := siteKey(uri, key)
	if !ok {
		return "", false
	}
	raw, ok := c.doc.LookupStr(siteKey)
	if !ok {
		return "", false
	}
	return c.substitute(raw), true
}

// LookupSiteStrSlice returns the list of strings at `sites."<host>".<key>`.
func (c *Config) LookupSiteStrSlice(uri, key string) ([]string, bool) {
	siteKey, ok := siteKey(uri, key)
	if !ok {
		return nil, false
	}
	values, ok := c.doc.LookupStrSlice(siteKey)
	if !ok {
		return nil, false
	}
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = c.substitute(v)
	}
	return result, true
}

// substitute replaces the CONFIG_DIR placeholder when a substitution source
// is configured; values are returned untouched otherwise.
func (c *Config) substitute(value string) string {
	if !strings.Contains(value, PlaceholderConfigDir) {
		return value
	}
	dir, ok := c.ConfigDir()
	if !ok {
		return value
	}
	return strings.ReplaceAll(value, PlaceholderConfigDir, dir)
}

// siteKey derives the host of uri and formats the per-site override key. The
// host segment is quoted so hosts containing dots stay one path segment.
func siteKey(uri, key string) (string, bool) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return "", false
	}
	host := parsed.Hostname()
	if host == "" {
		return "", false
	}
	return `sites."` + host + `".` + key, true
}
