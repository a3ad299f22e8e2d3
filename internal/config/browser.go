package config

import (
	"github.com/prowl-browser/prowl/internal/ui"
)

// Derived accessors over the configuration schema. Precedence is fixed:
// a site-specific value wins over the corresponding general value, and the
// general value wins over the hard-coded default (false for booleans, the
// empty list for lists).

// StartPage returns the page opened with each new window, based on
// `window.start-page`.
func (c *Config) StartPage() (string, bool) {
	return c.LookupStr("window.start-page")
}

// ConfigDir returns the directory substituted for CONFIG_DIR in string
// values, based on `general.config-dir`.
func (c *Config) ConfigDir() (string, bool) {
	return c.LookupRawStr("general.config-dir")
}

// ContentFilterPath returns the path to the content filter used in webviews,
// based on `general.content-filter`.
func (c *Config) ContentFilterPath() (string, bool) {
	return c.LookupStr("general.content-filter")
}

// SkipContentFilter reports whether content filtering should be skipped for
// uri, based on `sites."<host>".skip-content-filter`. With no filter path
// configured there is nothing to apply, so filtering is always skipped.
func (c *Config) SkipContentFilter(uri string) bool {
	if _, ok := c.ContentFilterPath(); !ok {
		return true
	}
	skip, ok := c.LookupSiteBool(uri, "skip-content-filter")
	return ok && skip
}

// UsePrivateBrowsing reports whether private browsing is enabled for uri,
// from `sites."<host>".private-browsing` falling back to
// `general.private-browsing`.
func (c *Config) UsePrivateBrowsing(uri string) bool {
	if value, ok := c.LookupSiteBool(uri, "private-browsing"); ok {
		return value
	}
	if mode, ok := c.LookupBool("general.private-browsing"); ok {
		return mode
	}
	return false
}

// UsePlugins reports whether browser plugins may run for uri, from
// `sites."<host>".allow-plugins` falling back to `general.allow-plugins`.
func (c *Config) UsePlugins(uri string) bool {
	if value, ok := c.LookupSiteBool(uri, "allow-plugins"); ok {
		return value
	}
	if mode, ok := c.LookupBool("general.allow-plugins"); ok {
		return mode
	}
	return false
}

// CommandSearchPaths returns the ordered directories searched for command
// scripts, based on `commands.search-paths`.
func (c *Config) CommandSearchPaths() []string {
	paths, ok := c.LookupStrSlice("commands.search-paths")
	if !ok {
		return nil
	}
	return paths
}

// CommandAliases returns the alias table from `commands.aliases`. Values go
// through placeholder substitution like any other configured string.
func (c *Config) CommandAliases() map[string]string {
	table, ok := c.doc.LookupTable("commands.aliases")
	if !ok {
		return nil
	}
	aliases := make(map[string]string, len(table))
	for name, value := range table {
		if target, ok := value.(string); ok {
			aliases[name] = c.substitute(target)
		}
	}
	return aliases
}

// CommandsDisabled returns the command names never resolvable, based on
// `commands.disabled`.
func (c *Config) CommandsDisabled() []string {
	disabled, ok := c.LookupStrSlice("commands.disabled")
	if !ok {
		return nil
	}
	return disabled
}

// CommandDisabled reports whether name appears in `commands.disabled`.
func (c *Config) CommandDisabled(name string) bool {
	for _, disabled := range c.CommandsDisabled() {
		if disabled == name {
			return true
		}
	}
	return false
}

// ResolvedCommandName maps name through `commands.aliases.<name>` when
// present. A resolved name listed in `commands.disabled` yields no command.
func (c *Config) ResolvedCommandName(name string) (string, bool) {
	resolved, ok := c.LookupStr(`commands.aliases."` + name + `"`)
	if !ok {
		resolved = name
	}
	if c.CommandDisabled(resolved) {
		return "", false
	}
	return resolved, true
}

// DefaultCommand returns the fallback command run when no other command
// matches, based on `commands.default`.
func (c *Config) DefaultCommand() (string, bool) {
	return c.LookupStr("commands.default")
}

// CommandMatchingPrefix maps the first character of text through
// `commands.on-text-change."<char>"` and, on a match, returns the full
// command text to run for it.
func (c *Config) CommandMatchingPrefix(text string) (string, bool) {
	if len(text) == 0 {
		return "", false
	}
	script, ok := c.LookupStr(`commands.on-text-change."` + text[:1] + `"`)
	if !ok {
		return "", false
	}
	return script + " " + text[1:], true
}

// OnURIEventCommands returns the command texts triggered by a navigation
// lifecycle event: `commands.on-load-uri`, `commands.on-request-uri`, or
// `commands.on-fail-uri`.
func (c *Config) OnURIEventCommands(event ui.URIEvent) []string {
	var key string
	switch event {
	case ui.URILoad:
		key = "commands.on-load-uri"
	case ui.URIRequest:
		key = "commands.on-request-uri"
	case ui.URIFail:
		key = "commands.on-fail-uri"
	default:
		return nil
	}
	commands, ok := c.LookupStrSlice(key)
	if !ok {
		return nil
	}
	return commands
}
