// Package command maps raw command-bar text to a concrete script file plus
// argument text, honoring aliases, a disabled-command list, and an ordered
// list of search directories.
package command

import (
	"os"
	"path/filepath"
	"strings"
)

// Command is the result of one resolution attempt: the script file location
// and the remainder of the input after the command name. Arguments are kept
// unparsed; tokenization belongs to the script runtime.
type Command struct {
	Path      string
	Arguments string
}

// Parse resolves text against the given search paths. The text is split at
// the first whitespace into a name and the argument remainder; the name is
// mapped through aliases (identity when absent), rejected if disabled, and
// matched against `<dir>/<name>.<suffix>` in search-path order. The first
// existing file wins. The second return value is false when nothing matched.
func Parse(text string, searchPaths []string, disabled []string, aliases map[string]string, suffix string) (Command, bool) {
	name, rest := splitText(text)
	if name == "" {
		return Command{}, false
	}

	if target, ok := aliases[name]; ok {
		name = target
	}
	for _, d := range disabled {
		if d == name {
			return Command{}, false
		}
	}

	filename := name + "." + suffix
	for _, dir := range searchPaths {
		path := filepath.Join(dir, filename)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return Command{Path: path, Arguments: rest}, true
		}
	}
	return Command{}, false
}

// Open lazily opens the resolved script file. An I/O failure here is
// non-fatal to resolution: the command exists but is currently unreadable,
// and the caller logs it.
func (c Command) Open() (*os.File, error) {
	return os.Open(c.Path)
}

// splitText cuts text at the first whitespace run. The remainder is returned
// verbatim apart from the separating whitespace.
func splitText(text string) (name, rest string) {
	text = strings.TrimLeft(text, " \t")
	idx := strings.IndexAny(text, " \t")
	if idx < 0 {
		return text, ""
	}
	return text[:idx], strings.TrimLeft(text[idx:], " \t")
}
