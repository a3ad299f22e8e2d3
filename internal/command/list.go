package command

import (
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// List enumerates the command names resolvable across the search paths:
// every `<dir>/<name>.<suffix>` found, deduplicated and sorted. Unreadable
// directories are skipped, matching resolution behavior where a missing
// directory simply never matches.
func List(searchPaths []string, suffix string) []string {
	seen := make(map[string]struct{})
	for _, dir := range searchPaths {
		matches, err := doublestar.Glob(os.DirFS(dir), "*."+suffix)
		if err != nil {
			continue
		}
		for _, match := range matches {
			name := strings.TrimSuffix(match, "."+suffix)
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
