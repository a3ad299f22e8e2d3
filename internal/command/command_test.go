package command

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name+".js")
	require.NoError(t, os.WriteFile(path, []byte("function run() {}\n"), 0o644))
	return path
}

func TestParseAliasResolution(t *testing.T) {
	dir := t.TempDir()
	openPath := writeScript(t, dir, "open")

	cmd, ok := Parse("o https://example.com", []string{dir}, nil, map[string]string{"o": "open"}, "js")
	require.True(t, ok)
	assert.Equal(t, openPath, cmd.Path)
	assert.Equal(t, "https://example.com", cmd.Arguments)
}

func TestParseDisabledNeverMatches(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "open")

	// Disabled directly.
	_, ok := Parse("open anything", []string{dir}, []string{"open"}, nil, "js")
	assert.False(t, ok)

	// Disabled via alias: the check applies to the resolved name.
	_, ok = Parse("o anything", []string{dir}, []string{"open"}, map[string]string{"o": "open"}, "js")
	assert.False(t, ok)
}

func TestParseSearchPathOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	firstPath := writeScript(t, first, "open")
	writeScript(t, second, "open")

	cmd, ok := Parse("open", []string{first, second}, nil, nil, "js")
	require.True(t, ok)
	assert.Equal(t, firstPath, cmd.Path)

	// Reversing the order flips the winner.
	cmd, ok = Parse("open", []string{second, first}, nil, nil, "js")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(second, "open.js"), cmd.Path)
}

func TestParseNoMatch(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		paths []string
	}{
		{"no search paths", "bogus", nil},
		{"no matching file", "bogus", []string{t.TempDir()}},
		{"missing directory", "bogus", []string{"/nonexistent/scripts"}},
		{"empty text", "", []string{t.TempDir()}},
		{"whitespace only", "   ", []string{t.TempDir()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Parse(tt.text, tt.paths, nil, nil, "js")
			assert.False(t, ok)
		})
	}
}

func TestParseArgumentsVerbatim(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "open")

	cmd, ok := Parse("open  two  spaces ", []string{dir}, nil, nil, "js")
	require.True(t, ok)
	assert.Equal(t, "two  spaces ", cmd.Arguments)

	cmd, ok = Parse("open", []string{dir}, nil, nil, "js")
	require.True(t, ok)
	assert.Equal(t, "", cmd.Arguments)
}

func TestParseIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "open.js"), 0o755))

	_, ok := Parse("open", []string{dir}, nil, nil, "js")
	assert.False(t, ok)
}

func TestCommandOpen(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "open")

	cmd, ok := Parse("open", []string{dir}, nil, nil, "js")
	require.True(t, ok)

	file, err := cmd.Open()
	require.NoError(t, err)
	file.Close()

	// Resolution success does not guarantee the file is still readable.
	require.NoError(t, os.Remove(cmd.Path))
	_, err = cmd.Open()
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeScript(t, first, "open")
	writeScript(t, first, "close")
	writeScript(t, second, "open")
	writeScript(t, second, "reload")
	require.NoError(t, os.WriteFile(filepath.Join(first, "notes.txt"), []byte("x"), 0o644))

	names := List([]string{first, second, "/nonexistent"}, "js")
	assert.Equal(t, []string{"close", "open", "reload"}, names)
}
