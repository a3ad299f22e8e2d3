package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `
[window]
start-page = "https://example.com/start"

[general]
config-dir = "/home/user/.config/prowl"
private-browsing = false

[commands]
search-paths = ["/scripts", "/more-scripts"]
disabled = ["harmful"]

[commands.aliases]
o = "open"

[sites."example.com"]
private-browsing = true
allow-plugins = true
`

func TestDocumentLookup(t *testing.T) {
	doc, err := ParseDocumentString(sampleDocument)
	require.NoError(t, err)

	tests := []struct {
		name  string
		key   string
		want  interface{}
		found bool
	}{
		{"string value", "window.start-page", "https://example.com/start", true},
		{"bool value", "general.private-browsing", false, true},
		{"nested alias", "commands.aliases.o", "open", true},
		{"quoted host segment", `sites."example.com".private-browsing`, true, true},
		{"missing key", "window.missing", nil, false},
		{"missing table", "nothing.at-all", nil, false},
		{"traversal through leaf", "window.start-page.deeper", nil, false},
		{"empty key", "", nil, false},
		{"trailing dot", "window.", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := doc.Lookup(tt.key)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, value)
			}
		})
	}
}

func TestDocumentTypedLookups(t *testing.T) {
	doc, err := ParseDocumentString(sampleDocument)
	require.NoError(t, err)

	s, ok := doc.LookupStr("window.start-page")
	require.True(t, ok)
	assert.Equal(t, "https://example.com/start", s)

	// Type mismatches are absent, not errors.
	_, ok = doc.LookupStr("general.private-browsing")
	assert.False(t, ok)
	_, ok = doc.LookupBool("window.start-page")
	assert.False(t, ok)
	_, ok = doc.LookupStrSlice("window.start-page")
	assert.False(t, ok)

	b, ok := doc.LookupBool(`sites."example.com".allow-plugins`)
	require.True(t, ok)
	assert.True(t, b)

	paths, ok := doc.LookupStrSlice("commands.search-paths")
	require.True(t, ok)
	assert.Equal(t, []string{"/scripts", "/more-scripts"}, paths)

	table, ok := doc.LookupTable("commands.aliases")
	require.True(t, ok)
	assert.Equal(t, "open", table["o"])
}

func TestDocumentMixedListAbsent(t *testing.T) {
	doc, err := ParseDocumentString(`values = ["a", 2, "c"]`)
	require.NoError(t, err)

	_, ok := doc.LookupStrSlice("values")
	assert.False(t, ok)
}

func TestParseDocumentStringRejectsBadInput(t *testing.T) {
	_, err := ParseDocumentString("not [ valid { toml")
	assert.Error(t, err)
}

func TestParseDocumentMissingFile(t *testing.T) {
	_, err := ParseDocument("/nonexistent/prowl.toml")
	assert.Error(t, err)
}

func TestSplitKey(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{"a.b.c", []string{"a", "b", "c"}},
		{`sites."example.com".key`, []string{"sites", "example.com", "key"}},
		{`commands.on-text-change."/"`, []string{"commands", "on-text-change", "/"}},
		{"plain", []string{"plain"}},
		{"", nil},
		{"a..b", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, splitKey(tt.key), "key %q", tt.key)
	}
}
