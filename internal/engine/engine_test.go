package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prowl-browser/prowl/internal/config"
	"github.com/prowl-browser/prowl/internal/ui"
	"github.com/prowl-browser/prowl/internal/ui/uitest"
)

// navigate.js records its invocation through the clipboard so tests can see
// both that it ran and what argument text it received.
const navigateScript = `
	function run() {
		browser.copy("navigate:" + args);
		browser.setUri(0, 0, args);
	}
	function complete(prefix, kind) {
		return [kind + ":" + prefix];
	}
`

type fixture struct {
	dir     string
	scripts string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	scripts := filepath.Join(dir, "scripts")
	require.NoError(t, os.Mkdir(scripts, 0o755))
	return &fixture{dir: dir, scripts: scripts}
}

func (f *fixture) writeScript(t *testing.T, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(f.scripts, name+".js"), []byte(body), 0o644))
}

// engine builds an Engine over a config that prepends the fixture's script
// directory to the given TOML body.
func (f *fixture) engine(t *testing.T, extra string) *Engine {
	t.Helper()
	raw := fmt.Sprintf("[commands]\nsearch-paths = [%q]\n%s", f.scripts, extra)
	path := filepath.Join(f.dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	eng, err := New(config.RunConfiguration{ConfigPath: path}, nil)
	require.NoError(t, err)
	return eng
}

func TestNewFailsOnBadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("broken ["), 0o644))

	_, err := New(config.RunConfiguration{ConfigPath: path}, nil)
	assert.Error(t, err)

	_, err = New(config.RunConfiguration{ConfigPath: filepath.Join(dir, "missing.toml")}, nil)
	assert.Error(t, err)
}

func TestExecuteCommandSuccess(t *testing.T) {
	f := newFixture(t)
	f.writeScript(t, "navigate", navigateScript)
	eng := f.engine(t, "")

	browser := uitest.New()
	browser.CommandFields[3] = "navigate https://example.com"

	output := eng.ExecuteCommand(browser, 3, "navigate https://example.com")
	assert.False(t, output.Failed())
	assert.Equal(t, "navigate:https://example.com", browser.Clipboard)
	// The command field is cleared on success.
	assert.Equal(t, "", browser.CommandFields[3])
}

func TestExecuteCommandViaAlias(t *testing.T) {
	f := newFixture(t)
	f.writeScript(t, "navigate", navigateScript)
	eng := f.engine(t, "[commands.aliases]\nn = \"navigate\"\n")

	output := eng.ExecuteCommand(uitest.New(), 0, "n https://example.com")
	assert.False(t, output.Failed())
}

func TestExecuteCommandDisabledViaAlias(t *testing.T) {
	f := newFixture(t)
	f.writeScript(t, "navigate", navigateScript)
	eng := f.engine(t, "disabled = [\"navigate\"]\n[commands.aliases]\nn = \"navigate\"\n")

	browser := uitest.New()
	output := eng.ExecuteCommand(browser, 0, "n anything")
	require.True(t, output.Failed())
	assert.Equal(t, ui.CommandNotFound, *output.Error)
	assert.Empty(t, browser.Calls)
}

func TestExecuteCommandEmptyText(t *testing.T) {
	f := newFixture(t)
	eng := f.engine(t, "")

	output := eng.ExecuteCommand(uitest.New(), 0, "   ")
	require.True(t, output.Failed())
	assert.Equal(t, ui.NoCommandSpecified, *output.Error)
}

func TestExecuteCommandScriptError(t *testing.T) {
	f := newFixture(t)
	f.writeScript(t, "broken", `function run() { throw new Error("boom"); }`)
	eng := f.engine(t, "")

	browser := uitest.New()
	browser.CommandFields[0] = "broken"

	output := eng.ExecuteCommand(browser, 0, "broken")
	require.True(t, output.Failed())
	assert.Equal(t, ui.ErrorDuringExecution, *output.Error)
	// On script error the field is left untouched.
	assert.Equal(t, "broken", browser.CommandFields[0])
}

func TestExecuteCommandInvalidArguments(t *testing.T) {
	f := newFixture(t)
	f.writeScript(t, "strict", `function run() { throw {name: "InvalidArguments", message: "need a uri"}; }`)
	eng := f.engine(t, "")

	output := eng.ExecuteCommand(uitest.New(), 0, "strict")
	require.True(t, output.Failed())
	assert.Equal(t, ui.InvalidArguments, *output.Error)
	assert.Contains(t, output.Message, "need a uri")
}

func TestDefaultCommandFallback(t *testing.T) {
	f := newFixture(t)
	f.writeScript(t, "navigate", navigateScript)
	eng := f.engine(t, "default = \"navigate\"\n")

	browser := uitest.New()
	output := eng.ExecuteCommand(browser, 0, "https://example.com")
	assert.False(t, output.Failed())
	// The unmatched text becomes the default command's arguments.
	assert.Equal(t, "navigate:https://example.com", browser.Clipboard)
}

func TestDefaultCommandFallbackNeverLoops(t *testing.T) {
	f := newFixture(t)
	// No script named "open" exists, so both the original text and the
	// prefixed retry fail to resolve. The prefix guard must terminate
	// the recursion; a loop would retry "open open xyz" and so on.
	eng := f.engine(t, "default = \"open\"\n")

	browser := uitest.New()
	output := eng.ExecuteCommand(browser, 0, "open xyz")
	require.True(t, output.Failed())
	assert.Equal(t, ui.CommandNotFound, *output.Error)
	assert.Empty(t, browser.Calls)
}

func TestNoDefaultNoOp(t *testing.T) {
	f := newFixture(t)
	eng := f.engine(t, "")

	browser := uitest.New()
	output := eng.ExecuteCommand(browser, 0, "bogus")
	require.True(t, output.Failed())
	assert.Equal(t, ui.CommandNotFound, *output.Error)
	// No side effects on resolution failure.
	assert.Empty(t, browser.Calls)
}

func TestCompletions(t *testing.T) {
	f := newFixture(t)
	f.writeScript(t, "navigate", navigateScript)
	eng := f.engine(t, "")

	browser := uitest.New()
	assert.Equal(t, []string{"command:navigate ht"}, eng.CommandCompletions(browser, "navigate ht"))
	assert.Equal(t, []string{"address:navigate ht"}, eng.AddressCompletions(browser, "navigate ht"))
}

func TestCompletionsSwallowFailures(t *testing.T) {
	f := newFixture(t)
	f.writeScript(t, "broken", `function complete() { throw new Error("no"); }`)
	f.writeScript(t, "silent", `function run() {}`)
	eng := f.engine(t, "")

	browser := uitest.New()
	// Unresolvable prefix, script failure, and missing entry point all
	// yield an empty list, never an error.
	assert.Empty(t, eng.CommandCompletions(browser, "bogus"))
	assert.Empty(t, eng.CommandCompletions(browser, "broken x"))
	assert.Empty(t, eng.AddressCompletions(browser, "silent x"))
}

func TestOnURIEvent(t *testing.T) {
	f := newFixture(t)
	f.writeScript(t, "history", `function run() { browser.copy("history:" + args); }`)
	eng := f.engine(t, "on-load-uri = [\"history\"]\n")

	browser := uitest.New()
	browser.CommandFields[0] = "typed"

	eng.OnURIEvent(browser, 0, 0, "https://example.com/page", ui.URILoad)
	assert.Equal(t, "history:https://example.com/page", browser.Clipboard)
	// Navigation commands are not submissions: the field stays.
	assert.Equal(t, "typed", browser.CommandFields[0])

	// Events with no configured commands are a no-op.
	browser = uitest.New()
	eng.OnURIEvent(browser, 0, 0, "https://example.com/page", ui.URIFail)
	assert.Empty(t, browser.Calls)
}

func TestReload(t *testing.T) {
	f := newFixture(t)
	eng := f.engine(t, "default = \"open\"\n")

	def, ok := eng.Config().DefaultCommand()
	require.True(t, ok)
	assert.Equal(t, "open", def)

	path := filepath.Join(f.dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[commands]\ndefault = \"search\"\n"), 0o644))
	require.True(t, eng.Reload())

	def, ok = eng.Config().DefaultCommand()
	require.True(t, ok)
	assert.Equal(t, "search", def)

	// A broken rewrite keeps the current configuration.
	require.NoError(t, os.WriteFile(path, []byte("broken ["), 0o644))
	assert.False(t, eng.Reload())
	def, _ = eng.Config().DefaultCommand()
	assert.Equal(t, "search", def)
}

func TestOpenExtensionPoints(t *testing.T) {
	f := newFixture(t)
	eng := f.engine(t, "")

	assert.ErrorIs(t, eng.UpdateAddress(uitest.New(), 0, 0, "https://example.com"), ui.ErrNotSupported)
	assert.ErrorIs(t, eng.Close(uitest.New()), ui.ErrNotSupported)
}

func TestAvailableCommands(t *testing.T) {
	f := newFixture(t)
	f.writeScript(t, "navigate", navigateScript)
	f.writeScript(t, "history", `function run() {}`)
	eng := f.engine(t, "")

	assert.Equal(t, []string{"history", "navigate"}, eng.AvailableCommands())
}

func TestLoadContentFilter(t *testing.T) {
	f := newFixture(t)
	filter := filepath.Join(f.dir, "filter.json")
	require.NoError(t, os.WriteFile(filter, []byte(`{"rules": []}`), 0o644))

	eng := f.engine(t, fmt.Sprintf("[general]\ncontent-filter = %q\n", filter))
	content, ok := eng.LoadContentFilter()
	require.True(t, ok)
	assert.Equal(t, `{"rules": []}`, content)

	// Unset path and unreadable file are both absent.
	bare := f.engine(t, "")
	_, ok = bare.LoadContentFilter()
	assert.False(t, ok)
}
