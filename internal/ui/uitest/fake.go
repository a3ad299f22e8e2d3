// Package uitest provides a recording BrowserUI implementation for tests.
package uitest

import (
	"fmt"

	"github.com/prowl-browser/prowl/internal/ui"
)

// Fake records every capability call it receives and serves canned values
// for the read operations.
type Fake struct {
	// Calls holds one formatted entry per capability invocation, in order.
	Calls []string

	// CommandFields maps window index to command bar text.
	CommandFields map[uint8]string

	// URIs maps "window/webview" to the loaded URI.
	URIs map[string]string

	// Clipboard holds the last copied text.
	Clipboard string

	// Windows is the reported window count.
	Windows uint8
}

// New creates an empty fake with one window.
func New() *Fake {
	return &Fake{
		CommandFields: make(map[uint8]string),
		URIs:          make(map[string]string),
		Windows:       1,
	}
}

func (f *Fake) record(format string, args ...interface{}) {
	f.Calls = append(f.Calls, fmt.Sprintf(format, args...))
}

// CalledWith reports whether any recorded call equals entry.
func (f *Fake) CalledWith(entry string) bool {
	for _, call := range f.Calls {
		if call == entry {
			return true
		}
	}
	return false
}

func (f *Fake) Copy(text string) {
	f.Clipboard = text
	f.record("copy(%s)", text)
}

func (f *Fake) FocusedWindowIndex() uint8 { f.record("focusedWindowIndex()"); return 0 }
func (f *Fake) WindowCount() uint8        { f.record("windowCount()"); return f.Windows }

func (f *Fake) OpenWindow(uri string) {
	f.Windows++
	f.record("openWindow(%s)", uri)
}

func (f *Fake) CloseWindow(index uint8) {
	if f.Windows > 0 {
		f.Windows--
	}
	f.record("closeWindow(%d)", index)
}

func (f *Fake) FocusWindow(index uint8) { f.record("focusWindow(%d)", index) }

func (f *Fake) ToggleWindow(index uint8, visible bool) {
	f.record("toggleWindow(%d,%t)", index, visible)
}

func (f *Fake) ResizeWindow(index uint8, width, height uint32) {
	f.record("resizeWindow(%d,%d,%d)", index, width, height)
}

func (f *Fake) CommandFieldText(index uint8) string {
	f.record("commandFieldText(%d)", index)
	return f.CommandFields[index]
}

func (f *Fake) SetCommandFieldText(index uint8, text string) {
	f.CommandFields[index] = text
	f.record("setCommandFieldText(%d,%s)", index, text)
}

func (f *Fake) WindowTitle(index uint8) string {
	f.record("windowTitle(%d)", index)
	return ""
}

func (f *Fake) SetWindowTitle(index uint8, title string) {
	f.record("setWindowTitle(%d,%s)", index, title)
}

func (f *Fake) FocusedWebviewIndex(windowIndex uint8) uint8 {
	f.record("focusedWebviewIndex(%d)", windowIndex)
	return 0
}

func (f *Fake) WebviewCount(windowIndex uint8) uint8 {
	f.record("webviewCount(%d)", windowIndex)
	return 1
}

func (f *Fake) OpenWebview(windowIndex uint8, uri string) {
	f.record("openWebview(%d,%s)", windowIndex, uri)
}

func (f *Fake) CloseWebview(windowIndex, webviewIndex uint8) {
	f.record("closeWebview(%d,%d)", windowIndex, webviewIndex)
}

func (f *Fake) FocusWebview(windowIndex, webviewIndex uint8) {
	f.record("focusWebview(%d,%d)", windowIndex, webviewIndex)
}

func (f *Fake) ReloadWebview(windowIndex, webviewIndex uint8, disableFilters bool) {
	f.record("reloadWebview(%d,%d,%t)", windowIndex, webviewIndex, disableFilters)
}

func (f *Fake) SetURI(windowIndex, webviewIndex uint8, uri string) {
	f.URIs[fmt.Sprintf("%d/%d", windowIndex, webviewIndex)] = uri
	f.record("setUri(%d,%d,%s)", windowIndex, webviewIndex, uri)
}

func (f *Fake) GoBack(windowIndex, webviewIndex uint8) bool {
	f.record("goBack(%d,%d)", windowIndex, webviewIndex)
	return true
}

func (f *Fake) GoForward(windowIndex, webviewIndex uint8) bool {
	f.record("goForward(%d,%d)", windowIndex, webviewIndex)
	return false
}

func (f *Fake) URI(windowIndex, webviewIndex uint8) string {
	f.record("uri(%d,%d)", windowIndex, webviewIndex)
	return f.URIs[fmt.Sprintf("%d/%d", windowIndex, webviewIndex)]
}

func (f *Fake) WebviewTitle(windowIndex, webviewIndex uint8) string {
	f.record("webviewTitle(%d,%d)", windowIndex, webviewIndex)
	return ""
}

func (f *Fake) RunJavaScript(windowIndex, webviewIndex uint8, script string) {
	f.record("runJavascript(%d,%d,%s)", windowIndex, webviewIndex, script)
}

func (f *Fake) ApplyStyles(windowIndex, webviewIndex uint8, styles string) {
	f.record("applyStyles(%d,%d,%s)", windowIndex, webviewIndex, styles)
}

func (f *Fake) FindString(windowIndex, webviewIndex uint8, query string) {
	f.record("findString(%d,%d,%s)", windowIndex, webviewIndex, query)
}

func (f *Fake) HideFindResults(windowIndex, webviewIndex uint8) {
	f.record("hideFindResults(%d,%d)", windowIndex, webviewIndex)
}

var _ ui.BrowserUI = (*Fake)(nil)
