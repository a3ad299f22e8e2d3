// Package ui declares the boundary between the engine core and a concrete
// front end: the capability contract the front end implements (BrowserUI),
// the event contract the front end pushes into the engine (EventHandler), and
// the error taxonomy surfaced on command dispatch.
//
// The core never owns a BrowserUI. Handles are borrowed for the duration of a
// single dispatch call and must not be retained past it; the concrete UI
// object's lifetime belongs to the front end.
package ui

// BrowserUI is the capability contract implemented by the windowing front
// end. It is the full operation set the engine may perform against the UI;
// scripts see only a narrowed facade built from it per call.
type BrowserUI interface {
	// Copy places text on the system clipboard.
	Copy(text string)

	// FocusedWindowIndex returns the index of the focused window.
	FocusedWindowIndex() uint8

	// WindowCount returns the number of open windows.
	WindowCount() uint8

	// OpenWindow opens a new window, loading uri if non-empty.
	OpenWindow(uri string)

	// CloseWindow closes the window at index.
	CloseWindow(index uint8)

	// FocusWindow focuses the window at index.
	FocusWindow(index uint8)

	// ToggleWindow sets the visibility of the window at index.
	ToggleWindow(index uint8, visible bool)

	// ResizeWindow changes the dimensions of a window.
	ResizeWindow(index uint8, width, height uint32)

	// CommandFieldText returns the text in a window's command bar.
	CommandFieldText(index uint8) string

	// SetCommandFieldText replaces the text in a window's command bar.
	SetCommandFieldText(index uint8, text string)

	// WindowTitle returns the title of a window.
	WindowTitle(index uint8) string

	// SetWindowTitle sets the title of a window.
	SetWindowTitle(index uint8, title string)

	// FocusedWebviewIndex returns the index of the webview currently
	// visible in a window.
	FocusedWebviewIndex(windowIndex uint8) uint8

	// WebviewCount returns the number of webviews in a window.
	WebviewCount(windowIndex uint8) uint8

	// OpenWebview opens a new webview in a window and loads uri.
	OpenWebview(windowIndex uint8, uri string)

	// CloseWebview closes a webview in a window.
	CloseWebview(windowIndex, webviewIndex uint8)

	// FocusWebview focuses a webview, hiding the current one.
	FocusWebview(windowIndex, webviewIndex uint8)

	// ReloadWebview reloads a webview, optionally without content filters.
	ReloadWebview(windowIndex, webviewIndex uint8, disableFilters bool)

	// SetURI loads a URI in a webview.
	SetURI(windowIndex, webviewIndex uint8, uri string)

	// GoBack returns to the previously loaded resource, reporting whether
	// any history entry existed.
	GoBack(windowIndex, webviewIndex uint8) bool

	// GoForward advances to the next loaded resource, reporting whether
	// any forward entry existed.
	GoForward(windowIndex, webviewIndex uint8) bool

	// URI returns the currently loaded URI, or an empty string.
	URI(windowIndex, webviewIndex uint8) string

	// WebviewTitle returns the title of the loaded page, or an empty
	// string.
	WebviewTitle(windowIndex, webviewIndex uint8) string

	// RunJavaScript evaluates a script snippet in a webview.
	RunJavaScript(windowIndex, webviewIndex uint8, script string)

	// ApplyStyles applies a stylesheet to a webview.
	ApplyStyles(windowIndex, webviewIndex uint8, styles string)

	// FindString searches for a string within a webview.
	FindString(windowIndex, webviewIndex uint8, query string)

	// HideFindResults hides results from a previous find invocation.
	HideFindResults(windowIndex, webviewIndex uint8)
}
