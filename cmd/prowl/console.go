package main

import (
	"fmt"
	"io"
)

// window models the state a real front end would hold per window.
type window struct {
	title    string
	field    string
	visible  bool
	webviews []webview
	focused  int
}

// webview models one page container within a window.
type webview struct {
	uri   string
	title string
}

// console is a headless BrowserUI implementation: it keeps a small in-memory
// window/webview model and prints each capability call as it happens. It
// exists so the engine can be driven end to end from the command line and
// doubles as a reference implementation of the capability contract.
type console struct {
	out       io.Writer
	windows   []window
	focused   int
	clipboard string
}

func newConsole(out io.Writer) *console {
	return &console{
		out:     out,
		windows: []window{{visible: true, webviews: []webview{{}}}},
	}
}

func (c *console) trace(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "-> "+format+"\n", args...)
}

func (c *console) win(index uint8) *window {
	if int(index) >= len(c.windows) {
		return &window{webviews: []webview{{}}}
	}
	return &c.windows[index]
}

func (c *console) view(windowIndex, webviewIndex uint8) *webview {
	w := c.win(windowIndex)
	if int(webviewIndex) >= len(w.webviews) {
		return &webview{}
	}
	return &w.webviews[webviewIndex]
}

func (c *console) Copy(text string) {
	c.clipboard = text
	c.trace("copy %q", text)
}

func (c *console) FocusedWindowIndex() uint8 { return uint8(c.focused) }
func (c *console) WindowCount() uint8        { return uint8(len(c.windows)) }

func (c *console) OpenWindow(uri string) {
	c.windows = append(c.windows, window{visible: true, webviews: []webview{{uri: uri}}})
	c.trace("open window %q", uri)
}

func (c *console) CloseWindow(index uint8) {
	if int(index) < len(c.windows) {
		c.windows = append(c.windows[:index], c.windows[index+1:]...)
	}
	c.trace("close window %d", index)
}

func (c *console) FocusWindow(index uint8) {
	if int(index) < len(c.windows) {
		c.focused = int(index)
	}
	c.trace("focus window %d", index)
}

func (c *console) ToggleWindow(index uint8, visible bool) {
	c.win(index).visible = visible
	c.trace("toggle window %d visible=%t", index, visible)
}

func (c *console) ResizeWindow(index uint8, width, height uint32) {
	c.trace("resize window %d to %dx%d", index, width, height)
}

func (c *console) CommandFieldText(index uint8) string {
	return c.win(index).field
}

func (c *console) SetCommandFieldText(index uint8, text string) {
	c.win(index).field = text
	c.trace("set command field %d %q", index, text)
}

func (c *console) WindowTitle(index uint8) string {
	return c.win(index).title
}

func (c *console) SetWindowTitle(index uint8, title string) {
	c.win(index).title = title
	c.trace("set window title %d %q", index, title)
}

func (c *console) FocusedWebviewIndex(windowIndex uint8) uint8 {
	return uint8(c.win(windowIndex).focused)
}

func (c *console) WebviewCount(windowIndex uint8) uint8 {
	return uint8(len(c.win(windowIndex).webviews))
}

func (c *console) OpenWebview(windowIndex uint8, uri string) {
	w := c.win(windowIndex)
	w.webviews = append(w.webviews, webview{uri: uri})
	c.trace("open webview in window %d %q", windowIndex, uri)
}

func (c *console) CloseWebview(windowIndex, webviewIndex uint8) {
	w := c.win(windowIndex)
	if int(webviewIndex) < len(w.webviews) {
		w.webviews = append(w.webviews[:webviewIndex], w.webviews[webviewIndex+1:]...)
	}
	c.trace("close webview %d/%d", windowIndex, webviewIndex)
}

func (c *console) FocusWebview(windowIndex, webviewIndex uint8) {
	w := c.win(windowIndex)
	if int(webviewIndex) < len(w.webviews) {
		w.focused = int(webviewIndex)
	}
	c.trace("focus webview %d/%d", windowIndex, webviewIndex)
}

func (c *console) ReloadWebview(windowIndex, webviewIndex uint8, disableFilters bool) {
	c.trace("reload webview %d/%d filters-disabled=%t", windowIndex, webviewIndex, disableFilters)
}

func (c *console) SetURI(windowIndex, webviewIndex uint8, uri string) {
	c.view(windowIndex, webviewIndex).uri = uri
	c.trace("navigate %d/%d %q", windowIndex, webviewIndex, uri)
}

func (c *console) GoBack(windowIndex, webviewIndex uint8) bool {
	c.trace("go back %d/%d", windowIndex, webviewIndex)
	return false
}

func (c *console) GoForward(windowIndex, webviewIndex uint8) bool {
	c.trace("go forward %d/%d", windowIndex, webviewIndex)
	return false
}

func (c *console) URI(windowIndex, webviewIndex uint8) string {
	return c.view(windowIndex, webviewIndex).uri
}

func (c *console) WebviewTitle(windowIndex, webviewIndex uint8) string {
	return c.view(windowIndex, webviewIndex).title
}

func (c *console) RunJavaScript(windowIndex, webviewIndex uint8, script string) {
	c.trace("run javascript in %d/%d: %s", windowIndex, webviewIndex, script)
}

func (c *console) ApplyStyles(windowIndex, webviewIndex uint8, styles string) {
	c.trace("apply styles in %d/%d (%d bytes)", windowIndex, webviewIndex, len(styles))
}

func (c *console) FindString(windowIndex, webviewIndex uint8, query string) {
	c.trace("find %q in %d/%d", query, windowIndex, webviewIndex)
}

func (c *console) HideFindResults(windowIndex, webviewIndex uint8) {
	c.trace("hide find results %d/%d", windowIndex, webviewIndex)
}
