package script

import (
	"github.com/dop251/goja"

	"github.com/prowl-browser/prowl/internal/ui"
)

// bindFacade constructs the capability facade for one invocation and binds
// it into the VM as the `browser` global. The facade is an explicit, narrow
// adapter over the full UI interface: each whitelisted operation is bound
// individually, and the interface value itself never enters the runtime.
func bindFacade(vm *goja.Runtime, browser ui.BrowserUI) error {
	facade := vm.NewObject()

	ops := map[string]interface{}{
		"copy":                browser.Copy,
		"focusedWindowIndex":  browser.FocusedWindowIndex,
		"windowCount":         browser.WindowCount,
		"openWindow":          browser.OpenWindow,
		"closeWindow":         browser.CloseWindow,
		"focusWindow":         browser.FocusWindow,
		"toggleWindow":        browser.ToggleWindow,
		"resizeWindow":        browser.ResizeWindow,
		"commandFieldText":    browser.CommandFieldText,
		"setCommandFieldText": browser.SetCommandFieldText,
		"windowTitle":         browser.WindowTitle,
		"setWindowTitle":      browser.SetWindowTitle,
		"focusedWebviewIndex": browser.FocusedWebviewIndex,
		"webviewCount":        browser.WebviewCount,
		"openWebview":         browser.OpenWebview,
		"closeWebview":        browser.CloseWebview,
		"focusWebview":        browser.FocusWebview,
		"reloadWebview":       browser.ReloadWebview,
		"setUri":              browser.SetURI,
		"goBack":              browser.GoBack,
		"goForward":           browser.GoForward,
		"uri":                 browser.URI,
		"webviewTitle":        browser.WebviewTitle,
		"runJavascript":       browser.RunJavaScript,
		"applyStyles":         browser.ApplyStyles,
		"findString":          browser.FindString,
		"hideFindResults":     browser.HideFindResults,
	}
	for name, op := range ops {
		if err := facade.Set(name, op); err != nil {
			return err
		}
	}

	return vm.Set("browser", facade)
}
