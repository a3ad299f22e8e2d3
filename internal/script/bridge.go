package script

import (
	"fmt"
	"io"

	"github.com/dop251/goja"
	"go.uber.org/zap"

	"github.com/prowl-browser/prowl/internal/logging"
	"github.com/prowl-browser/prowl/internal/ui"
)

// Bridge loads command scripts and invokes their entry points against a
// capability facade. Each invocation gets a fresh VM, so scripts cannot leak
// state into each other. Calls block until the script returns; there is no
// timeout and no cancellation path.
type Bridge struct {
	log *logging.Logger
}

// NewBridge creates a script bridge.
func NewBridge(log *logging.Logger) *Bridge {
	if log == nil {
		log = logging.NewNop()
	}
	return &Bridge{log: log}
}

// Execute runs the script's `run` entry point with the given argument text.
// Any failure inside the script comes back as an error value, never a panic;
// host state is left exactly as the script left it.
func (b *Bridge) Execute(name string, src io.Reader, arguments string, browser ui.BrowserUI) error {
	vm, err := b.load(name, src, arguments, browser)
	if err != nil {
		return err
	}

	run, ok := goja.AssertFunction(vm.Get(entryRun))
	if !ok {
		return fmt.Errorf("script %s does not define %s()", name, entryRun)
	}

	_, err = b.call(run, goja.Undefined())
	if err != nil {
		return classify(err)
	}
	return nil
}

// Autocomplete runs the script's `complete` entry point for a prefix and
// variant tag, returning the ordered completions it produced. Non-string
// elements in the returned array are dropped.
func (b *Bridge) Autocomplete(name string, src io.Reader, arguments, prefix string, variant CompletionType, browser ui.BrowserUI) ([]string, error) {
	vm, err := b.load(name, src, arguments, browser)
	if err != nil {
		return nil, err
	}

	complete, ok := goja.AssertFunction(vm.Get(entryComplete))
	if !ok {
		return nil, fmt.Errorf("script %s does not define %s()", name, entryComplete)
	}

	value, err := b.call(complete, goja.Undefined(), vm.ToValue(prefix), vm.ToValue(variant.Tag()))
	if err != nil {
		return nil, classify(err)
	}

	items, ok := value.Export().([]interface{})
	if !ok {
		return nil, fmt.Errorf("script %s: %s() did not return an array", name, entryComplete)
	}
	completions := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			completions = append(completions, s)
		}
	}
	return completions, nil
}

// load builds a fresh VM, binds the facade and argument text, and evaluates
// the script body so its entry points are defined.
func (b *Bridge) load(name string, src io.Reader, arguments string, browser ui.BrowserUI) (*goja.Runtime, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", name, err)
	}

	vm := goja.New()
	if err := b.setupGlobals(vm, name); err != nil {
		return nil, err
	}
	if err := bindFacade(vm, browser); err != nil {
		return nil, err
	}
	if err := vm.Set("args", arguments); err != nil {
		return nil, err
	}

	if _, err := vm.RunScript(name, string(data)); err != nil {
		return nil, fmt.Errorf("failed to evaluate script %s: %w", name, err)
	}
	return vm, nil
}

// setupGlobals strips module-system globals and routes console output to the
// host logger.
func (b *Bridge) setupGlobals(vm *goja.Runtime, name string) error {
	for _, global := range []string{"require", "process", "module", "exports"} {
		if err := vm.Set(global, goja.Undefined()); err != nil {
			return err
		}
	}

	console := vm.NewObject()
	log := b.log.Named("script").With(zap.String("script", name))
	levels := map[string]func(string, ...zap.Field){
		"log":   log.Info,
		"info":  log.Info,
		"warn":  log.Warn,
		"error": log.Error,
	}
	for level, sink := range levels {
		emit := sink
		fn := func(call goja.FunctionCall) goja.Value {
			var msg string
			for i, arg := range call.Arguments {
				if i > 0 {
					msg += " "
				}
				msg += arg.String()
			}
			emit(msg)
			return goja.Undefined()
		}
		if err := console.Set(level, fn); err != nil {
			return err
		}
	}
	return vm.Set("console", console)
}

// call invokes a script function, converting VM panics into errors so a
// misbehaving script can never take down the dispatch path.
func (b *Bridge) call(fn goja.Callable, this goja.Value, args ...goja.Value) (value goja.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("script runtime failure: %v", r)
		}
	}()
	return fn(this, args...)
}

// classify maps a thrown script value onto the command error taxonomy. A
// thrown object with name "InvalidArguments" means the script rejected its
// arguments; everything else is an execution error.
func classify(err error) error {
	ex, ok := err.(*goja.Exception)
	if !ok || ex.Value() == nil {
		return err
	}
	if obj, ok := ex.Value().Export().(map[string]interface{}); ok {
		if name, _ := obj["name"].(string); name == "InvalidArguments" {
			msg, _ := obj["message"].(string)
			if msg == "" {
				msg = "arguments rejected by script"
			}
			return fmt.Errorf("%w: %s", ErrInvalidArguments, msg)
		}
	}
	return err
}
