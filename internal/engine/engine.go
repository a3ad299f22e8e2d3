// Package engine wires the configuration resolver, command resolver, and
// script bridge together in response to front-end events: command-bar
// submissions, completion requests, and navigation lifecycle notifications.
package engine

import (
	"errors"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/prowl-browser/prowl/internal/command"
	"github.com/prowl-browser/prowl/internal/config"
	"github.com/prowl-browser/prowl/internal/logging"
	"github.com/prowl-browser/prowl/internal/metrics"
	"github.com/prowl-browser/prowl/internal/script"
	"github.com/prowl-browser/prowl/internal/ui"
)

// CommandFileSuffix is the file extension command scripts use, fixed to the
// embedded runtime's native extension.
const CommandFileSuffix = "js"

// Engine is the core of a prowl application. It owns the configuration
// lifecycle and responds to user and lifecycle events from the UI. All
// dispatch is synchronous on the calling thread; capability handles are
// borrowed per call and never retained.
type Engine struct {
	cfg     *config.Config
	run     config.RunConfiguration
	bridge  *script.Bridge
	log     *logging.Logger
	metrics *metrics.Metrics
}

// Option configures optional engine collaborators.
type Option func(*Engine)

// WithMetrics attaches a metrics collector to the engine.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// New creates an application engine. A configuration parse failure is fatal:
// no engine is produced.
func New(run config.RunConfiguration, log *logging.Logger, opts ...Option) (*Engine, error) {
	if log == nil {
		log = logging.NewNop()
	}
	cfg, err := config.New(run.ConfigPath, log.Named("config"))
	if err != nil {
		return nil, err
	}
	log.Info("creating application engine", zap.String("config", run.ConfigPath))

	e := &Engine{
		cfg:    cfg,
		run:    run,
		bridge: script.NewBridge(log),
		log:    log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config exposes the current configuration for front ends that need the
// derived settings: start page, content filter, per-site policies.
func (e *Engine) Config() *config.Config {
	return e.cfg
}

// Reload re-parses the configuration from the run path and reports success.
// On failure the previous configuration remains in effect.
func (e *Engine) Reload() bool {
	ok := e.cfg.Load(e.run.ConfigPath)
	e.metrics.RecordReload(ok)
	return ok
}

// Watch reloads the configuration whenever the file changes on disk, until
// stop is closed. It blocks the calling goroutine.
func (e *Engine) Watch(stop <-chan struct{}) error {
	watcher, err := config.NewWatcher(e.run.ConfigPath, e.log.Named("watch"))
	if err != nil {
		return err
	}
	defer watcher.Close()

	for {
		select {
		case <-watcher.Changes():
			e.Reload()
		case <-stop:
			return nil
		}
	}
}

// ExecuteCommand handles a Return key press within the command bar. On
// success the window's command field is cleared; on script failure the field
// is left untouched and the error taxonomy is surfaced in the output.
func (e *Engine) ExecuteCommand(browser ui.BrowserUI, windowIndex uint8, text string) ui.CommandOutput {
	if strings.TrimSpace(text) == "" {
		e.metrics.RecordCommand("empty")
		return failure(ui.NoCommandSpecified, "")
	}
	return e.dispatch(browser, windowIndex, text, true)
}

// dispatch resolves and runs one command text. Resolution failure falls back
// to `commands.default` through bounded recursion: the retry is attempted
// only when text does not already start with the default token, so an input
// that still fails terminates without looping.
func (e *Engine) dispatch(browser ui.BrowserUI, windowIndex uint8, text string, clearField bool) ui.CommandOutput {
	cmd, ok := command.Parse(text, e.cfg.CommandSearchPaths(), e.cfg.CommandsDisabled(), e.cfg.CommandAliases(), CommandFileSuffix)
	if !ok {
		if def, hasDefault := e.cfg.DefaultCommand(); hasDefault && !strings.HasPrefix(text, def) {
			e.log.Debug("running the default command", zap.String("default", def), zap.String("text", text))
			return e.dispatch(browser, windowIndex, def+" "+text, clearField)
		}
		e.metrics.RecordCommand("not_found")
		name := text
		if fields := strings.Fields(text); len(fields) > 0 {
			name = fields[0]
		}
		return failure(ui.CommandNotFound, "no command matches "+name)
	}

	e.log.Info("found command match", zap.String("path", cmd.Path))
	file, err := cmd.Open()
	if err != nil {
		// The command resolved but its file vanished or lost read
		// permission in between; non-fatal.
		e.log.Warn("command file unreadable", zap.String("path", cmd.Path), zap.Error(err))
		e.metrics.RecordCommand("unreadable")
		return failure(ui.CommandNotFound, "command file unreadable: "+cmd.Path)
	}
	defer file.Close()

	if err := e.bridge.Execute(cmd.Path, file, cmd.Arguments, browser); err != nil {
		e.log.Warn("command execution failed", zap.String("path", cmd.Path), zap.Error(err))
		e.metrics.RecordScriptFailure()
		e.metrics.RecordCommand("error")
		kind := ui.ErrorDuringExecution
		if errors.Is(err, script.ErrInvalidArguments) {
			kind = ui.InvalidArguments
		}
		return failure(kind, err.Error())
	}

	if clearField {
		browser.SetCommandFieldText(windowIndex, "")
	}
	e.metrics.RecordCommand("success")
	return ui.CommandOutput{}
}

// CommandCompletions returns available commands and/or arguments for a
// command bar prefix.
func (e *Engine) CommandCompletions(browser ui.BrowserUI, prefix string) []string {
	return e.fetchCompletions(browser, prefix, script.CompleteCommand)
}

// AddressCompletions returns completions for an address field prefix.
func (e *Engine) AddressCompletions(browser ui.BrowserUI, prefix string) []string {
	return e.fetchCompletions(browser, prefix, script.CompleteAddress)
}

// fetchCompletions resolves prefix with the same alias, disabled-command,
// and search-path rules used for execution, then asks the script's
// completion entry point. Failures are swallowed: the user sees an empty
// list, never an error.
func (e *Engine) fetchCompletions(browser ui.BrowserUI, prefix string, variant script.CompletionType) []string {
	e.metrics.RecordCompletion(variant.Tag())

	cmd, ok := command.Parse(prefix, e.cfg.CommandSearchPaths(), e.cfg.CommandsDisabled(), e.cfg.CommandAliases(), CommandFileSuffix)
	if !ok {
		return nil
	}
	e.log.Debug("completing command text", zap.String("path", cmd.Path), zap.String("prefix", prefix))

	file, err := cmd.Open()
	if err != nil {
		e.log.Warn("command file unreadable", zap.String("path", cmd.Path), zap.Error(err))
		return nil
	}
	defer file.Close()

	completions, err := e.bridge.Autocomplete(cmd.Path, file, cmd.Arguments, prefix, variant, browser)
	if err != nil {
		e.log.Warn("completion failed", zap.String("path", cmd.Path), zap.Error(err))
		e.metrics.RecordScriptFailure()
		return nil
	}
	return completions
}

// OnURIEvent handles a navigation lifecycle event in a webview by running
// every command configured for it, with the URI appended as argument text.
// The command field is not touched; navigation events are not submissions.
func (e *Engine) OnURIEvent(browser ui.BrowserUI, windowIndex, webviewIndex uint8, uri string, event ui.URIEvent) {
	for _, text := range e.cfg.OnURIEventCommands(event) {
		e.log.Debug("running navigation command",
			zap.Stringer("event", event),
			zap.String("text", text),
			zap.String("uri", uri))
		e.dispatch(browser, windowIndex, text+" "+uri, false)
	}
}

// UpdateAddress is an open extension point in this design generation.
func (e *Engine) UpdateAddress(browser ui.BrowserUI, windowIndex, webviewIndex uint8, text string) error {
	return ui.ErrNotSupported
}

// Close is an open extension point in this design generation.
func (e *Engine) Close(browser ui.BrowserUI) error {
	return ui.ErrNotSupported
}

// AvailableCommands lists the command names resolvable from the configured
// search paths.
func (e *Engine) AvailableCommands() []string {
	return command.List(e.cfg.CommandSearchPaths(), CommandFileSuffix)
}

// LoadContentFilter reads the configured content-filter resource. Absent
// when no path is configured or the file cannot be read.
func (e *Engine) LoadContentFilter() (string, bool) {
	path, ok := e.cfg.ContentFilterPath()
	if !ok {
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		e.log.Warn("content filter unreadable", zap.String("path", path), zap.Error(err))
		return "", false
	}
	return string(data), true
}

func failure(kind ui.CommandError, message string) ui.CommandOutput {
	return ui.CommandOutput{Error: &kind, Message: message}
}

var _ ui.EventHandler = (*Engine)(nil)
