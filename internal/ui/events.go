package ui

import "errors"

// ErrNotSupported marks an event contract method that is declared but not
// yet implemented. Callers can distinguish "not implemented" from "failed".
var ErrNotSupported = errors.New("not yet supported")

// URIEvent identifies a navigation lifecycle notification from a webview.
type URIEvent int

const (
	// URIRequest fires before a document begins loading.
	URIRequest URIEvent = iota
	// URILoad fires after a document finishes loading, though not
	// necessarily after its subresources do.
	URILoad
	// URIFail fires after a document fails to load.
	URIFail
)

// String returns the event name used in logs.
func (e URIEvent) String() string {
	switch e {
	case URIRequest:
		return "request"
	case URILoad:
		return "load"
	case URIFail:
		return "fail"
	default:
		return "unknown"
	}
}

// CommandError classifies why a command submission produced no effect.
type CommandError int

const (
	// CommandNotFound means no search path yielded a script file.
	CommandNotFound CommandError = iota
	// ErrorDuringExecution means the script ran but signaled failure.
	ErrorDuringExecution
	// InvalidArguments means the script rejected the provided arguments.
	InvalidArguments
	// NoCommandSpecified means the submitted text was empty.
	NoCommandSpecified
)

// String returns the taxonomy name for logs and user-visible output.
func (e CommandError) String() string {
	switch e {
	case CommandNotFound:
		return "command not found"
	case ErrorDuringExecution:
		return "error during execution"
	case InvalidArguments:
		return "invalid arguments"
	case NoCommandSpecified:
		return "no command specified"
	default:
		return "unknown error"
	}
}

// CommandOutput is the result of one command-bar submission.
type CommandOutput struct {
	// Error is nil on success.
	Error *CommandError
	// Message carries detail for a populated Error, or is empty.
	Message string
}

// Failed reports whether the submission produced an error.
func (o CommandOutput) Failed() bool {
	return o.Error != nil
}

// EventHandler is the contract the front end dispatches UI events through.
// The Engine is the canonical implementation.
type EventHandler interface {
	// ExecuteCommand handles a Return key press within the command bar.
	ExecuteCommand(ui BrowserUI, windowIndex uint8, text string) CommandOutput

	// UpdateAddress handles a submission from the address field.
	UpdateAddress(ui BrowserUI, windowIndex, webviewIndex uint8, text string) error

	// Close closes the application.
	Close(ui BrowserUI) error

	// CommandCompletions returns available commands and/or arguments for a
	// command bar prefix.
	CommandCompletions(ui BrowserUI, prefix string) []string

	// AddressCompletions returns completions for an address field prefix.
	AddressCompletions(ui BrowserUI, prefix string) []string

	// OnURIEvent handles a navigation lifecycle event in a webview.
	OnURIEvent(ui BrowserUI, windowIndex, webviewIndex uint8, uri string, event URIEvent)
}
