// Package script loads resolved command scripts and invokes them inside an
// embedded JavaScript runtime. The only host state a script can reach is the
// capability facade bound into the VM for the duration of one call; there is
// no ambient access to the configuration, the filesystem, or other windows.
package script

import "errors"

// ErrInvalidArguments marks a script that rejected its argument text. A
// script signals it by throwing a value whose `name` property is
// "InvalidArguments"; any other thrown value is an execution error.
var ErrInvalidArguments = errors.New("invalid arguments")

// CompletionType selects which completion entry point variant a completion
// request represents. It is passed to the script as a single enumerated tag.
type CompletionType int

const (
	// CompleteCommand enumerates command-bar completions.
	CompleteCommand CompletionType = iota
	// CompleteAddress enumerates address-field completions.
	CompleteAddress
)

// Tag returns the variant name handed to the script.
func (t CompletionType) Tag() string {
	if t == CompleteAddress {
		return "address"
	}
	return "command"
}

// Entry point names a command script may define.
const (
	entryRun      = "run"
	entryComplete = "complete"
)
