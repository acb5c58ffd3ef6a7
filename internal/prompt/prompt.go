// Package prompt provides the blocking interactive-input collaborator used by
// the questionnaire engine. Every primitive suspends until the user answers
// or cancels; cancellation (Ctrl-C, Esc, end of input) surfaces as ErrCanceled.
package prompt

import "errors"

// ErrCanceled is returned when the user interrupts a prompt.
var ErrCanceled = errors.New("input canceled")

// Prompter is the set of blocking input primitives the wizard needs.
type Prompter interface {
	// Line asks for a single line of text. Empty input returns def.
	Line(prompt, def string) (string, error)

	// Confirm asks a yes/no question. Empty input returns def.
	Confirm(prompt string, def bool) (bool, error)

	// Choice asks for an ordinal in [1, n], re-asking on invalid input.
	// Empty input returns def when def > 0.
	Choice(prompt string, n, def int) (int, error)

	// Multiline reads raw lines until two consecutive blank lines are
	// entered. Cancellation mid-entry is not an error: the lines captured
	// so far are returned.
	Multiline(prompt string) ([]string, error)
}
