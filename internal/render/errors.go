package render

import (
	"fmt"
	"strings"
)

// RenderError is the one failure class surfaced to the user verbatim: a
// blocked or failed render means no document is obtainable, so the cause and
// a remediation hint travel with it.
type RenderError struct {
	Reason string
	Hint   string

	// Missing is set when the render was refused because required fields
	// are still unresolved. The templating library is not touched in that
	// case.
	Missing []string

	Err error
}

func (e *RenderError) Error() string {
	msg := e.Reason
	if len(e.Missing) > 0 {
		msg = fmt.Sprintf("%s: %s", msg, strings.Join(e.Missing, ", "))
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// UserMessage formats the error with its remediation hint for display.
func (e *RenderError) UserMessage() string {
	if e.Hint == "" {
		return e.Error()
	}
	return fmt.Sprintf("%s (%s)", e.Error(), e.Hint)
}
