package resolver

import (
	"errors"
	"fmt"
)

// Common errors returned by the resolver.
var (
	// ErrQuit is returned when the user submits an empty query (or closes
	// stdin) at a prompt. Callers treat it as a clean exit, not a failure.
	ErrQuit = errors.New("no query entered")

	// ErrNoMatch is returned when a search yields nothing, or every result
	// page is exhausted without a selection.
	ErrNoMatch = errors.New("no matching movies found")
)

// InvalidSelectionError reports a selection index outside the candidates on
// the currently displayed page.
type InvalidSelectionError struct {
	Index int
	Max   int
}

// Error implements the error interface
func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("requested index %d not valid: must be between 1 and %d", e.Index, e.Max)
}
