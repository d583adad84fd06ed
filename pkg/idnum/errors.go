package idnum

import "fmt"

// ValidationError reports malformed caller input on a named field. It is
// always surfaced immediately, never retried or silently corrected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
