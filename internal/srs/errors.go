package srs

import "fmt"

// ValidationError indicates a malformed attempt outcome. The update is
// rejected and the stored state is untouched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid attempt: %s %s", e.Field, e.Reason)
}
