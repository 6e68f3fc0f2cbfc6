package grader

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrRateLimit indicates the model API returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrBadCompletion indicates the model returned content that does not
// conform to the requested schema or is not a usable grade.
type ErrBadCompletion struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrBadCompletion) Error() string {
	return fmt.Sprintf("unusable model completion: %v", e.Err)
}

func (e *ErrBadCompletion) Unwrap() error { return e.Err }

// ErrUnavailable indicates the model API is down or unreachable.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("grading model unavailable: %v", e.Err)
	}
	return "grading model unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrTruncated indicates the completion hit the MaxTokens limit before
// producing a full verdict.
type ErrTruncated struct {
	Content json.RawMessage
}

func (e *ErrTruncated) Error() string {
	return "model completion truncated: max tokens exceeded"
}
