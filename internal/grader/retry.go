package grader

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryClient is a decorator that retries transient errors with
// exponential backoff and jitter.
type RetryClient struct {
	inner  Client
	config RetryConfig
}

// WithRetry wraps a Client with retry logic.
func WithRetry(c Client, cfg RetryConfig) Client {
	return &RetryClient{inner: c, config: cfg}
}

func (r *RetryClient) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	var lastErr error
	badRetried := false

	for attempt := range r.config.MaxAttempts {
		comp, err := r.inner.Complete(ctx, p)
		if err == nil {
			return comp, nil
		}
		lastErr = err

		if !r.shouldRetry(err, &badRetried) {
			return nil, err
		}

		// Last attempt. Don't sleep, just return the error.
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		wait := r.backoff(attempt, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, lastErr
}

func (r *RetryClient) ModelID() string {
	return r.inner.ModelID()
}

// shouldRetry determines if an error is retryable.
func (r *RetryClient) shouldRetry(err error, badRetried *bool) bool {
	// Context errors are never retried.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// Truncation is a configuration issue, not transient.
	var trunc *ErrTruncated
	if errors.As(err, &trunc) {
		return false
	}

	// A malformed completion gets one retry.
	var bad *ErrBadCompletion
	if errors.As(err, &bad) {
		if *badRetried {
			return false
		}
		*badRetried = true
		return true
	}

	// Rate limit and unavailable are retryable; other errors (network,
	// etc.) are treated as transient too.
	return true
}

// backoff computes the wait duration for the given attempt.
func (r *RetryClient) backoff(attempt int, err error) time.Duration {
	// Respect RetryAfter for rate limits.
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// Add ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
