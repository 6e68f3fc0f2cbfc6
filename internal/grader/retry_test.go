package grader

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// scriptedClient returns its errors in order, then succeeds.
type scriptedClient struct {
	errs  []error
	calls int
}

func (s *scriptedClient) Complete(_ context.Context, _ Prompt) (*Completion, error) {
	s.calls++
	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	return &Completion{JSON: json.RawMessage(`{"score": 80, "feedback": "ok"}`)}, nil
}

func (s *scriptedClient) ModelID() string { return "scripted" }

func fastRetry(maxAttempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: maxAttempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_TransientErrorRecovered(t *testing.T) {
	inner := &scriptedClient{errs: []error{
		&ErrUnavailable{Err: errors.New("503")},
		&ErrRateLimit{Err: errors.New("429")},
	}}
	c := WithRetry(inner, fastRetry(3))

	comp, err := c.Complete(context.Background(), Prompt{})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if comp == nil || inner.calls != 3 {
		t.Errorf("calls = %d, want 3", inner.calls)
	}
}

func TestRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	inner := &scriptedClient{errs: []error{
		&ErrUnavailable{}, &ErrUnavailable{}, &ErrUnavailable{},
	}}
	c := WithRetry(inner, fastRetry(3))

	_, err := c.Complete(context.Background(), Prompt{})
	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("Complete() error = %v, want *ErrUnavailable", err)
	}
	if inner.calls != 3 {
		t.Errorf("calls = %d, want 3", inner.calls)
	}
}

func TestRetry_BadCompletionRetriedOnce(t *testing.T) {
	inner := &scriptedClient{errs: []error{
		&ErrBadCompletion{Err: errors.New("bad json")},
		&ErrBadCompletion{Err: errors.New("bad json again")},
		nil,
	}}
	c := WithRetry(inner, fastRetry(5))

	_, err := c.Complete(context.Background(), Prompt{})
	var bad *ErrBadCompletion
	if !errors.As(err, &bad) {
		t.Fatalf("Complete() error = %v, want *ErrBadCompletion after single retry", err)
	}
	if inner.calls != 2 {
		t.Errorf("calls = %d, want 2 (one retry for bad completion)", inner.calls)
	}
}

func TestRetry_TruncationNotRetried(t *testing.T) {
	inner := &scriptedClient{errs: []error{&ErrTruncated{}}}
	c := WithRetry(inner, fastRetry(3))

	_, err := c.Complete(context.Background(), Prompt{})
	var trunc *ErrTruncated
	if !errors.As(err, &trunc) {
		t.Fatalf("Complete() error = %v, want *ErrTruncated", err)
	}
	if inner.calls != 1 {
		t.Errorf("calls = %d, want 1", inner.calls)
	}
}

func TestRetry_ContextCancelNotRetried(t *testing.T) {
	inner := &scriptedClient{errs: []error{context.Canceled}}
	c := WithRetry(inner, fastRetry(3))

	_, err := c.Complete(context.Background(), Prompt{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Complete() error = %v, want context.Canceled", err)
	}
	if inner.calls != 1 {
		t.Errorf("calls = %d, want 1", inner.calls)
	}
}
