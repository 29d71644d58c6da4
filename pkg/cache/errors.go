package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrUnavailable is returned once a backend stays unreachable after every
// retry. Callers treat it as a miss rather than a failure of the operation.
var ErrUnavailable = errors.New("cache unavailable")

// RetryableError marks a backend error as transient.
type RetryableError struct{ Err error }

// Retryable wraps err as a RetryableError. It returns nil for nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err is in a RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// backoff is the retry schedule for remote backends.
type backoff struct {
	attempts int
	delay    time.Duration
}

// defaultBackoff is var so tests can shorten it.
var defaultBackoff = backoff{attempts: 3, delay: 100 * time.Millisecond}

// RetryWithBackoff calls fn until it succeeds, returns a non-retryable
// error, or the attempts run out. The delay doubles after each attempt.
// Exhausted retries yield an error matching ErrUnavailable.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return defaultBackoff.run(ctx, fn)
}

func (b backoff) run(ctx context.Context, fn func() error) error {
	attempts := max(b.attempts, 1)
	delay := b.delay
	var lastErr error

	for i := 0; i < attempts; i++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !IsRetryable(err) {
			return err
		}
		lastErr = err

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return fmt.Errorf("%w after %d attempts: %w", ErrUnavailable, attempts, lastErr)
}
