// Package resilience retries external commands that fail for transient
// reasons, such as a package registry timing out.
package resilience

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// Backoff bounds used when a policy leaves them unset.
const (
	DefaultBaseDelay = 500 * time.Millisecond
	DefaultMaxDelay  = 10 * time.Second
)

// RetryPolicy defines how often and how patiently an operation is retried.
type RetryPolicy struct {
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int

	BaseDelay time.Duration
	MaxDelay  time.Duration

	// UseJitter scales each delay by a random factor in [0.5, 1.5).
	UseJitter bool

	// Permanent reports errors that must not be retried. Context errors
	// are always permanent.
	Permanent func(error) bool
}

// NoRetry runs an operation exactly once.
var NoRetry = RetryPolicy{}

// Retry calls fn until it succeeds, returns a permanent error, or the
// retries are used up. fn receives the zero-based attempt number. The
// error of the last attempt is returned.
func Retry(ctx context.Context, policy RetryPolicy, fn func(attempt int) error) error {
	var lastErr error
	for attempt := 0; attempt <= policy.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(attempt)
		if lastErr == nil || policy.permanent(lastErr) || attempt == policy.MaxRetries {
			return lastErr
		}

		timer := time.NewTimer(Backoff(attempt, policy))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return lastErr
}

func (p RetryPolicy) permanent(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return p.Permanent != nil && p.Permanent(err)
}

// Backoff returns the delay after the given attempt: BaseDelay doubled per
// attempt, capped at MaxDelay. A negative BaseDelay means no delay.
func Backoff(attempt int, policy RetryPolicy) time.Duration {
	base, maxDelay := policy.BaseDelay, policy.MaxDelay
	if base < 0 {
		return 0
	}
	if base == 0 {
		base = DefaultBaseDelay
	}
	if maxDelay <= 0 {
		maxDelay = DefaultMaxDelay
	}

	delay := base
	for range attempt {
		delay *= 2
		if delay >= maxDelay {
			delay = maxDelay
			break
		}
	}

	if policy.UseJitter {
		delay = time.Duration(float64(delay) * (0.5 + rand.Float64()))
	}
	return min(delay, maxDelay)
}
