package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errFlaky = errors.New("registry timeout")

func fast(retries int) RetryPolicy {
	return RetryPolicy{MaxRetries: retries, BaseDelay: -1}
}

func TestRetry(t *testing.T) {
	errFatal := errors.New("not found")

	tests := []struct {
		name      string
		policy    RetryPolicy
		failures  int
		failWith  error
		wantCalls int
		wantErr   error
	}{
		{"first_try", fast(3), 0, nil, 1, nil},
		{"recovers", fast(3), 2, errFlaky, 3, nil},
		{"exhausted", fast(2), 10, errFlaky, 3, errFlaky},
		{"no_retry", NoRetry, 10, errFlaky, 1, errFlaky},
		{
			name:      "permanent",
			policy:    RetryPolicy{MaxRetries: 5, BaseDelay: -1, Permanent: func(err error) bool { return errors.Is(err, errFatal) }},
			failures:  10,
			failWith:  errFatal,
			wantCalls: 1,
			wantErr:   errFatal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := Retry(context.Background(), tt.policy, func(attempt int) error {
				if attempt != calls {
					t.Errorf("attempt = %d, want %d", attempt, calls)
				}
				calls++
				if calls <= tt.failures {
					return tt.failWith
				}
				return nil
			})
			if !errors.Is(err, tt.wantErr) || (tt.wantErr == nil && err != nil) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
		})
	}
}

func TestRetry_ContextCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	policy := RetryPolicy{MaxRetries: 3, BaseDelay: time.Hour, MaxDelay: time.Hour}

	calls := 0
	err := Retry(ctx, policy, func(int) error {
		calls++
		cancel()
		return errFlaky
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d", calls)
	}
}

func TestBackoff(t *testing.T) {
	p := RetryPolicy{BaseDelay: 100 * time.Millisecond, MaxDelay: time.Second}
	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond, 800 * time.Millisecond, time.Second, time.Second}
	for attempt, w := range want {
		if got := Backoff(attempt, p); got != w {
			t.Errorf("Backoff(%d) = %v, want %v", attempt, got, w)
		}
	}

	if got := Backoff(0, RetryPolicy{}); got != DefaultBaseDelay {
		t.Errorf("default base = %v", got)
	}
	if got := Backoff(3, RetryPolicy{BaseDelay: -1}); got != 0 {
		t.Errorf("negative base = %v, want 0", got)
	}

	p.UseJitter = true
	for range 20 {
		if got := Backoff(1, p); got < 100*time.Millisecond || got > 300*time.Millisecond {
			t.Fatalf("jittered delay %v out of range", got)
		}
	}
}
