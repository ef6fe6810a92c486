package resilience

import (
	"context"
	"math/rand/v2"
	"time"
)

type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	// Retryable reports whether err is worth another attempt. Nil retries everything.
	Retryable func(err error) bool
}

// Retry runs fn until it succeeds, the policy gives up, or ctx ends. The
// delay doubles per attempt with up to 50% jitter, capped at MaxDelay.
func Retry(ctx context.Context, policy RetryPolicy, fn func(attempt int) error) error {
	var err error
	for attempt := 0; attempt <= policy.MaxRetries; attempt++ {
		if err = fn(attempt); err == nil {
			return nil
		}
		if policy.Retryable != nil && !policy.Retryable(err) {
			return err
		}
		if attempt == policy.MaxRetries {
			break
		}
		if waitErr := Sleep(ctx, Backoff(policy.BaseDelay, policy.MaxDelay, attempt)); waitErr != nil {
			return waitErr
		}
	}
	return err
}

func Backoff(base, limit time.Duration, attempt int) time.Duration {
	if base <= 0 {
		return 0
	}
	d := base << attempt
	if limit > 0 && (d > limit || d <= 0) {
		d = limit
	}
	return d + time.Duration(rand.Int64N(int64(d)/2+1))
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
