package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestBreakerOpensAfterThresholdAndProbesOnce(t *testing.T) {
	b := NewBreaker(BreakerConfig{Enabled: true, Threshold: 2, Cooldown: 10 * time.Second})
	now := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	if err := b.Allow(); err != nil {
		t.Fatalf("closed breaker rejected call: %v", err)
	}
	b.Failure()
	if got := b.State(); got != StateClosed {
		t.Fatalf("expected closed after one failure, got %s", got)
	}
	b.Failure()
	if err := b.Allow(); !errors.Is(err, ErrOpen) {
		t.Fatalf("expected ErrOpen, got %v", err)
	}

	now = now.Add(11 * time.Second)
	if got := b.State(); got != StateHalfOpen {
		t.Fatalf("expected half open after cooldown, got %s", got)
	}
	if err := b.Allow(); err != nil {
		t.Fatalf("probe rejected: %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrOpen) {
		t.Fatalf("second concurrent probe should be rejected, got %v", err)
	}

	b.Success()
	if got := b.State(); got != StateClosed {
		t.Fatalf("expected closed after probe success, got %s", got)
	}
}

func TestBreakerFailedProbeReopens(t *testing.T) {
	b := NewBreaker(BreakerConfig{Enabled: true, Threshold: 1, Cooldown: time.Second})
	now := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	b.Failure()
	now = now.Add(2 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("probe rejected: %v", err)
	}
	b.Failure()
	if err := b.Allow(); !errors.Is(err, ErrOpen) {
		t.Fatalf("expected reopened breaker, got %v", err)
	}
}

func TestDisabledBreakerAlwaysAllows(t *testing.T) {
	b := NewBreaker(BreakerConfig{Enabled: false, Threshold: 1})
	for i := 0; i < 5; i++ {
		b.Failure()
	}
	if err := b.Allow(); err != nil {
		t.Fatalf("disabled breaker rejected call: %v", err)
	}
}
