package resilience

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func newTestBreaker(threshold int, openTimeout time.Duration, halfOpen int) (*CircuitBreaker, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC))
	b := NewCircuitBreaker(CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: threshold,
		OpenTimeout:      openTimeout,
		HalfOpenMaxReq:   halfOpen,
	}, clock)
	return b, clock
}

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	b, clock := newTestBreaker(2, 5*time.Second, 1)

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	clock.Advance(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("expected half-open state, got %s", state)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected second probe to be rejected, got %v", err)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful half-open probe, got %s", state)
	}
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	b, clock := newTestBreaker(1, time.Second, 1)

	b.RecordFailure()
	clock.Advance(2 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected probe to pass: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after failed probe, got %s", state)
	}
}

func TestCircuitBreaker_ExecuteClassifiesFailures(t *testing.T) {
	b, _ := newTestBreaker(1, time.Minute, 1)
	errPermanent := errors.New("not found")
	errTransient := errors.New("timeout")
	transient := func(err error) bool { return errors.Is(err, errTransient) }

	if err := b.Execute(func() error { return errPermanent }, transient); !errors.Is(err, errPermanent) {
		t.Fatalf("expected permanent error passthrough, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("permanent errors must not trip the breaker, got %s", state)
	}

	if err := b.Execute(func() error { return errTransient }, transient); !errors.Is(err, errTransient) {
		t.Fatalf("expected transient error passthrough, got %v", err)
	}
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("transient error should trip breaker with threshold 1, got %s", state)
	}

	called := false
	err := b.Execute(func() error {
		called = true
		return nil
	}, transient)
	if !errors.Is(err, ErrCircuitOpen) || called {
		t.Fatalf("expected rejection without calling fn, err=%v called=%v", err, called)
	}
}

func TestCircuitBreakerConfig_Normalized(t *testing.T) {
	got := CircuitBreakerConfig{Enabled: true}.Normalized()
	want := DefaultCircuitBreakerConfig()
	if got != want {
		t.Fatalf("unexpected normalized config: %+v", got)
	}

	custom := CircuitBreakerConfig{FailureThreshold: 3, OpenTimeout: time.Minute, HalfOpenMaxReq: -1}.Normalized()
	if custom.FailureThreshold != 3 || custom.OpenTimeout != time.Minute || custom.HalfOpenMaxReq != want.HalfOpenMaxReq {
		t.Fatalf("unexpected normalized custom config: %+v", custom)
	}
}

func TestCircuitBreakerConfig_BreakerDisabled(t *testing.T) {
	if b := (CircuitBreakerConfig{}).Breaker(nil); b != nil {
		t.Fatalf("expected no breaker when disabled")
	}
	if b := DefaultCircuitBreakerConfig().Breaker(nil); b == nil || b.State() != CircuitStateClosed {
		t.Fatalf("expected a closed breaker when enabled")
	}
}
