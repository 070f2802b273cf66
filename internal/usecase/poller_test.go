package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/fpl-live/internal/platform/logging"
)

type sequenceIDs struct {
	n atomic.Int64
}

func (s *sequenceIDs) NewID() (string, error) {
	return fmt.Sprintf("cycle-%d", s.n.Add(1)), nil
}

func newTestPoller[T any](t *testing.T, clock clockwork.Clock, cycle Cycle[T]) *Poller[T] {
	t.Helper()
	p, err := NewPoller("test", 5*time.Second, cycle, PollerOptions{
		Clock:  clock,
		IDs:    &sequenceIDs{},
		Logger: logging.NewNop(),
	})
	if err != nil {
		t.Fatalf("new poller: %v", err)
	}
	return p
}

func TestNewPoller_ValidatesInterval(t *testing.T) {
	t.Parallel()

	cycle := func(context.Context) (int, error) { return 1, nil }
	for _, interval := range []time.Duration{time.Second, 2 * time.Minute} {
		if _, err := NewPoller("bad", interval, Cycle[int](cycle), PollerOptions{}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("interval %s: expected ErrInvalidInput, got %v", interval, err)
		}
	}
}

func TestPoller_FailedCycleKeepsPreviousResult(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	p := newTestPoller(t, clockwork.NewFakeClock(), func(context.Context) (int, error) {
		if calls.Add(1) == 2 {
			return 0, fmt.Errorf("%w: boom", ErrDependencyUnavailable)
		}
		return int(calls.Load()), nil
	})

	if err := p.RunOnce(context.Background()); err != nil {
		t.Fatalf("first cycle: %v", err)
	}
	if err := p.RunOnce(context.Background()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected upstream error, got %v", err)
	}

	got, ok := p.Latest()
	if !ok || got.Value != 1 || got.CycleID != "cycle-1" {
		t.Fatalf("stale result must remain visible, got %+v ok=%v", got, ok)
	}
	if p.Failures() != 1 {
		t.Fatalf("expected one failure, got %d", p.Failures())
	}
}

func TestPoller_PanicBecomesError(t *testing.T) {
	t.Parallel()

	p := newTestPoller(t, clockwork.NewFakeClock(), func(context.Context) (string, error) {
		panic("nil map")
	})
	if err := p.RunOnce(context.Background()); err == nil {
		t.Fatalf("expected panic to surface as error")
	}
	if _, ok := p.Latest(); ok {
		t.Fatalf("nothing should be published")
	}
}

func TestPoller_DiscardsResultAfterCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	p := newTestPoller(t, clockwork.NewFakeClock(), func(context.Context) (int, error) {
		cancel()
		return 7, nil
	})
	if err := p.RunOnce(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
	if _, ok := p.Latest(); ok {
		t.Fatalf("result of a cancelled cycle must be discarded")
	}
}

func TestPoller_RunTicksOnFakeClock(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	var calls atomic.Int32
	p := newTestPoller(t, clock, func(context.Context) (int32, error) {
		return calls.Add(1), nil
	})

	published := make(chan Published[int32], 4)
	p.OnPublish(func(_ context.Context, v Published[int32]) { published <- v })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	waitPublished := func(want int32) {
		t.Helper()
		select {
		case v := <-published:
			if v.Value != want {
				t.Fatalf("published %d, want %d", v.Value, want)
			}
		case <-ctx.Done():
			t.Fatalf("timed out waiting for cycle %d", want)
		}
	}

	waitPublished(1)
	if err := clock.BlockUntilContext(ctx, 1); err != nil {
		t.Fatalf("wait for ticker: %v", err)
	}
	clock.Advance(5 * time.Second)
	waitPublished(2)

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("run returned error: %v", err)
	}
}
