package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/fpl-live/internal/platform/id"
	"github.com/riskibarqy/fpl-live/internal/platform/logging"
	"github.com/sourcegraph/conc/panics"
)

const (
	MinPollInterval = 5 * time.Second
	MaxPollInterval = 60 * time.Second
)

// Cycle computes one view from a full fetch and transform pass.
type Cycle[T any] func(ctx context.Context) (T, error)

// Published is a completed cycle result.
type Published[T any] struct {
	Value   T
	CycleID string
	At      time.Time
}

type PollerOptions struct {
	Clock  clockwork.Clock
	IDs    id.Generator
	Logger *logging.Logger
}

// Poller runs a Cycle immediately and then on every tick, publishing whole
// results. A failed cycle leaves the previous result in place.
type Poller[T any] struct {
	name     string
	interval time.Duration
	cycle    Cycle[T]
	clock    clockwork.Clock
	ids      id.Generator
	logger   *logging.Logger

	latest atomic.Pointer[Published[T]]

	hooksMu sync.RWMutex
	hooks   []func(context.Context, Published[T])

	failures atomic.Int64
}

func NewPoller[T any](name string, interval time.Duration, cycle Cycle[T], opts PollerOptions) (*Poller[T], error) {
	if cycle == nil {
		return nil, fmt.Errorf("%w: poller %s has no cycle", ErrInvalidInput, name)
	}
	if interval < MinPollInterval || interval > MaxPollInterval {
		return nil, fmt.Errorf("%w: poller %s interval %s outside [%s, %s]", ErrInvalidInput, name, interval, MinPollInterval, MaxPollInterval)
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.IDs == nil {
		opts.IDs = id.NewUUIDGenerator()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}

	return &Poller[T]{
		name:     name,
		interval: interval,
		cycle:    cycle,
		clock:    opts.Clock,
		ids:      opts.IDs,
		logger:   opts.Logger.Named("poller." + name).With("poller", name),
	}, nil
}

func (p *Poller[T]) Name() string {
	return p.name
}

// OnPublish registers a hook invoked after each successful cycle.
func (p *Poller[T]) OnPublish(hook func(context.Context, Published[T])) {
	if hook == nil {
		return
	}
	p.hooksMu.Lock()
	p.hooks = append(p.hooks, hook)
	p.hooksMu.Unlock()
}

// Latest returns the most recent published result.
func (p *Poller[T]) Latest() (Published[T], bool) {
	v := p.latest.Load()
	if v == nil {
		return Published[T]{}, false
	}
	return *v, true
}

func (p *Poller[T]) Failures() int64 {
	return p.failures.Load()
}

// Run blocks until ctx is done. Ticks that arrive while a cycle is running are
// dropped by the ticker, so cycles never overlap.
func (p *Poller[T]) Run(ctx context.Context) error {
	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.InfoContext(ctx, "poller started", "interval", p.interval.String())
	_ = p.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			p.logger.InfoContext(ctx, "poller stopped")
			return nil
		case <-ticker.Chan():
			_ = p.RunOnce(ctx)
		}
	}
}

// RunOnce executes a single cycle and publishes its result.
func (p *Poller[T]) RunOnce(ctx context.Context) error {
	cycleID, err := p.ids.NewID()
	if err != nil {
		cycleID = "unknown"
	}

	ctx, span := startCycleSpan(ctx, p.name, cycleID)
	started := p.clock.Now()
	value, err := p.runGuarded(ctx)
	defer func() { endCycleSpan(span, err) }()
	elapsed := p.clock.Since(started)

	if err != nil {
		p.failures.Add(1)
		p.logger.WarnContext(ctx, "poll cycle skipped",
			"cycle_id", cycleID,
			"error_class", errorClass(err),
			"duration", elapsed.String(),
			"error", err,
		)
		return err
	}
	if ctx.Err() != nil {
		p.logger.DebugContext(ctx, "poll cycle discarded after cancellation", "cycle_id", cycleID)
		return ctx.Err()
	}

	published := Published[T]{Value: value, CycleID: cycleID, At: p.clock.Now()}
	p.latest.Store(&published)

	p.hooksMu.RLock()
	hooks := append([]func(context.Context, Published[T])(nil), p.hooks...)
	p.hooksMu.RUnlock()
	for _, hook := range hooks {
		hook(ctx, published)
	}

	p.logger.DebugContext(ctx, "poll cycle published", "cycle_id", cycleID, "duration", elapsed.String())
	return nil
}

func (p *Poller[T]) runGuarded(ctx context.Context) (T, error) {
	var (
		value T
		err   error
		pc    panics.Catcher
	)
	pc.Try(func() {
		value, err = p.cycle(ctx)
	})
	if recovered := pc.Recovered(); recovered != nil {
		var zero T
		return zero, fmt.Errorf("poll cycle panicked: %w", recovered.AsError())
	}
	return value, err
}
