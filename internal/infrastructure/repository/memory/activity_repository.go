package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/fpl-live/internal/domain/activity"
)

// ActivityRepository keeps the event feed in process. Events are stored in
// id order and returned newest first.
type ActivityRepository struct {
	mu     sync.RWMutex
	events []activity.Event
	maxID  int64
}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{}
}

func (r *ActivityRepository) Append(_ context.Context, events []activity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// The batch is stored whole or not at all.
	last := r.maxID
	for _, e := range events {
		if e.ID <= last {
			return fmt.Errorf("activity event id %d is not after %d", e.ID, last)
		}
		last = e.ID
	}
	r.events = append(r.events, events...)
	r.maxID = last
	return nil
}

func (r *ActivityRepository) ListByGameweek(_ context.Context, gameweekID, limit int) ([]activity.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]activity.Event, 0)
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].GameweekID != gameweekID {
			continue
		}
		out = append(out, r.events[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *ActivityRepository) MaxID(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.maxID, nil
}
