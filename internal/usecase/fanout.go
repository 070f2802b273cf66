package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

const maxFanOutWorkers = 16

// fanOut runs fn for every key on a bounded pool. The first failure cancels
// the remaining calls and is returned; no partial result is returned with it.
func fanOut[K comparable, V any](
	ctx context.Context,
	workers int,
	keys []K,
	fn func(ctx context.Context, key K) (V, error),
) (map[K]V, error) {
	out := make(map[K]V, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool, err := ants.NewPool(normalizeWorkerCount(workers, len(keys)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu       sync.Mutex
		firstErr error
		wg       sync.WaitGroup
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
		mu.Unlock()
	}

	for _, key := range keys {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}

			value, err := fn(ctx, key)
			if err != nil {
				fail(err)
				return
			}

			mu.Lock()
			out[key] = value
			mu.Unlock()
		}); err != nil {
			wg.Done()
			fail(fmt.Errorf("submit task to worker pool: %w", err))
			break
		}
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func normalizeWorkerCount(value, taskCount int) int {
	if value <= 0 {
		value = 1
	}
	if value > maxFanOutWorkers {
		value = maxFanOutWorkers
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
