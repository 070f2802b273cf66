package reference

import (
	"sync"
	"testing"
	"time"

	domainref "github.com/riskibarqy/fpl-live/internal/domain/reference"
	"github.com/riskibarqy/fpl-live/internal/domain/team"
)

func TestStore_SwapIsWholesale(t *testing.T) {
	t.Parallel()

	store := NewStore()
	if store.Load() != nil {
		t.Fatalf("empty store must return nil")
	}

	build := func(name string) *domainref.Snapshot {
		snap, err := domainref.NewSnapshot(nil, []team.Team{{ID: 1, Name: name}}, nil, time.Now())
		if err != nil {
			t.Fatalf("build snapshot: %v", err)
		}
		return snap
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if snap := store.Load(); snap != nil {
					if _, err := snap.Team(1); err != nil {
						t.Errorf("reader saw partial snapshot: %v", err)
						return
					}
				}
			}
		}()
	}
	for _, name := range []string{"Arsenal", "Chelsea", "Spurs"} {
		store.Swap(build(name))
	}
	wg.Wait()

	got, _ := store.Load().Team(1)
	if got.Name != "Spurs" || store.Version() != 3 {
		t.Fatalf("unexpected final state: %s v%d", got.Name, store.Version())
	}
	if store.Swap(nil) != 3 {
		t.Fatalf("nil swap must be ignored")
	}
}
