package reference

import (
	"sync/atomic"

	domainref "github.com/riskibarqy/fpl-live/internal/domain/reference"
)

// Store holds the current reference snapshot behind an atomic pointer so
// readers never see a half-built cache.
type Store struct {
	current atomic.Pointer[domainref.Snapshot]
	version atomic.Int64
}

func NewStore() *Store {
	return &Store{}
}

// Load returns the current snapshot, or nil before the first Swap.
func (s *Store) Load() *domainref.Snapshot {
	return s.current.Load()
}

// Swap replaces the snapshot wholesale and returns the new version.
func (s *Store) Swap(snap *domainref.Snapshot) int64 {
	if snap == nil {
		return s.version.Load()
	}
	s.current.Store(snap)
	return s.version.Add(1)
}

func (s *Store) Version() int64 {
	return s.version.Load()
}
