package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/fpl-live/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-live/internal/domain/reference"
	"github.com/riskibarqy/fpl-live/internal/domain/upstream"
	"github.com/riskibarqy/fpl-live/internal/platform/logging"
)

// ReferenceStore swaps immutable reference snapshots.
type ReferenceStore interface {
	Load() *reference.Snapshot
	Swap(snap *reference.Snapshot) int64
}

type RefreshResult struct {
	Version   int64     `json:"version"`
	Players   int       `json:"players"`
	Gameweeks int       `json:"gameweeks"`
	BuiltAt   time.Time `json:"built_at"`
}

type ReferenceService struct {
	source upstream.Source
	store  ReferenceStore
	logger *logging.Logger
	now    func() time.Time
}

func NewReferenceService(source upstream.Source, store ReferenceStore, logger *logging.Logger) *ReferenceService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ReferenceService{
		source: source,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Refresh rebuilds the reference snapshot from the bootstrap payload.
func (s *ReferenceService) Refresh(ctx context.Context) (RefreshResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceService.Refresh")
	defer span.End()

	boot, err := s.source.GetBootstrap(ctx)
	if err != nil {
		return RefreshResult{}, fmt.Errorf("fetch bootstrap: %w", err)
	}

	snap, err := reference.NewSnapshot(boot.Players, boot.Teams, boot.Gameweeks, s.now())
	if err != nil {
		return RefreshResult{}, fmt.Errorf("%w: build reference snapshot: %v", ErrDataIntegrity, err)
	}

	version := s.store.Swap(snap)
	s.logger.InfoContext(ctx, "reference data refreshed",
		"version", version,
		"players", snap.PlayerCount(),
		"gameweeks", len(boot.Gameweeks),
	)

	return RefreshResult{
		Version:   version,
		Players:   snap.PlayerCount(),
		Gameweeks: len(boot.Gameweeks),
		BuiltAt:   snap.BuiltAt(),
	}, nil
}

// Current returns the snapshot in use.
func (s *ReferenceService) Current() (*reference.Snapshot, error) {
	snap := s.store.Load()
	if snap == nil {
		return nil, fmt.Errorf("%w: reference data not loaded", ErrDataIntegrity)
	}
	return snap, nil
}

// CurrentGameweek resolves the live gameweek against the clock.
func (s *ReferenceService) CurrentGameweek() (gameweek.Gameweek, error) {
	snap, err := s.Current()
	if err != nil {
		return gameweek.Gameweek{}, err
	}
	gw, err := snap.CurrentGameweek(s.now())
	if err != nil {
		return gameweek.Gameweek{}, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return gw, nil
}
