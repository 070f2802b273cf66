package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/fpl-live/internal/domain/entry"
	"github.com/riskibarqy/fpl-live/internal/domain/fixture"
	"github.com/riskibarqy/fpl-live/internal/domain/livestat"
	"github.com/riskibarqy/fpl-live/internal/domain/upstream"
	basecache "github.com/riskibarqy/fpl-live/internal/platform/cache"
)

// Source is a read-through cache over the slow-moving upstream endpoints.
// Live points, picks, fixtures and bootstrap always go to the next source.
type Source struct {
	next  upstream.Source
	cache *basecache.Store
}

var _ upstream.Source = (*Source)(nil)

func NewSource(next upstream.Source, cache *basecache.Store) *Source {
	return &Source{next: next, cache: cache}
}

func (s *Source) GetBootstrap(ctx context.Context) (upstream.Bootstrap, error) {
	return s.next.GetBootstrap(ctx)
}

func (s *Source) GetLeagueTable(ctx context.Context, leagueID int64) (upstream.LeagueTable, error) {
	key := "league:" + strconv.FormatInt(leagueID, 10)
	table, err := basecache.Load(ctx, s.cache, key, func(ctx context.Context) (upstream.LeagueTable, error) {
		return s.next.GetLeagueTable(ctx, leagueID)
	})
	if err != nil {
		return upstream.LeagueTable{}, err
	}
	table.Entries = append([]entry.Entry(nil), table.Entries...)
	return table, nil
}

func (s *Source) GetEntryPicks(ctx context.Context, entryID int64, gameweekID int) (entry.Picks, error) {
	return s.next.GetEntryPicks(ctx, entryID, gameweekID)
}

func (s *Source) GetEntryPointsHistory(ctx context.Context, entryID int64) ([]entry.HistoryPoint, error) {
	key := "history:" + strconv.FormatInt(entryID, 10)
	items, err := basecache.Load(ctx, s.cache, key, func(ctx context.Context) ([]entry.HistoryPoint, error) {
		return s.next.GetEntryPointsHistory(ctx, entryID)
	})
	if err != nil {
		return nil, err
	}
	return append([]entry.HistoryPoint(nil), items...), nil
}

func (s *Source) GetLivePlayerPoints(ctx context.Context, gameweekID int) ([]livestat.Stat, error) {
	return s.next.GetLivePlayerPoints(ctx, gameweekID)
}

func (s *Source) GetFixtures(ctx context.Context, gameweekID int) ([]fixture.Fixture, error) {
	return s.next.GetFixtures(ctx, gameweekID)
}

func (s *Source) GetTransfers(ctx context.Context, entryID int64, gameweekID int) ([]entry.Transfer, error) {
	key := "transfers:" + strconv.FormatInt(entryID, 10) + ":" + strconv.Itoa(gameweekID)
	items, err := basecache.Load(ctx, s.cache, key, func(ctx context.Context) ([]entry.Transfer, error) {
		return s.next.GetTransfers(ctx, entryID, gameweekID)
	})
	if err != nil {
		return nil, err
	}
	return append([]entry.Transfer(nil), items...), nil
}
