package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/fpl-live/internal/domain/entry"
	"github.com/riskibarqy/fpl-live/internal/domain/livestat"
	"github.com/riskibarqy/fpl-live/internal/domain/upstream"
	upstreammock "github.com/riskibarqy/fpl-live/internal/mocks/domain/upstream"
	basecache "github.com/riskibarqy/fpl-live/internal/platform/cache"
	"github.com/stretchr/testify/mock"
)

func TestSource_CachesLeagueTableAndHistory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := upstreammock.NewSource(t)
	src := NewSource(next, basecache.NewStore(time.Minute))

	next.On("GetLeagueTable", mock.Anything, int64(314)).
		Return(upstream.LeagueTable{LeagueID: 314, Entries: []entry.Entry{{ID: 1}}}, nil).
		Once()
	next.On("GetEntryPointsHistory", mock.Anything, int64(1)).
		Return([]entry.HistoryPoint{{GameweekID: 1, TotalPoints: 70}}, nil).
		Once()

	for i := 0; i < 3; i++ {
		table, err := src.GetLeagueTable(ctx, 314)
		if err != nil {
			t.Fatalf("league table: %v", err)
		}
		if len(table.Entries) != 1 {
			t.Fatalf("unexpected entries: %+v", table.Entries)
		}
		history, err := src.GetEntryPointsHistory(ctx, 1)
		if err != nil {
			t.Fatalf("history: %v", err)
		}
		history[0].TotalPoints = -1
	}

	history, _ := src.GetEntryPointsHistory(ctx, 1)
	if history[0].TotalPoints != 70 {
		t.Fatalf("callers must not mutate the cached slice")
	}
}

func TestSource_LivePointsBypassCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := upstreammock.NewSource(t)
	src := NewSource(next, basecache.NewStore(time.Minute))

	next.On("GetLivePlayerPoints", mock.Anything, 4).
		Return([]livestat.Stat{{PlayerID: 1}}, nil).
		Twice()

	for i := 0; i < 2; i++ {
		if _, err := src.GetLivePlayerPoints(ctx, 4); err != nil {
			t.Fatalf("live points: %v", err)
		}
	}
}
