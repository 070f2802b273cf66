package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/fpl-live/internal/domain/entry"
	"github.com/riskibarqy/fpl-live/internal/domain/fixture"
	"github.com/riskibarqy/fpl-live/internal/domain/upstream"
	upstreammock "github.com/riskibarqy/fpl-live/internal/mocks/domain/upstream"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestFixtureViewService_Cycle_JoinsTeamsAndSortsByKickoff(t *testing.T) {
	t.Parallel()

	early := testNow.Add(-2 * time.Hour)
	late := testNow.Add(2 * time.Hour)
	source := upstreammock.NewSource(t)
	source.On("GetFixtures", mock.Anything, testGameweek).Return([]fixture.Fixture{
		{ID: 8, HomeTeamID: 3, AwayTeamID: 4, KickoffAt: &late},
		{ID: 7, HomeTeamID: 1, AwayTeamID: 2, KickoffAt: &early, HomeScore: intPtr(1), AwayScore: intPtr(0), FinishedProvisional: true},
	}, nil).Once()

	view, err := NewFixtureViewService(source, newTestReferenceService(t)).Cycle(context.Background())
	require.NoError(t, err)
	require.Len(t, view.Fixtures, 2)
	require.Equal(t, int64(7), view.Fixtures[0].ID)
	require.Equal(t, "FT", view.Fixtures[0].Status)
	require.Equal(t, "Arsenal", view.Fixtures[0].HomeTeam)
	require.Equal(t, "/logos/chelsea.png", view.Fixtures[0].AwayLogo)
	require.Equal(t, "Liverpool", view.Fixtures[1].HomeTeam)
}

func TestFixtureViewService_Cycle_UnknownTeamIsDataIntegrity(t *testing.T) {
	t.Parallel()

	source := upstreammock.NewSource(t)
	source.On("GetFixtures", mock.Anything, testGameweek).Return([]fixture.Fixture{
		{ID: 9, HomeTeamID: 1, AwayTeamID: 42},
	}, nil).Once()

	_, err := NewFixtureViewService(source, newTestReferenceService(t)).Cycle(context.Background())
	if !errors.Is(err, ErrDataIntegrity) {
		t.Fatalf("expected ErrDataIntegrity, got %v", err)
	}
}

func TestTransferViewService_Cycle_SortsByManagerThenTime(t *testing.T) {
	t.Parallel()

	source := upstreammock.NewSource(t)
	source.On("GetLeagueTable", mock.Anything, int64(314)).Return(upstream.LeagueTable{
		Entries: []entry.Entry{{ID: 1, ManagerName: "Ben"}, {ID: 2, ManagerName: "Ana"}},
	}, nil).Once()
	source.On("GetTransfers", mock.Anything, int64(1), testGameweek).Return([]entry.Transfer{
		{EntryID: 1, PlayerInID: 3, PlayerOutID: 4, MadeAt: testNow.Add(-time.Hour)},
	}, nil).Once()
	source.On("GetTransfers", mock.Anything, int64(2), testGameweek).Return([]entry.Transfer{
		{EntryID: 2, PlayerInID: 5, PlayerOutID: 6, MadeAt: testNow.Add(-time.Hour)},
		{EntryID: 2, PlayerInID: 7, PlayerOutID: 8, MadeAt: testNow.Add(-3 * time.Hour)},
	}, nil).Once()

	view, err := NewTransferViewService(source, newTestReferenceService(t), 314, 2).Cycle(context.Background())
	require.NoError(t, err)
	require.Len(t, view.Transfers, 3)
	require.Equal(t, "Ana", view.Transfers[0].ManagerName)
	require.Equal(t, "PG", view.Transfers[0].PlayerIn)
	require.Equal(t, "PH", view.Transfers[0].PlayerOut)
	require.Equal(t, "PE", view.Transfers[1].PlayerIn)
	require.Equal(t, "Ben", view.Transfers[2].ManagerName)
}

func TestHistoryService_Cycle_PivotsTotalsByGameweek(t *testing.T) {
	t.Parallel()

	source := upstreammock.NewSource(t)
	source.On("GetLeagueTable", mock.Anything, int64(314)).Return(upstream.LeagueTable{
		Entries: []entry.Entry{{ID: 1, ManagerName: "Ana"}, {ID: 2, ManagerName: "Ben"}},
	}, nil).Once()
	source.On("GetEntryPointsHistory", mock.Anything, int64(1)).Return([]entry.HistoryPoint{
		{GameweekID: 2, TotalPoints: 110},
		{GameweekID: 1, TotalPoints: 60},
	}, nil).Once()
	source.On("GetEntryPointsHistory", mock.Anything, int64(2)).Return([]entry.HistoryPoint{
		{GameweekID: 2, TotalPoints: 95},
	}, nil).Once()

	view, err := NewHistoryService(source, 314, 2).Cycle(context.Background())
	require.NoError(t, err)
	require.Len(t, view.Entries, 2)
	require.Len(t, view.Rows, 2)
	require.Equal(t, 1, view.Rows[0].GameweekID)
	require.Equal(t, map[string]int{"Ana": 60}, view.Rows[0].Totals)
	require.Equal(t, map[string]int{"Ana": 110, "Ben": 95}, view.Rows[1].Totals)
}

func TestHistoryService_Cycle_EntryFailureAbortsCycle(t *testing.T) {
	t.Parallel()

	source := upstreammock.NewSource(t)
	source.On("GetLeagueTable", mock.Anything, int64(314)).Return(upstream.LeagueTable{
		Entries: []entry.Entry{{ID: 1, ManagerName: "Ana"}},
	}, nil).Once()
	source.On("GetEntryPointsHistory", mock.Anything, int64(1)).Return(nil, ErrDependencyUnavailable).Once()

	_, err := NewHistoryService(source, 314, 2).Cycle(context.Background())
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
