package upstream

import (
	"context"

	"github.com/riskibarqy/fpl-live/internal/domain/entry"
	"github.com/riskibarqy/fpl-live/internal/domain/fixture"
	"github.com/riskibarqy/fpl-live/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-live/internal/domain/livestat"
	"github.com/riskibarqy/fpl-live/internal/domain/player"
	"github.com/riskibarqy/fpl-live/internal/domain/team"
)

// Bootstrap is the static game data published once per season and revised
// between gameweeks.
type Bootstrap struct {
	Players   []player.Player
	Teams     []team.Team
	Gameweeks []gameweek.Gameweek
}

// LeagueTable is a classic league with its members.
type LeagueTable struct {
	LeagueID int64
	Name     string
	Entries  []entry.Entry
}

// Source is the read side of the fantasy game API.
type Source interface {
	GetBootstrap(ctx context.Context) (Bootstrap, error)
	GetLeagueTable(ctx context.Context, leagueID int64) (LeagueTable, error)
	GetEntryPicks(ctx context.Context, entryID int64, gameweekID int) (entry.Picks, error)
	GetEntryPointsHistory(ctx context.Context, entryID int64) ([]entry.HistoryPoint, error)
	GetLivePlayerPoints(ctx context.Context, gameweekID int) ([]livestat.Stat, error)
	GetFixtures(ctx context.Context, gameweekID int) ([]fixture.Fixture, error)
	GetTransfers(ctx context.Context, entryID int64, gameweekID int) ([]entry.Transfer, error)
}
