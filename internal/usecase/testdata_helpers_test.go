package usecase

import (
	"testing"
	"time"

	"github.com/riskibarqy/fpl-live/internal/domain/entry"
	"github.com/riskibarqy/fpl-live/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-live/internal/domain/player"
	"github.com/riskibarqy/fpl-live/internal/domain/reference"
	"github.com/riskibarqy/fpl-live/internal/domain/team"
	infraref "github.com/riskibarqy/fpl-live/internal/infrastructure/reference"
	"github.com/riskibarqy/fpl-live/internal/platform/logging"
)

var testNow = time.Date(2025, 9, 13, 15, 30, 0, 0, time.UTC)

const testGameweek = 4

// testPlayers is a full 15-man pool: ids 1..15 on four clubs, with roles
// laid out as GK, 4 DEF, 4 MID, 2 FWD, then a GK/DEF/MID/FWD bench.
func testPlayers() []player.Player {
	roles := []player.Position{
		player.PositionGoalkeeper,
		player.PositionDefender, player.PositionDefender, player.PositionDefender, player.PositionDefender,
		player.PositionMidfielder, player.PositionMidfielder, player.PositionMidfielder, player.PositionMidfielder,
		player.PositionForward, player.PositionForward,
		player.PositionGoalkeeper, player.PositionDefender, player.PositionMidfielder, player.PositionForward,
	}
	out := make([]player.Player, 0, len(roles))
	for i, role := range roles {
		id := int64(i + 1)
		out = append(out, player.Player{
			ID:       id,
			WebName:  "P" + string(rune('A'+i)),
			TeamID:   id%4 + 1,
			Position: role,
		})
	}
	return out
}

func newTestReferenceService(t *testing.T) *ReferenceService {
	t.Helper()

	teams := []team.Team{
		{ID: 1, Name: "Arsenal", Logo: team.LogoPath("Arsenal")},
		{ID: 2, Name: "Chelsea", Logo: team.LogoPath("Chelsea")},
		{ID: 3, Name: "Liverpool", Logo: team.LogoPath("Liverpool")},
		{ID: 4, Name: "Spurs", Logo: team.LogoPath("Spurs")},
	}
	gws := []gameweek.Gameweek{
		{ID: testGameweek - 1, DeadlineTime: testNow.Add(-8 * 24 * time.Hour)},
		{ID: testGameweek, DeadlineTime: testNow.Add(-24 * time.Hour)},
		{ID: testGameweek + 1, DeadlineTime: testNow.Add(6 * 24 * time.Hour)},
	}
	snap, err := reference.NewSnapshot(testPlayers(), teams, gws, testNow)
	if err != nil {
		t.Fatalf("build snapshot: %v", err)
	}

	store := infraref.NewStore()
	store.Swap(snap)
	svc := NewReferenceService(nil, store, logging.NewNop())
	svc.now = func() time.Time { return testNow }
	return svc
}

// fullSquad picks players 1..15 in order with the given captain.
func fullSquad(entryID int64, captain int64) entry.Picks {
	picks := entry.Picks{EntryID: entryID, GameweekID: testGameweek}
	for pos := 1; pos <= entry.SquadSize; pos++ {
		p := entry.Pick{PlayerID: int64(pos), Position: pos}
		if pos <= entry.StartingSize {
			p.Multiplier = 1
		}
		if int64(pos) == captain {
			p.Multiplier = 2
			p.IsCaptain = true
		}
		picks.Picks = append(picks.Picks, p)
	}
	return picks
}
