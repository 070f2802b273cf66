package reference

import (
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/fpl-live/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-live/internal/domain/player"
	"github.com/riskibarqy/fpl-live/internal/domain/team"
)

func TestNewSnapshot_JoinsPlayersWithTeams(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	snap, err := NewSnapshot(
		[]player.Player{{ID: 7, WebName: "Saka", TeamID: 1, Position: player.PositionMidfielder}},
		[]team.Team{{ID: 1, Name: "Arsenal", Logo: team.LogoPath("Arsenal")}},
		[]gameweek.Gameweek{{ID: 2, DeadlineTime: now.Add(-time.Hour)}, {ID: 1, DeadlineTime: now.Add(-8 * 24 * time.Hour)}},
		now,
	)
	if err != nil {
		t.Fatalf("build snapshot: %v", err)
	}

	view, err := snap.Player(7)
	if err != nil {
		t.Fatalf("lookup player: %v", err)
	}
	if view.TeamName != "Arsenal" || view.TeamLogo != "/logos/arsenal.png" {
		t.Fatalf("unexpected join: %+v", view)
	}
	if _, err := snap.Player(8); !errors.Is(err, ErrUnknownPlayer) {
		t.Fatalf("expected ErrUnknownPlayer, got %v", err)
	}

	gw, err := snap.CurrentGameweek(now)
	if err != nil || gw.ID != 2 {
		t.Fatalf("unexpected current gameweek %+v %v", gw, err)
	}
	if gws := snap.Gameweeks(); gws[0].ID != 1 {
		t.Fatalf("gameweeks must be sorted by id")
	}
}

func TestNewSnapshot_RejectsDanglingTeam(t *testing.T) {
	t.Parallel()

	_, err := NewSnapshot(
		[]player.Player{{ID: 7, WebName: "Saka", TeamID: 99, Position: player.PositionMidfielder}},
		[]team.Team{{ID: 1, Name: "Arsenal"}},
		nil,
		time.Now(),
	)
	if !errors.Is(err, ErrUnknownTeam) {
		t.Fatalf("expected ErrUnknownTeam, got %v", err)
	}
}
