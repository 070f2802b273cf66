package fpl

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fpl-live/internal/domain/entry"
	"github.com/riskibarqy/fpl-live/internal/domain/fixture"
	"github.com/riskibarqy/fpl-live/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-live/internal/domain/livestat"
	"github.com/riskibarqy/fpl-live/internal/domain/player"
	"github.com/riskibarqy/fpl-live/internal/domain/team"
	"github.com/riskibarqy/fpl-live/internal/domain/upstream"
	"github.com/riskibarqy/fpl-live/internal/usecase"
)

func mapBootstrap(payload bootstrapPayload) (upstream.Bootstrap, error) {
	out := upstream.Bootstrap{
		Players:   make([]player.Player, 0, len(payload.Elements)),
		Teams:     make([]team.Team, 0, len(payload.Teams)),
		Gameweeks: make([]gameweek.Gameweek, 0, len(payload.Events)),
	}

	for _, item := range payload.Teams {
		out.Teams = append(out.Teams, team.Team{
			ID:    item.ID,
			Name:  strings.TrimSpace(item.Name),
			Short: strings.TrimSpace(item.ShortName),
			Logo:  team.LogoPath(item.Name),
		})
	}

	for _, item := range payload.Elements {
		position, err := player.PositionFromElementType(item.ElementType)
		if err != nil {
			return upstream.Bootstrap{}, fmt.Errorf("%w: player %d: %v", usecase.ErrDataIntegrity, item.ID, err)
		}
		out.Players = append(out.Players, player.Player{
			ID:       item.ID,
			WebName:  strings.TrimSpace(item.WebName),
			TeamID:   item.Team,
			Position: position,
			ImageURL: player.ImageURLFromPhoto(item.Photo),
		})
	}

	for _, item := range payload.Events {
		deadline, err := parseTime(item.DeadlineTime)
		if err != nil {
			return upstream.Bootstrap{}, fmt.Errorf("%w: gameweek %d deadline: %v", usecase.ErrDataIntegrity, item.ID, err)
		}
		out.Gameweeks = append(out.Gameweeks, gameweek.Gameweek{
			ID:           item.ID,
			Name:         item.Name,
			DeadlineTime: deadline,
			Finished:     item.Finished,
		})
	}
	gameweek.SortByID(out.Gameweeks)

	return out, nil
}

func mapLeague(leagueID int64, payload leaguePayload) upstream.LeagueTable {
	out := upstream.LeagueTable{
		LeagueID: leagueID,
		Name:     payload.League.Name,
		Entries:  make([]entry.Entry, 0, len(payload.Standings.Results)),
	}
	for _, item := range payload.Standings.Results {
		out.Entries = append(out.Entries, entry.Entry{
			ID:          item.Entry,
			ManagerName: strings.TrimSpace(item.PlayerName),
			TeamName:    strings.TrimSpace(item.EntryName),
			Rank:        item.Rank,
			TotalPoints: item.Total,
		})
	}
	return out
}

func mapPicks(entryID int64, gameweekID int, payload picksPayload) entry.Picks {
	out := entry.Picks{
		EntryID:     entryID,
		GameweekID:  gameweekID,
		Picks:       make([]entry.Pick, 0, len(payload.Picks)),
		Points:      payload.EntryHistory.Points,
		TotalPoints: payload.EntryHistory.TotalPoints,
		ActiveChip:  payload.ActiveChip,
	}
	for _, item := range payload.Picks {
		out.Picks = append(out.Picks, entry.Pick{
			PlayerID:      item.Element,
			Position:      item.Position,
			Multiplier:    item.Multiplier,
			IsCaptain:     item.IsCaptain,
			IsViceCaptain: item.IsViceCaptain,
		})
	}
	return out
}

func mapHistory(payload historyPayload) []entry.HistoryPoint {
	out := make([]entry.HistoryPoint, 0, len(payload.Current))
	for _, item := range payload.Current {
		out = append(out, entry.HistoryPoint{
			GameweekID:  item.Event,
			Points:      item.Points,
			TotalPoints: item.TotalPoints,
			Rank:        item.Rank,
		})
	}
	return out
}

func mapLive(payload livePayload) []livestat.Stat {
	out := make([]livestat.Stat, 0, len(payload.Elements))
	for _, item := range payload.Elements {
		s := item.Stats
		out = append(out, livestat.Stat{
			PlayerID:        item.ID,
			Minutes:         s.Minutes,
			GoalsScored:     s.GoalsScored,
			Assists:         s.Assists,
			CleanSheets:     s.CleanSheets,
			GoalsConceded:   s.GoalsConceded,
			OwnGoals:        s.OwnGoals,
			PenaltiesSaved:  s.PenaltiesSaved,
			PenaltiesMissed: s.PenaltiesMissed,
			YellowCards:     s.YellowCards,
			RedCards:        s.RedCards,
			Saves:           s.Saves,
			Bonus:           s.Bonus,
			TotalPoints:     s.TotalPoints,
		})
	}
	return out
}

func mapFixtures(gameweekID int, payload fixturesPayload) ([]fixture.Fixture, error) {
	out := make([]fixture.Fixture, 0, len(payload.Items))
	for _, item := range payload.Items {
		if item.Event != nil && *item.Event != gameweekID {
			continue
		}

		f := fixture.Fixture{
			ID:                  item.ID,
			GameweekID:          gameweekID,
			HomeTeamID:          item.TeamH,
			AwayTeamID:          item.TeamA,
			HomeScore:           item.TeamHScore,
			AwayScore:           item.TeamAScore,
			Minutes:             item.Minutes,
			FinishedProvisional: item.FinishedProvisional,
		}
		if item.Started != nil {
			f.Started = *item.Started
		}
		if item.KickoffTime != nil && strings.TrimSpace(*item.KickoffTime) != "" {
			kickoff, err := parseTime(*item.KickoffTime)
			if err != nil {
				return nil, fmt.Errorf("%w: fixture %d kickoff: %v", usecase.ErrDataIntegrity, item.ID, err)
			}
			f.KickoffAt = &kickoff
		}
		out = append(out, f)
	}
	return out, nil
}

func mapTransfers(entryID int64, gameweekID int, payload transfersPayload) ([]entry.Transfer, error) {
	out := make([]entry.Transfer, 0, 2)
	for _, item := range payload.Items {
		if item.Event != gameweekID {
			continue
		}
		madeAt, err := parseTime(item.Time)
		if err != nil {
			return nil, fmt.Errorf("%w: transfer time for entry %d: %v", usecase.ErrDataIntegrity, entryID, err)
		}
		out = append(out, entry.Transfer{
			EntryID:     entryID,
			GameweekID:  item.Event,
			PlayerInID:  item.ElementIn,
			PlayerOutID: item.ElementOut,
			MadeAt:      madeAt,
		})
	}
	return out, nil
}

func parseTime(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, err
	}
	return parsed.UTC(), nil
}
