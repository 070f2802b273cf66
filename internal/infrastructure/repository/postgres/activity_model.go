package postgres

import (
	"time"

	"github.com/lib/pq"
	"github.com/riskibarqy/fpl-live/internal/domain/activity"
	"github.com/riskibarqy/fpl-live/internal/domain/player"
)

const activityEventsTable = "activity_events"

type activityEventTableModel struct {
	ID               int64          `db:"id"`
	GameweekID       int            `db:"gameweek_id"`
	PlayerID         int64          `db:"player_id"`
	PlayerName       string         `db:"player_name"`
	TeamName         string         `db:"team_name"`
	Position         string         `db:"position"`
	ImageURL         string         `db:"img_url"`
	Owners           pq.StringArray `db:"owners"`
	Label            string         `db:"event_label"`
	Points           int64          `db:"points_delta"`
	TotalPointsAfter int            `db:"total_points_after"`
	OccurredAt       time.Time      `db:"occurred_at"`
}

func activityEventToRow(e activity.Event) activityEventTableModel {
	owners := e.Owners
	if owners == nil {
		owners = []string{}
	}
	return activityEventTableModel{
		ID:               e.ID,
		GameweekID:       e.GameweekID,
		PlayerID:         e.PlayerID,
		PlayerName:       e.PlayerName,
		TeamName:         e.TeamName,
		Position:         string(e.Position),
		ImageURL:         e.ImageURL,
		Owners:           pq.StringArray(owners),
		Label:            e.Label,
		Points:           e.Points,
		TotalPointsAfter: e.TotalPointsAfter,
		OccurredAt:       e.OccurredAt.UTC(),
	}
}

func activityEventFromRow(row activityEventTableModel) activity.Event {
	return activity.Event{
		ID:               row.ID,
		GameweekID:       row.GameweekID,
		PlayerID:         row.PlayerID,
		PlayerName:       row.PlayerName,
		TeamName:         row.TeamName,
		Position:         player.Position(row.Position),
		ImageURL:         row.ImageURL,
		Owners:           []string(row.Owners),
		Label:            row.Label,
		Points:           row.Points,
		TotalPointsAfter: row.TotalPointsAfter,
		OccurredAt:       row.OccurredAt,
	}
}
