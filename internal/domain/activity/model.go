package activity

import (
	"time"

	"github.com/riskibarqy/fpl-live/internal/domain/livestat"
	"github.com/riskibarqy/fpl-live/internal/domain/player"
)

// Line is a tracked player's live stats joined with reference data.
type Line struct {
	PlayerID int64
	WebName  string
	TeamName string
	Position player.Position
	ImageURL string
	Owners   []string
	Stat     livestat.Stat
}

// Snapshot is one poll's lines keyed by player id.
type Snapshot map[int64]Line

func NewSnapshot(lines []Line) Snapshot {
	out := make(Snapshot, len(lines))
	for _, l := range lines {
		out[l.PlayerID] = l
	}
	return out
}

// Change pairs a player's current line with the previous poll's counters.
type Change struct {
	Line
	Previous livestat.Stat
}

// Event is a detected scoring event. Immutable once created.
type Event struct {
	ID               int64
	GameweekID       int
	PlayerID         int64
	PlayerName       string
	TeamName         string
	Position         player.Position
	ImageURL         string
	Owners           []string
	Label            string
	Points           int64
	TotalPointsAfter int
	OccurredAt       time.Time
}

// Clock renders the detection time as HH:MM.
func (e Event) Clock() string {
	return e.OccurredAt.Format("15:04")
}
