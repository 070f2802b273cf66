package fixture

import (
	"sort"
	"strconv"
	"time"
)

const StatusFullTime = "FT"

const kickoffLayout = "Mon 02 Jan 15:04"

// Fixture represents one match of a gameweek.
type Fixture struct {
	ID                  int64
	GameweekID          int
	HomeTeamID          int64
	AwayTeamID          int64
	HomeScore           *int
	AwayScore           *int
	KickoffAt           *time.Time
	Minutes             int
	Started             bool
	FinishedProvisional bool
}

// Status renders "FT", the running minute ("59'") or the kickoff time. It is
// empty while no kickoff is scheduled.
func (f Fixture) Status() string {
	if f.FinishedProvisional {
		return StatusFullTime
	}
	if f.Started {
		return strconv.Itoa(f.Minutes) + "'"
	}
	if f.KickoffAt == nil {
		return ""
	}
	return f.KickoffAt.Format(kickoffLayout)
}

func (f Fixture) Remaining() bool {
	return f.Status() != StatusFullTime
}

// RemainingByTeam counts not-yet-finished fixtures per club. Clubs without a
// fixture are absent and read as zero.
func RemainingByTeam(fixtures []Fixture) map[int64]int {
	out := make(map[int64]int, len(fixtures)*2)
	for _, f := range fixtures {
		if !f.Remaining() {
			continue
		}
		out[f.HomeTeamID]++
		out[f.AwayTeamID]++
	}
	return out
}

// SortByKickoff orders fixtures by kickoff, unscheduled last, then by id.
func SortByKickoff(fixtures []Fixture) {
	sort.SliceStable(fixtures, func(i, j int) bool {
		a, b := fixtures[i], fixtures[j]
		switch {
		case a.KickoffAt == nil && b.KickoffAt == nil:
			return a.ID < b.ID
		case a.KickoffAt == nil:
			return false
		case b.KickoffAt == nil:
			return true
		case !a.KickoffAt.Equal(*b.KickoffAt):
			return a.KickoffAt.Before(*b.KickoffAt)
		default:
			return a.ID < b.ID
		}
	})
}
