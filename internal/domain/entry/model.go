package entry

import (
	"errors"
	"fmt"
	"time"
)

const (
	SquadSize    = 15
	StartingSize = 11
)

var ErrMissingCaptain = errors.New("entry has no captain")

// Entry is a fantasy manager's team within a league table.
type Entry struct {
	ID          int64
	ManagerName string
	TeamName    string
	Rank        int
	TotalPoints int
}

// Pick is one player's slot in an entry's squad for a gameweek.
type Pick struct {
	PlayerID      int64
	Position      int
	Multiplier    int
	IsCaptain     bool
	IsViceCaptain bool
}

func (p Pick) IsStarter() bool {
	return p.Position >= 1 && p.Position <= StartingSize
}

// Picks is an entry's squad for one gameweek plus the upstream gameweek summary.
type Picks struct {
	EntryID     int64
	GameweekID  int
	Picks       []Pick
	Points      int
	TotalPoints int
	ActiveChip  string
}

// Captain returns the pick flagged as captain.
func (p Picks) Captain() (Pick, error) {
	for _, pick := range p.Picks {
		if pick.IsCaptain {
			return pick, nil
		}
	}
	return Pick{}, fmt.Errorf("%w: entry=%d gameweek=%d", ErrMissingCaptain, p.EntryID, p.GameweekID)
}

// StarterIDs lists player ids in positions 1..11.
func (p Picks) StarterIDs() []int64 {
	out := make([]int64, 0, StartingSize)
	for _, pick := range p.Picks {
		if pick.IsStarter() {
			out = append(out, pick.PlayerID)
		}
	}
	return out
}

// HistoryPoint is an entry's score after one gameweek.
type HistoryPoint struct {
	GameweekID  int
	Points      int
	TotalPoints int
	Rank        int
}

// TotalAt returns the cumulative total after the given gameweek, or 0 when absent.
func TotalAt(history []HistoryPoint, gameweekID int) int {
	for _, h := range history {
		if h.GameweekID == gameweekID {
			return h.TotalPoints
		}
	}
	return 0
}

// Transfer is one player swap made by an entry.
type Transfer struct {
	EntryID     int64
	GameweekID  int
	PlayerInID  int64
	PlayerOutID int64
	MadeAt      time.Time
}
