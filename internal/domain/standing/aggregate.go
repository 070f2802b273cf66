package standing

import (
	"errors"
	"fmt"
	"sort"

	"github.com/riskibarqy/fpl-live/internal/domain/entry"
	"github.com/riskibarqy/fpl-live/internal/domain/livestat"
)

var ErrDuplicateEntry = errors.New("duplicate entry in standings input")

// NameFunc resolves a player's display name.
type NameFunc func(playerID int64) (string, error)

// Input is one league member with the data needed to score its gameweek.
type Input struct {
	Entry         entry.Entry
	PreviousTotal int
	Picks         []entry.Pick
}

// Row is one line of the live table.
type Row struct {
	Rank        int
	EntryID     int64
	ManagerName string
	TeamName    string
	CaptainName string
	LivePoints  int
	TotalPoints int
}

// Table is the ranked result. MissingCaptain lists entries whose picks carry no
// captain; their rows have an empty CaptainName.
type Table struct {
	Rows           []Row
	MissingCaptain []int64
}

// Aggregate scores every entry as previous total plus the sum of live points
// times multiplier, ranked by total desc then manager name asc.
func Aggregate(inputs []Input, live map[int64]livestat.Stat, names NameFunc) (Table, error) {
	if names == nil {
		return Table{}, fmt.Errorf("name lookup is required")
	}

	table := Table{Rows: make([]Row, 0, len(inputs))}
	seen := make(map[int64]struct{}, len(inputs))
	for _, in := range inputs {
		if _, dup := seen[in.Entry.ID]; dup {
			return Table{}, fmt.Errorf("%w: %d", ErrDuplicateEntry, in.Entry.ID)
		}
		seen[in.Entry.ID] = struct{}{}

		row := Row{
			EntryID:     in.Entry.ID,
			ManagerName: in.Entry.ManagerName,
			TeamName:    in.Entry.TeamName,
			LivePoints:  LivePoints(in.Picks, live),
		}
		row.TotalPoints = in.PreviousTotal + row.LivePoints

		captain, err := (entry.Picks{EntryID: in.Entry.ID, Picks: in.Picks}).Captain()
		if err != nil {
			table.MissingCaptain = append(table.MissingCaptain, in.Entry.ID)
		} else {
			name, err := names(captain.PlayerID)
			if err != nil {
				return Table{}, fmt.Errorf("captain of entry %d: %w", in.Entry.ID, err)
			}
			row.CaptainName = name
		}

		table.Rows = append(table.Rows, row)
	}

	sort.SliceStable(table.Rows, func(i, j int) bool {
		a, b := table.Rows[i], table.Rows[j]
		if a.TotalPoints != b.TotalPoints {
			return a.TotalPoints > b.TotalPoints
		}
		return a.ManagerName < b.ManagerName
	})
	for i := range table.Rows {
		table.Rows[i].Rank = i + 1
	}

	return table, nil
}

// LivePoints sums total_points times multiplier over the picks. Players missing
// from the live snapshot score zero.
func LivePoints(picks []entry.Pick, live map[int64]livestat.Stat) int {
	total := 0
	for _, p := range picks {
		total += live[p.PlayerID].TotalPoints * p.Multiplier
	}
	return total
}
