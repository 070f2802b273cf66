package activity

import (
	"sort"
	"time"
)

// Input is one diff cycle.
type Input struct {
	GameweekID int
	Previous   Snapshot
	Current    Snapshot
	NextID     int64
	Now        time.Time
}

// Result carries the events of one cycle and the snapshot to diff against next.
// Active is false when no rule matched; Events is then empty.
type Result struct {
	Events []Event
	Active bool
	Next   Snapshot
	NextID int64
}

// Detect diffs two snapshots against the rule table. It is pure: the same
// input always yields the same result.
func Detect(rules []Rule, in Input) Result {
	res := Result{Next: in.Current, NextID: in.NextID}
	if len(in.Previous) == 0 {
		return res
	}

	changes := joinChanged(in.Previous, in.Current)
	if len(changes) == 0 {
		return res
	}

	id := in.NextID
	for _, rule := range rules {
		for _, c := range changes {
			if !rule.Match(c) {
				continue
			}
			res.Events = append(res.Events, Event{
				ID:               id,
				GameweekID:       in.GameweekID,
				PlayerID:         c.PlayerID,
				PlayerName:       c.WebName,
				TeamName:         c.TeamName,
				Position:         c.Position,
				ImageURL:         c.ImageURL,
				Owners:           append([]string(nil), c.Owners...),
				Label:            rule.Label,
				Points:           rule.Points(c),
				TotalPointsAfter: c.Stat.TotalPoints,
				OccurredAt:       in.Now,
			})
			id++
		}
	}

	res.Active = len(res.Events) > 0
	res.NextID = id
	return res
}

// joinChanged inner-joins the snapshots, keeps rows whose counters moved and
// orders them by team name then player name, both descending.
func joinChanged(prev, cur Snapshot) []Change {
	out := make([]Change, 0)
	for playerID, line := range cur {
		before, ok := prev[playerID]
		if !ok || !line.Stat.CountersDiffer(before.Stat) {
			continue
		}
		out = append(out, Change{Line: line, Previous: before.Stat})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.TeamName != b.TeamName {
			return a.TeamName > b.TeamName
		}
		if a.WebName != b.WebName {
			return a.WebName > b.WebName
		}
		return a.PlayerID > b.PlayerID
	})
	return out
}
