package activity

import "github.com/riskibarqy/fpl-live/internal/domain/player"

// Rule maps one kind of counter change to an event.
type Rule struct {
	Label  string
	Match  func(Change) bool
	Points func(Change) int64
}

var (
	goalPoints = map[player.Position]int64{
		player.PositionGoalkeeper: 10,
		player.PositionDefender:   6,
		player.PositionMidfielder: 5,
		player.PositionForward:    4,
	}
	cleanSheetPoints = map[player.Position]int64{
		player.PositionGoalkeeper: 4,
		player.PositionDefender:   4,
		player.PositionMidfielder: 1,
	}
)

func fixed(points int64) func(Change) int64 {
	return func(Change) int64 { return points }
}

func earnsCleanSheet(c Change) bool {
	_, ok := cleanSheetPoints[c.Position]
	return ok
}

// DefaultRules returns the scoring event table in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Label:  "Played 60 Minutes",
			Match:  func(c Change) bool { return c.Previous.Minutes <= 60 && c.Stat.Minutes > 60 },
			Points: fixed(1),
		},
		{
			Label: "Clean Sheet",
			Match: func(c Change) bool {
				return c.Stat.CleanSheets > c.Previous.CleanSheets && earnsCleanSheet(c)
			},
			Points: func(c Change) int64 { return cleanSheetPoints[c.Position] },
		},
		{
			Label:  "Goal Scored",
			Match:  func(c Change) bool { return c.Stat.GoalsScored > c.Previous.GoalsScored },
			Points: func(c Change) int64 { return goalPoints[c.Position] },
		},
		{
			Label:  "Goal Assisted",
			Match:  func(c Change) bool { return c.Stat.Assists > c.Previous.Assists },
			Points: fixed(3),
		},
		{
			Label:  "Penalty Missed",
			Match:  func(c Change) bool { return c.Stat.PenaltiesMissed > c.Previous.PenaltiesMissed },
			Points: fixed(-2),
		},
		{
			Label:  "Own Goal Scored",
			Match:  func(c Change) bool { return c.Stat.OwnGoals > c.Previous.OwnGoals },
			Points: fixed(-2),
		},
		{
			Label: "Lost Clean Sheet",
			Match: func(c Change) bool {
				return c.Stat.CleanSheets < c.Previous.CleanSheets && earnsCleanSheet(c)
			},
			Points: func(c Change) int64 { return -cleanSheetPoints[c.Position] },
		},
		{
			Label: "3 Shots Saved",
			Match: func(c Change) bool {
				return c.Stat.Saves > c.Previous.Saves && c.Stat.Saves%3 == 0
			},
			Points: fixed(1),
		},
		{
			Label: "2 Goals Conceded",
			Match: func(c Change) bool {
				return c.Stat.GoalsConceded > c.Previous.GoalsConceded && c.Stat.GoalsConceded%2 == 0
			},
			Points: fixed(-1),
		},
		{
			Label:  "Penalty Saved",
			Match:  func(c Change) bool { return c.Stat.PenaltiesSaved > c.Previous.PenaltiesSaved },
			Points: fixed(5),
		},
		{
			Label:  "Yellow Card",
			Match:  func(c Change) bool { return c.Stat.YellowCards > c.Previous.YellowCards },
			Points: fixed(-1),
		},
		{
			Label:  "Red Card",
			Match:  func(c Change) bool { return c.Stat.RedCards > c.Previous.RedCards },
			Points: fixed(-3),
		},
		{
			// awards the running bonus value, not the increase
			Label:  "Bonus",
			Match:  func(c Change) bool { return c.Stat.Bonus > c.Previous.Bonus },
			Points: func(c Change) int64 { return int64(c.Stat.Bonus) },
		},
	}
}
