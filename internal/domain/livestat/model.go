package livestat

// Stat holds one player's live counters for a gameweek.
type Stat struct {
	PlayerID        int64
	Minutes         int
	GoalsScored     int
	Assists         int
	CleanSheets     int
	GoalsConceded   int
	OwnGoals        int
	PenaltiesSaved  int
	PenaltiesMissed int
	YellowCards     int
	RedCards        int
	Saves           int
	Bonus           int
	TotalPoints     int
}

// CountersDiffer reports whether any tracked counter changed.
func (s Stat) CountersDiffer(other Stat) bool {
	return s.Minutes != other.Minutes ||
		s.GoalsScored != other.GoalsScored ||
		s.Assists != other.Assists ||
		s.CleanSheets != other.CleanSheets ||
		s.GoalsConceded != other.GoalsConceded ||
		s.OwnGoals != other.OwnGoals ||
		s.PenaltiesSaved != other.PenaltiesSaved ||
		s.PenaltiesMissed != other.PenaltiesMissed ||
		s.YellowCards != other.YellowCards ||
		s.RedCards != other.RedCards ||
		s.Saves != other.Saves ||
		s.Bonus != other.Bonus ||
		s.TotalPoints != other.TotalPoints
}

// Index keys stats by player id. Later duplicates win.
func Index(stats []Stat) map[int64]Stat {
	out := make(map[int64]Stat, len(stats))
	for _, s := range stats {
		out[s.PlayerID] = s
	}
	return out
}
