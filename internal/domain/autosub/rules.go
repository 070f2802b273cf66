package autosub

import "github.com/riskibarqy/fpl-live/internal/domain/player"

// Rules stores the formation minimums a scoring XI must keep.
type Rules struct {
	MinByPosition map[player.Position]int
}

func DefaultRules() Rules {
	return Rules{
		MinByPosition: map[player.Position]int{
			player.PositionGoalkeeper: 1,
			player.PositionDefender:   3,
			player.PositionMidfielder: 3,
			player.PositionForward:    1,
		},
	}
}

// attempt is one candidate position a substitute may replace. When quorum is
// set, the swap is only legal once that position already has its minimum
// number of played starters.
type attempt struct {
	position player.Position
	quorum   bool
}

// attemptsFor lists, in priority order, which starters a used substitute may
// replace.
func attemptsFor(sub player.Position) []attempt {
	switch sub {
	case player.PositionGoalkeeper:
		return []attempt{
			{position: player.PositionGoalkeeper},
		}
	case player.PositionDefender:
		return []attempt{
			{position: player.PositionDefender},
			{position: player.PositionMidfielder, quorum: true},
			{position: player.PositionForward, quorum: true},
		}
	case player.PositionMidfielder:
		return []attempt{
			{position: player.PositionDefender, quorum: true},
			{position: player.PositionMidfielder},
			{position: player.PositionForward, quorum: true},
		}
	case player.PositionForward:
		return []attempt{
			{position: player.PositionDefender, quorum: true},
			{position: player.PositionMidfielder, quorum: true},
			{position: player.PositionForward},
		}
	default:
		return nil
	}
}
