package gameweek

import (
	"errors"
	"sort"
	"time"
)

var ErrNoCurrentGameweek = errors.New("no gameweek has started yet")

// Gameweek is one scoring round.
type Gameweek struct {
	ID           int
	Name         string
	DeadlineTime time.Time
	Finished     bool
}

// Current returns the gameweek with the latest deadline not later than now.
func Current(gameweeks []Gameweek, now time.Time) (Gameweek, error) {
	var (
		best  Gameweek
		found bool
	)
	for _, gw := range gameweeks {
		if gw.DeadlineTime.After(now) {
			continue
		}
		if !found || gw.DeadlineTime.After(best.DeadlineTime) {
			best = gw
			found = true
		}
	}
	if !found {
		return Gameweek{}, ErrNoCurrentGameweek
	}
	return best, nil
}

// SortByID orders gameweeks ascending in place.
func SortByID(gameweeks []Gameweek) {
	sort.Slice(gameweeks, func(i, j int) bool { return gameweeks[i].ID < gameweeks[j].ID })
}
