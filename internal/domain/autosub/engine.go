package autosub

import (
	"errors"
	"fmt"
	"sort"

	"github.com/riskibarqy/fpl-live/internal/domain/entry"
	"github.com/riskibarqy/fpl-live/internal/domain/player"
)

var ErrInvalidSquad = errors.New("invalid squad")

// Slot is one pick joined with live minutes, points and the club's remaining
// fixture count.
type Slot struct {
	PlayerID          int64
	WebName           string
	TeamID            int64
	Role              player.Position
	Position          int
	Multiplier        int
	IsCaptain         bool
	IsSub             bool
	Minutes           int
	TotalPoints       int
	RemainingFixtures int
}

// Unused reports a player who did not play and whose club has nothing left to play.
func (s Slot) Unused() bool {
	return s.Minutes == 0 && s.RemainingFixtures == 0
}

func (s Slot) Played() bool {
	return s.Minutes > 0
}

func (s Slot) Points() int {
	return s.TotalPoints * s.Multiplier
}

func (s Slot) starter() bool {
	return s.Position >= 1 && s.Position <= entry.StartingSize
}

// Result is the squad after substitutions.
type Result struct {
	Starters []Slot
	Bench    []Slot
	Points   int
	Swaps    int
}

// Apply runs automatic substitutions over a 15-player squad. The input is not
// modified. A substitute that finds no legal swap stays on the bench.
func Apply(squad []Slot, rules Rules) (Result, error) {
	slots, err := normalize(squad)
	if err != nil {
		return Result{}, err
	}

	bench := make([]int, 0, entry.SquadSize-entry.StartingSize)
	for i, s := range slots {
		if !s.starter() {
			bench = append(bench, i)
		}
	}

	res := Result{}
	for _, b := range bench {
		if slots[b].Unused() {
			continue
		}
		for _, a := range attemptsFor(slots[b].Role) {
			if a.quorum && playedStarters(slots, a.position) < rules.MinByPosition[a.position] {
				continue
			}
			target := firstUnusedStarter(slots, a.position)
			if target < 0 {
				continue
			}
			swap(slots, b, target)
			res.Swaps++
			break
		}
	}

	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Position < slots[j].Position })
	for _, s := range slots {
		if s.starter() {
			res.Starters = append(res.Starters, s)
			res.Points += s.Points()
			continue
		}
		res.Bench = append(res.Bench, s)
	}

	return res, nil
}

func normalize(squad []Slot) ([]Slot, error) {
	if len(squad) != entry.SquadSize {
		return nil, fmt.Errorf("%w: expected %d picks, got %d", ErrInvalidSquad, entry.SquadSize, len(squad))
	}

	slots := append([]Slot(nil), squad...)
	seen := make(map[int]struct{}, len(slots))
	for _, s := range slots {
		if s.Position < 1 || s.Position > entry.SquadSize {
			return nil, fmt.Errorf("%w: position %d out of range", ErrInvalidSquad, s.Position)
		}
		if _, dup := seen[s.Position]; dup {
			return nil, fmt.Errorf("%w: duplicate position %d", ErrInvalidSquad, s.Position)
		}
		seen[s.Position] = struct{}{}
		if attemptsFor(s.Role) == nil {
			return nil, fmt.Errorf("%w: player %d has unknown role %q", ErrInvalidSquad, s.PlayerID, s.Role)
		}
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].Position < slots[j].Position })
	return slots, nil
}

func playedStarters(slots []Slot, role player.Position) int {
	n := 0
	for _, s := range slots {
		if s.starter() && s.Role == role && s.Played() {
			n++
		}
	}
	return n
}

// firstUnusedStarter scans the XI in position order. It returns -1 when none.
func firstUnusedStarter(slots []Slot, role player.Position) int {
	best := -1
	for i, s := range slots {
		if !s.starter() || s.Role != role || !s.Unused() {
			continue
		}
		if best < 0 || s.Position < slots[best].Position {
			best = i
		}
	}
	return best
}

func swap(slots []Slot, sub, out int) {
	slots[sub].Position, slots[out].Position = slots[out].Position, slots[sub].Position
	slots[sub].Multiplier = 1
	slots[sub].IsSub = true
	slots[out].Multiplier = 0
}
