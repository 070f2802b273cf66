package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fpl-live/internal/domain/autosub"
	"github.com/riskibarqy/fpl-live/internal/domain/entry"
	"github.com/riskibarqy/fpl-live/internal/domain/fixture"
	"github.com/riskibarqy/fpl-live/internal/domain/livestat"
	"github.com/riskibarqy/fpl-live/internal/domain/upstream"
	"github.com/riskibarqy/fpl-live/internal/platform/logging"
)

// ScoringSquad is one entry's squad after automatic substitutions.
type ScoringSquad struct {
	EntryID     int64
	ManagerName string
	TeamName    string
	Starters    []autosub.Slot
	Bench       []autosub.Slot
	Points      int
	Swaps       int
}

type SquadsView struct {
	GameweekID int
	Squads     []ScoringSquad
}

type HeadToHeadService struct {
	source   upstream.Source
	refs     *ReferenceService
	leagueID int64
	entryIDs []int64
	workers  int
	rules    autosub.Rules
	logger   *logging.Logger
}

func NewHeadToHeadService(
	source upstream.Source,
	refs *ReferenceService,
	leagueID int64,
	entryIDs []int64,
	workers int,
	logger *logging.Logger,
) *HeadToHeadService {
	if logger == nil {
		logger = logging.Default()
	}
	return &HeadToHeadService{
		source:   source,
		refs:     refs,
		leagueID: leagueID,
		entryIDs: append([]int64(nil), entryIDs...),
		workers:  workers,
		rules:    autosub.DefaultRules(),
		logger:   logger,
	}
}

func (s *HeadToHeadService) Cycle(ctx context.Context) (SquadsView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HeadToHeadService.Cycle")
	defer span.End()

	if len(s.entryIDs) == 0 {
		return SquadsView{}, fmt.Errorf("%w: no head-to-head entries configured", ErrInvalidInput)
	}

	round, err := currentRound(s.refs)
	if err != nil {
		return SquadsView{}, err
	}
	gw := round.gameweek.ID

	fixtures, err := s.source.GetFixtures(ctx, gw)
	if err != nil {
		return SquadsView{}, fmt.Errorf("fixtures gw %d: %w", gw, err)
	}
	stats, err := s.source.GetLivePlayerPoints(ctx, gw)
	if err != nil {
		return SquadsView{}, fmt.Errorf("live points gw %d: %w", gw, err)
	}
	picks, err := fetchPicks(ctx, s.source, s.workers, s.entryIDs, gw)
	if err != nil {
		return SquadsView{}, err
	}

	managers := s.managerNames(ctx)
	remaining := fixture.RemainingByTeam(fixtures)
	live := livestat.Index(stats)

	view := SquadsView{GameweekID: gw, Squads: make([]ScoringSquad, 0, len(s.entryIDs))}
	for _, entryID := range s.entryIDs {
		slots, err := s.slots(round, picks[entryID], live, remaining)
		if err != nil {
			return SquadsView{}, fmt.Errorf("entry %d: %w", entryID, err)
		}
		res, err := autosub.Apply(slots, s.rules)
		if err != nil {
			return SquadsView{}, fmt.Errorf("%w: entry %d: %v", ErrDataIntegrity, entryID, err)
		}

		known := managers[entryID]
		view.Squads = append(view.Squads, ScoringSquad{
			EntryID:     entryID,
			ManagerName: known.ManagerName,
			TeamName:    known.TeamName,
			Starters:    res.Starters,
			Bench:       res.Bench,
			Points:      res.Points,
			Swaps:       res.Swaps,
		})
	}

	return view, nil
}

func (s *HeadToHeadService) slots(
	round liveRound,
	picks entry.Picks,
	live map[int64]livestat.Stat,
	remaining map[int64]int,
) ([]autosub.Slot, error) {
	out := make([]autosub.Slot, 0, len(picks.Picks))
	for _, p := range picks.Picks {
		view, err := round.playerView(p.PlayerID)
		if err != nil {
			return nil, err
		}
		stat := live[p.PlayerID]
		out = append(out, autosub.Slot{
			PlayerID:          p.PlayerID,
			WebName:           view.WebName,
			TeamID:            view.TeamID,
			Role:              view.Position,
			Position:          p.Position,
			Multiplier:        p.Multiplier,
			IsCaptain:         p.IsCaptain,
			Minutes:           stat.Minutes,
			TotalPoints:       stat.TotalPoints,
			RemainingFixtures: remaining[view.TeamID],
		})
	}
	return out, nil
}

// managerNames labels squads from the league table when the entries are
// members. A failed lookup only costs the labels.
func (s *HeadToHeadService) managerNames(ctx context.Context) map[int64]entry.Entry {
	out := make(map[int64]entry.Entry)
	if s.leagueID <= 0 {
		return out
	}
	table, err := s.source.GetLeagueTable(ctx, s.leagueID)
	if err != nil {
		s.logger.WarnContext(ctx, "league table unavailable for squad labels", "league_id", s.leagueID, "error", err)
		return out
	}
	for _, e := range table.Entries {
		out[e.ID] = e
	}
	return out
}
