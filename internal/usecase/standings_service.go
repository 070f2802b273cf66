package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fpl-live/internal/domain/entry"
	"github.com/riskibarqy/fpl-live/internal/domain/livestat"
	"github.com/riskibarqy/fpl-live/internal/domain/standing"
	"github.com/riskibarqy/fpl-live/internal/domain/upstream"
	"github.com/riskibarqy/fpl-live/internal/platform/logging"
)

type StandingsView struct {
	LeagueID   int64
	LeagueName string
	GameweekID int
	Rows       []standing.Row
}

type StandingsService struct {
	source   upstream.Source
	refs     *ReferenceService
	leagueID int64
	workers  int
	logger   *logging.Logger
}

func NewStandingsService(source upstream.Source, refs *ReferenceService, leagueID int64, workers int, logger *logging.Logger) *StandingsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StandingsService{
		source:   source,
		refs:     refs,
		leagueID: leagueID,
		workers:  workers,
		logger:   logger,
	}
}

type entryScoring struct {
	previousTotal int
	picks         entry.Picks
}

// Cycle recomputes the live league table.
func (s *StandingsService) Cycle(ctx context.Context) (StandingsView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Cycle")
	defer span.End()

	round, err := currentRound(s.refs)
	if err != nil {
		return StandingsView{}, err
	}
	gw := round.gameweek.ID

	table, err := s.source.GetLeagueTable(ctx, s.leagueID)
	if err != nil {
		return StandingsView{}, fmt.Errorf("league table %d: %w", s.leagueID, err)
	}

	scoring, err := fanOut(ctx, s.workers, entryIDs(table.Entries), func(ctx context.Context, entryID int64) (entryScoring, error) {
		history, err := s.source.GetEntryPointsHistory(ctx, entryID)
		if err != nil {
			return entryScoring{}, fmt.Errorf("history for entry %d: %w", entryID, err)
		}
		picks, err := s.source.GetEntryPicks(ctx, entryID, gw)
		if err != nil {
			return entryScoring{}, fmt.Errorf("picks for entry %d: %w", entryID, err)
		}
		return entryScoring{previousTotal: entry.TotalAt(history, gw-1), picks: picks}, nil
	})
	if err != nil {
		return StandingsView{}, err
	}

	stats, err := s.source.GetLivePlayerPoints(ctx, gw)
	if err != nil {
		return StandingsView{}, fmt.Errorf("live points gw %d: %w", gw, err)
	}

	inputs := make([]standing.Input, 0, len(table.Entries))
	for _, e := range table.Entries {
		sc := scoring[e.ID]
		inputs = append(inputs, standing.Input{
			Entry:         e,
			PreviousTotal: sc.previousTotal,
			Picks:         sc.picks.Picks,
		})
	}

	result, err := standing.Aggregate(inputs, livestat.Index(stats), round.playerName)
	if err != nil {
		return StandingsView{}, err
	}
	for _, entryID := range result.MissingCaptain {
		s.logger.WarnContext(ctx, "entry has no captain, omitting captain name",
			"entry_id", entryID,
			"gameweek", gw,
			"error_class", errorClass(ErrDataIntegrity),
		)
	}

	return StandingsView{
		LeagueID:   table.LeagueID,
		LeagueName: table.Name,
		GameweekID: gw,
		Rows:       result.Rows,
	}, nil
}
