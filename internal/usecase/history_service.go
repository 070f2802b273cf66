package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/fpl-live/internal/domain/entry"
	"github.com/riskibarqy/fpl-live/internal/domain/upstream"
)

type EntryHistory struct {
	EntryID     int64
	ManagerName string
	Points      []entry.HistoryPoint
}

// HistoryRow is one gameweek with each manager's cumulative total.
type HistoryRow struct {
	GameweekID int
	Totals     map[string]int
}

type HistoryView struct {
	Entries []EntryHistory
	Rows    []HistoryRow
}

type HistoryService struct {
	source   upstream.Source
	leagueID int64
	workers  int
}

func NewHistoryService(source upstream.Source, leagueID int64, workers int) *HistoryService {
	return &HistoryService{source: source, leagueID: leagueID, workers: workers}
}

func (s *HistoryService) Cycle(ctx context.Context) (HistoryView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.Cycle")
	defer span.End()

	table, err := s.source.GetLeagueTable(ctx, s.leagueID)
	if err != nil {
		return HistoryView{}, fmt.Errorf("league table %d: %w", s.leagueID, err)
	}

	histories, err := fanOut(ctx, s.workers, entryIDs(table.Entries), func(ctx context.Context, entryID int64) ([]entry.HistoryPoint, error) {
		history, err := s.source.GetEntryPointsHistory(ctx, entryID)
		if err != nil {
			return nil, fmt.Errorf("history for entry %d: %w", entryID, err)
		}
		return history, nil
	})
	if err != nil {
		return HistoryView{}, err
	}

	view := HistoryView{Entries: make([]EntryHistory, 0, len(table.Entries))}
	rows := make(map[int]HistoryRow)
	for _, e := range table.Entries {
		points := histories[e.ID]
		view.Entries = append(view.Entries, EntryHistory{EntryID: e.ID, ManagerName: e.ManagerName, Points: points})
		for _, h := range points {
			row, ok := rows[h.GameweekID]
			if !ok {
				row = HistoryRow{GameweekID: h.GameweekID, Totals: make(map[string]int)}
				rows[h.GameweekID] = row
			}
			row.Totals[e.ManagerName] = h.TotalPoints
		}
	}

	view.Rows = make([]HistoryRow, 0, len(rows))
	for _, row := range rows {
		view.Rows = append(view.Rows, row)
	}
	sort.Slice(view.Rows, func(i, j int) bool { return view.Rows[i].GameweekID < view.Rows[j].GameweekID })

	return view, nil
}
