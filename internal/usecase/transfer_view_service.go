package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/fpl-live/internal/domain/entry"
	"github.com/riskibarqy/fpl-live/internal/domain/upstream"
)

type TransferRow struct {
	EntryID     int64
	ManagerName string
	PlayerIn    string
	PlayerOut   string
	MadeAt      time.Time
}

type TransfersView struct {
	GameweekID int
	Transfers  []TransferRow
}

type TransferViewService struct {
	source   upstream.Source
	refs     *ReferenceService
	leagueID int64
	workers  int
}

func NewTransferViewService(source upstream.Source, refs *ReferenceService, leagueID int64, workers int) *TransferViewService {
	return &TransferViewService{source: source, refs: refs, leagueID: leagueID, workers: workers}
}

func (s *TransferViewService) Cycle(ctx context.Context) (TransfersView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferViewService.Cycle")
	defer span.End()

	round, err := currentRound(s.refs)
	if err != nil {
		return TransfersView{}, err
	}
	gw := round.gameweek.ID

	table, err := s.source.GetLeagueTable(ctx, s.leagueID)
	if err != nil {
		return TransfersView{}, fmt.Errorf("league table %d: %w", s.leagueID, err)
	}

	byEntry, err := fanOut(ctx, s.workers, entryIDs(table.Entries), func(ctx context.Context, entryID int64) ([]entry.Transfer, error) {
		transfers, err := s.source.GetTransfers(ctx, entryID, gw)
		if err != nil {
			return nil, fmt.Errorf("transfers for entry %d: %w", entryID, err)
		}
		return transfers, nil
	})
	if err != nil {
		return TransfersView{}, err
	}

	rows := make([]TransferRow, 0)
	for _, e := range table.Entries {
		for _, tr := range byEntry[e.ID] {
			in, err := round.playerName(tr.PlayerInID)
			if err != nil {
				return TransfersView{}, err
			}
			out, err := round.playerName(tr.PlayerOutID)
			if err != nil {
				return TransfersView{}, err
			}
			rows = append(rows, TransferRow{
				EntryID:     e.ID,
				ManagerName: e.ManagerName,
				PlayerIn:    in,
				PlayerOut:   out,
				MadeAt:      tr.MadeAt,
			})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ManagerName != rows[j].ManagerName {
			return rows[i].ManagerName < rows[j].ManagerName
		}
		return rows[i].MadeAt.Before(rows[j].MadeAt)
	})

	return TransfersView{GameweekID: gw, Transfers: rows}, nil
}
