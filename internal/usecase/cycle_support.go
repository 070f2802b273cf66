package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/fpl-live/internal/domain/entry"
	"github.com/riskibarqy/fpl-live/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-live/internal/domain/reference"
	"github.com/riskibarqy/fpl-live/internal/domain/upstream"
)

// liveRound is what every cycle starts from.
type liveRound struct {
	snap     *reference.Snapshot
	gameweek gameweek.Gameweek
}

func currentRound(refs *ReferenceService) (liveRound, error) {
	snap, err := refs.Current()
	if err != nil {
		return liveRound{}, err
	}
	gw, err := snap.CurrentGameweek(refs.now())
	if err != nil {
		return liveRound{}, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return liveRound{snap: snap, gameweek: gw}, nil
}

// playerView joins a player id against reference data. A miss is a data
// integrity failure for the whole cycle.
func (r liveRound) playerView(playerID int64) (reference.PlayerView, error) {
	view, err := r.snap.Player(playerID)
	if err != nil {
		if errors.Is(err, reference.ErrUnknownPlayer) {
			return reference.PlayerView{}, fmt.Errorf("%w: %v", ErrDataIntegrity, err)
		}
		return reference.PlayerView{}, err
	}
	return view, nil
}

func (r liveRound) playerName(playerID int64) (string, error) {
	view, err := r.playerView(playerID)
	if err != nil {
		return "", err
	}
	return view.WebName, nil
}

func entryIDs(entries []entry.Entry) []int64 {
	out := make([]int64, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func fetchPicks(ctx context.Context, source upstream.Source, workers int, ids []int64, gameweekID int) (map[int64]entry.Picks, error) {
	return fanOut(ctx, workers, ids, func(ctx context.Context, entryID int64) (entry.Picks, error) {
		picks, err := source.GetEntryPicks(ctx, entryID, gameweekID)
		if err != nil {
			return entry.Picks{}, fmt.Errorf("picks for entry %d: %w", entryID, err)
		}
		return picks, nil
	})
}
