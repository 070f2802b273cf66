package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/fpl-live/internal/domain/fixture"
	"github.com/riskibarqy/fpl-live/internal/domain/upstream"
)

type FixtureRow struct {
	ID        int64
	KickoffAt *time.Time
	Status    string
	HomeTeam  string
	HomeLogo  string
	HomeScore *int
	AwayTeam  string
	AwayLogo  string
	AwayScore *int
}

type FixturesView struct {
	GameweekID int
	Fixtures   []FixtureRow
}

type FixtureViewService struct {
	source upstream.Source
	refs   *ReferenceService
}

func NewFixtureViewService(source upstream.Source, refs *ReferenceService) *FixtureViewService {
	return &FixtureViewService{source: source, refs: refs}
}

func (s *FixtureViewService) Cycle(ctx context.Context) (FixturesView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureViewService.Cycle")
	defer span.End()

	round, err := currentRound(s.refs)
	if err != nil {
		return FixturesView{}, err
	}
	gw := round.gameweek.ID

	fixtures, err := s.source.GetFixtures(ctx, gw)
	if err != nil {
		return FixturesView{}, fmt.Errorf("fixtures gw %d: %w", gw, err)
	}
	fixture.SortByKickoff(fixtures)

	rows := make([]FixtureRow, 0, len(fixtures))
	for _, f := range fixtures {
		home, err := round.snap.Team(f.HomeTeamID)
		if err != nil {
			return FixturesView{}, fmt.Errorf("%w: fixture %d: %v", ErrDataIntegrity, f.ID, err)
		}
		away, err := round.snap.Team(f.AwayTeamID)
		if err != nil {
			return FixturesView{}, fmt.Errorf("%w: fixture %d: %v", ErrDataIntegrity, f.ID, err)
		}
		rows = append(rows, FixtureRow{
			ID:        f.ID,
			KickoffAt: f.KickoffAt,
			Status:    f.Status(),
			HomeTeam:  home.Name,
			HomeLogo:  home.Logo,
			HomeScore: f.HomeScore,
			AwayTeam:  away.Name,
			AwayLogo:  away.Logo,
			AwayScore: f.AwayScore,
		})
	}

	return FixturesView{GameweekID: gw, Fixtures: rows}, nil
}
