package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/fpl-live/internal/domain/activity"
	"github.com/riskibarqy/fpl-live/internal/domain/entry"
	"github.com/riskibarqy/fpl-live/internal/domain/livestat"
	"github.com/riskibarqy/fpl-live/internal/domain/upstream"
	"github.com/riskibarqy/fpl-live/internal/platform/logging"
)

const defaultFeedLimit = 200

// ActivityFeed is the published activity view. New holds only the events
// detected by the cycle that produced it.
type ActivityFeed struct {
	GameweekID int
	Events     []activity.Event
	New        []activity.Event
	Tracked    int
}

type ActivityServiceConfig struct {
	LeagueID  int64
	Workers   int
	FeedLimit int
	Rules     []activity.Rule
}

// ActivityService owns the diff state of one polling loop. Cycle must not be
// called concurrently.
type ActivityService struct {
	source upstream.Source
	refs   *ReferenceService
	repo   activity.Repository
	cfg    ActivityServiceConfig
	logger *logging.Logger

	gameweekID int
	previous   activity.Snapshot
	nextID     int64
	seeded     bool
}

func NewActivityService(
	source upstream.Source,
	refs *ReferenceService,
	repo activity.Repository,
	cfg ActivityServiceConfig,
	logger *logging.Logger,
) *ActivityService {
	if logger == nil {
		logger = logging.Default()
	}
	if len(cfg.Rules) == 0 {
		cfg.Rules = activity.DefaultRules()
	}
	if cfg.FeedLimit <= 0 {
		cfg.FeedLimit = defaultFeedLimit
	}
	return &ActivityService{
		source: source,
		refs:   refs,
		repo:   repo,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *ActivityService) Cycle(ctx context.Context) (ActivityFeed, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActivityService.Cycle")
	defer span.End()

	round, err := currentRound(s.refs)
	if err != nil {
		return ActivityFeed{}, err
	}
	gw := round.gameweek.ID

	if !s.seeded {
		maxID, err := s.repo.MaxID(ctx)
		if err != nil {
			return ActivityFeed{}, fmt.Errorf("seed activity id: %w", err)
		}
		s.nextID = maxID + 1
		s.seeded = true
	}
	if gw != s.gameweekID {
		if s.gameweekID != 0 {
			s.logger.InfoContext(ctx, "gameweek changed, resetting activity baseline", "from", s.gameweekID, "to", gw)
		}
		s.gameweekID = gw
		s.previous = nil
	}

	table, err := s.source.GetLeagueTable(ctx, s.cfg.LeagueID)
	if err != nil {
		return ActivityFeed{}, fmt.Errorf("league table %d: %w", s.cfg.LeagueID, err)
	}
	picks, err := fetchPicks(ctx, s.source, s.cfg.Workers, entryIDs(table.Entries), gw)
	if err != nil {
		return ActivityFeed{}, err
	}
	stats, err := s.source.GetLivePlayerPoints(ctx, gw)
	if err != nil {
		return ActivityFeed{}, fmt.Errorf("live points gw %d: %w", gw, err)
	}

	lines, err := s.trackedLines(round, table.Entries, picks, livestat.Index(stats))
	if err != nil {
		return ActivityFeed{}, err
	}

	res := activity.Detect(s.cfg.Rules, activity.Input{
		GameweekID: gw,
		Previous:   s.previous,
		Current:    activity.NewSnapshot(lines),
		NextID:     s.nextID,
		Now:        s.refs.now(),
	})
	if res.Active {
		if err := s.repo.Append(ctx, res.Events); err != nil {
			return ActivityFeed{}, fmt.Errorf("store activity events: %w", err)
		}
		s.logger.InfoContext(ctx, "activity detected", "gameweek", gw, "events", len(res.Events))
	}
	s.previous = res.Next
	s.nextID = res.NextID

	feed, err := s.repo.ListByGameweek(ctx, gw, s.cfg.FeedLimit)
	if err != nil {
		return ActivityFeed{}, fmt.Errorf("list activity events: %w", err)
	}

	return ActivityFeed{
		GameweekID: gw,
		Events:     feed,
		New:        res.Events,
		Tracked:    len(lines),
	}, nil
}

// trackedLines joins every player started by at least one league member with
// their live stats and reference data.
func (s *ActivityService) trackedLines(
	round liveRound,
	entries []entry.Entry,
	picks map[int64]entry.Picks,
	live map[int64]livestat.Stat,
) ([]activity.Line, error) {
	owners := make(map[int64][]string)
	for _, e := range entries {
		for _, playerID := range picks[e.ID].StarterIDs() {
			owners[playerID] = append(owners[playerID], e.ManagerName)
		}
	}

	lines := make([]activity.Line, 0, len(owners))
	for playerID, managers := range owners {
		stat, ok := live[playerID]
		if !ok {
			continue
		}
		view, err := round.playerView(playerID)
		if err != nil {
			return nil, err
		}
		sort.Strings(managers)
		lines = append(lines, activity.Line{
			PlayerID: playerID,
			WebName:  view.WebName,
			TeamName: view.TeamName,
			Position: view.Position,
			ImageURL: view.ImageURL,
			Owners:   managers,
			Stat:     stat,
		})
	}
	return lines, nil
}

// Recent reads the stored feed, newest first.
func (s *ActivityService) Recent(ctx context.Context, gameweekID, limit int) ([]activity.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ActivityService.Recent")
	defer span.End()

	if gameweekID <= 0 {
		return nil, fmt.Errorf("%w: gameweek must be > 0", ErrInvalidInput)
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must be >= 0", ErrInvalidInput)
	}
	return s.repo.ListByGameweek(ctx, gameweekID, limit)
}
