package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/fpl-live/external/fpl"
	"github.com/riskibarqy/fpl-live/internal/config"
	"github.com/riskibarqy/fpl-live/internal/domain/activity"
	"github.com/riskibarqy/fpl-live/internal/domain/upstream"
	"github.com/riskibarqy/fpl-live/internal/infrastructure/reference"
	cachedsource "github.com/riskibarqy/fpl-live/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fpl-live/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fpl-live/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fpl-live/internal/interfaces/httpapi"
	"github.com/riskibarqy/fpl-live/internal/platform/cache"
	idgen "github.com/riskibarqy/fpl-live/internal/platform/id"
	"github.com/riskibarqy/fpl-live/internal/platform/logging"
	"github.com/riskibarqy/fpl-live/internal/platform/resilience"
	"github.com/riskibarqy/fpl-live/internal/usecase"
	"github.com/sourcegraph/conc"
)

const referenceRefreshInterval = usecase.MaxPollInterval

type runner interface {
	Name() string
	Run(ctx context.Context) error
}

// App owns the pollers, the HTTP server and the resources they share.
type App struct {
	cfg     config.Config
	logger  *logging.Logger
	server  *http.Server
	stream  *httpapi.StreamHub
	refs    *usecase.ReferenceService
	pollers []runner
	db      *sqlx.DB
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	clock := clockwork.NewRealClock()
	ids := idgen.NewUUIDGenerator()

	source := newSource(cfg, clock, logger)

	a := &App{cfg: cfg, logger: logger}

	repo, err := a.newActivityRepository(ctx)
	if err != nil {
		return nil, err
	}

	a.refs = usecase.NewReferenceService(source, reference.NewStore(), logger.Named("reference"))
	if _, err := a.refs.Refresh(ctx); err != nil {
		// Pollers keep retrying; views answer 503 until the first refresh lands.
		logger.WarnContext(ctx, "initial reference refresh failed", "error", err)
	}

	opts := usecase.PollerOptions{Clock: clock, IDs: ids, Logger: logger}
	workers := cfg.FPLFetchWorkers

	standings := usecase.NewStandingsService(source, a.refs, cfg.FPLLeagueID, workers, logger.Named("standings"))
	activitySvc := usecase.NewActivityService(source, a.refs, repo, usecase.ActivityServiceConfig{
		LeagueID:  cfg.FPLLeagueID,
		Workers:   workers,
		FeedLimit: cfg.ActivityFeedLimit,
	}, logger.Named("activity"))
	fixtures := usecase.NewFixtureViewService(source, a.refs)
	transfers := usecase.NewTransferViewService(source, a.refs, cfg.FPLLeagueID, workers)
	history := usecase.NewHistoryService(source, cfg.FPLLeagueID, workers)

	var views httpapi.Views

	refPoller, err := usecase.NewPoller("reference", referenceRefreshInterval, a.refs.Refresh, opts)
	if err != nil {
		return nil, err
	}
	standingsPoller, err := usecase.NewPoller("standings", cfg.PollStandingsInterval, standings.Cycle, opts)
	if err != nil {
		return nil, err
	}
	activityPoller, err := usecase.NewPoller("activity", cfg.PollActivityInterval, activitySvc.Cycle, opts)
	if err != nil {
		return nil, err
	}
	fixturesPoller, err := usecase.NewPoller("fixtures", cfg.PollFixturesInterval, fixtures.Cycle, opts)
	if err != nil {
		return nil, err
	}
	transfersPoller, err := usecase.NewPoller("transfers", cfg.PollTransfersInterval, transfers.Cycle, opts)
	if err != nil {
		return nil, err
	}
	historyPoller, err := usecase.NewPoller("history", cfg.PollHistoryInterval, history.Cycle, opts)
	if err != nil {
		return nil, err
	}
	views.Standings = standingsPoller
	views.Activity = activityPoller
	views.Fixtures = fixturesPoller
	views.Transfers = transfersPoller
	views.History = historyPoller
	a.pollers = append(a.pollers, refPoller, standingsPoller, activityPoller, fixturesPoller, transfersPoller, historyPoller)

	if len(cfg.FPLH2HEntryIDs) > 0 {
		squads := usecase.NewHeadToHeadService(source, a.refs, cfg.FPLLeagueID, cfg.FPLH2HEntryIDs, workers, logger.Named("squads"))
		squadsPoller, err := usecase.NewPoller("squads", cfg.PollSquadsInterval, squads.Cycle, opts)
		if err != nil {
			return nil, err
		}
		views.Squads = squadsPoller
		a.pollers = append(a.pollers, squadsPoller)
	}

	if cfg.StreamEnabled {
		streamCfg := httpapi.DefaultStreamConfig()
		streamCfg.AllowedOrigins = cfg.CORSAllowedOrigins
		a.stream = httpapi.NewStreamHub(streamCfg, ids, logger.Named("stream"))
		activityPoller.OnPublish(a.stream.PublishActivity)
	}

	handler := httpapi.NewHandler(views, a.refs, activitySvc, a.stream, logger)
	router := httpapi.NewRouter(handler, logger, ids, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	a.server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return a, nil
}

func newSource(cfg config.Config, clock clockwork.Clock, logger *logging.Logger) upstream.Source {
	client := fpl.NewClient(fpl.ClientConfig{
		BaseURL:      cfg.FPLBaseURL,
		Timeout:      cfg.FPLTimeout,
		MaxRetries:   cfg.FPLMaxRetries,
		RetryBackoff: cfg.FPLRetryBackoff,
		Logger:       logger.Named("fpl"),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FPLCircuitEnabled,
			FailureThreshold: cfg.FPLCircuitFailureCount,
			OpenTimeout:      cfg.FPLCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FPLCircuitHalfOpenMaxReq,
		},
		Clock: clock,
	})
	if !cfg.CacheEnabled {
		return client
	}
	return cachedsource.NewSource(client, cache.NewStoreWithClock(cfg.CacheTTL, clock))
}

func (a *App) newActivityRepository(ctx context.Context) (activity.Repository, error) {
	if a.cfg.ActivityStore != config.ActivityStorePostgres {
		return memory.NewActivityRepository(), nil
	}

	db, err := openActivityDB(ctx, a.cfg)
	if err != nil {
		return nil, err
	}

	a.db = db
	a.logger.InfoContext(ctx, "activity store ready", "store", config.ActivityStorePostgres, "db", dbNameFromURL(a.cfg.DBURL))
	return postgres.NewActivityRepository(db), nil
}

// Run starts every poller and the HTTP server, and blocks until ctx is done
// and all of them have stopped.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	serverErr := make(chan error, 1)
	var wg conc.WaitGroup

	for _, p := range a.pollers {
		wg.Go(func() {
			if err := p.Run(ctx); err != nil {
				a.logger.ErrorContext(ctx, "poller exited", "poller", p.Name(), "error", err)
			}
		})
	}

	wg.Go(func() {
		a.logger.Info("http server starting", "addr", a.cfg.HTTPAddr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
			cancel()
		}
	})

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("graceful shutdown failed", "error", err)
	}
	if a.stream != nil {
		a.stream.Close()
	}
	wg.Wait()

	select {
	case err := <-serverErr:
		return fmt.Errorf("http server failed: %w", err)
	default:
		a.logger.Info("http server stopped")
		return nil
	}
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
