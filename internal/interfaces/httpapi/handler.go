package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fpl-live/internal/domain/activity"
	"github.com/riskibarqy/fpl-live/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-live/internal/platform/logging"
	"github.com/riskibarqy/fpl-live/internal/usecase"
)

const defaultActivityLimit = 50

// LatestView exposes the last published result of a poller.
type LatestView[T any] interface {
	Latest() (usecase.Published[T], bool)
}

// Views holds the polled views served over HTTP. A nil view answers 503.
type Views struct {
	Standings LatestView[usecase.StandingsView]
	Activity  LatestView[usecase.ActivityFeed]
	Squads    LatestView[usecase.SquadsView]
	Fixtures  LatestView[usecase.FixturesView]
	Transfers LatestView[usecase.TransfersView]
	History   LatestView[usecase.HistoryView]
}

type ReferenceService interface {
	Refresh(ctx context.Context) (usecase.RefreshResult, error)
	CurrentGameweek() (gameweek.Gameweek, error)
}

type ActivityReader interface {
	Recent(ctx context.Context, gameweekID, limit int) ([]activity.Event, error)
}

type Handler struct {
	views     Views
	refs      ReferenceService
	activity  ActivityReader
	stream    *StreamHub
	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(
	views Views,
	refs ReferenceService,
	activityReader ActivityReader,
	stream *StreamHub,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		views:     views,
		refs:      refs,
		activity:  activityReader,
		stream:    stream,
		logger:    logger,
		validator: validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetGameweek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameweek")
	defer span.End()

	gw, err := h.refs.CurrentGameweek()
	if err != nil {
		h.logger.WarnContext(ctx, "resolve current gameweek failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameweekToDTO(gw))
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings", viewAttr("standings"))
	defer span.End()

	writeLatest(ctx, w, "standings", h.views.Standings, func(v usecase.StandingsView) any {
		return standingsToDTO(v)
	})
}

func (h *Handler) GetSquads(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSquads", viewAttr("squads"))
	defer span.End()

	writeLatest(ctx, w, "squads", h.views.Squads, func(v usecase.SquadsView) any {
		return squadsToDTO(v)
	})
}

func (h *Handler) GetFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixtures", viewAttr("fixtures"))
	defer span.End()

	writeLatest(ctx, w, "fixtures", h.views.Fixtures, func(v usecase.FixturesView) any {
		return fixturesToDTO(v)
	})
}

func (h *Handler) GetTransfers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTransfers", viewAttr("transfers"))
	defer span.End()

	writeLatest(ctx, w, "transfers", h.views.Transfers, func(v usecase.TransfersView) any {
		return transfersToDTO(v)
	})
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHistory", viewAttr("history"))
	defer span.End()

	writeLatest(ctx, w, "history", h.views.History, func(v usecase.HistoryView) any {
		return historyToDTO(v)
	})
}

type listActivityRequest struct {
	Gameweek int `validate:"gte=0"`
	Limit    int `validate:"gte=1,lte=500"`
}

// ListActivity serves the live feed from the last published cycle, or a
// stored gameweek when ?gameweek= is given.
func (h *Handler) ListActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListActivity", viewAttr("activity"))
	defer span.End()

	req, err := parseListActivityRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if req.Gameweek > 0 {
		events, err := h.activity.Recent(ctx, req.Gameweek, req.Limit)
		if err != nil {
			h.logger.WarnContext(ctx, "list stored activity failed", "gameweek", req.Gameweek, "error", err)
			writeError(ctx, w, err)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, activityFeedDTO{
			Gameweek: req.Gameweek,
			Events:   activityEventsToDTO(events),
		})
		return
	}

	writeLatest(ctx, w, "activity", h.views.Activity, func(v usecase.ActivityFeed) any {
		events := v.Events
		if len(events) > req.Limit {
			events = events[:req.Limit]
		}
		return activityFeedDTO{
			Gameweek: v.GameweekID,
			Tracked:  v.Tracked,
			Events:   activityEventsToDTO(events),
		}
	})
}

func (h *Handler) StreamActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StreamActivity")
	defer span.End()

	if h.stream == nil {
		writeError(ctx, w, fmt.Errorf("%w: activity stream is disabled", usecase.ErrNotReady))
		return
	}
	// The upgrader answers failed handshakes itself.
	if err := h.stream.Serve(w, r); err != nil {
		h.logger.WarnContext(ctx, "activity stream upgrade failed", "error", err)
	}
}

func (h *Handler) RefreshReference(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshReference")
	defer span.End()

	res, err := h.refs.Refresh(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "reference refresh failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, refreshDTO(res))
}

func parseListActivityRequest(r *http.Request) (listActivityRequest, error) {
	req := listActivityRequest{Limit: defaultActivityLimit}
	query := r.URL.Query()

	if raw := strings.TrimSpace(query.Get("limit")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("%w: limit must be an integer", usecase.ErrInvalidInput)
		}
		req.Limit = v
	}
	if raw := strings.TrimSpace(query.Get("gameweek")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("%w: gameweek must be an integer", usecase.ErrInvalidInput)
		}
		req.Gameweek = v
	}
	return req, nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func writeLatest[T any](ctx context.Context, w http.ResponseWriter, name string, view LatestView[T], toDTO func(T) any) {
	if view == nil {
		writeError(ctx, w, fmt.Errorf("%w: %s view is disabled", usecase.ErrNotReady, name))
		return
	}
	published, ok := view.Latest()
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: %s has not been computed yet", usecase.ErrNotReady, name))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, publishedDTO{
		CycleID:     published.CycleID,
		PublishedAt: published.At,
		View:        toDTO(published.Value),
	})
}
