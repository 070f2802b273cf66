package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fpl-live/internal/domain/activity"
	"github.com/riskibarqy/fpl-live/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-live/internal/domain/player"
	"github.com/riskibarqy/fpl-live/internal/domain/standing"
	"github.com/riskibarqy/fpl-live/internal/platform/id"
	"github.com/riskibarqy/fpl-live/internal/platform/logging"
	"github.com/riskibarqy/fpl-live/internal/usecase"
	"github.com/stretchr/testify/require"
)

type staticView[T any] struct {
	published usecase.Published[T]
	ok        bool
}

func (v staticView[T]) Latest() (usecase.Published[T], bool) {
	return v.published, v.ok
}

func publishedView[T any](value T) staticView[T] {
	return staticView[T]{
		published: usecase.Published[T]{
			Value:   value,
			CycleID: "cycle-1",
			At:      time.Date(2026, 10, 3, 15, 30, 0, 0, time.UTC),
		},
		ok: true,
	}
}

type stubReferences struct {
	gw        gameweek.Gameweek
	gwErr     error
	refreshed int
}

func (s *stubReferences) Refresh(context.Context) (usecase.RefreshResult, error) {
	s.refreshed++
	return usecase.RefreshResult{Version: int64(s.refreshed), Players: 700, Gameweeks: 38}, nil
}

func (s *stubReferences) CurrentGameweek() (gameweek.Gameweek, error) {
	return s.gw, s.gwErr
}

type stubActivityReader struct {
	gameweekID int
	limit      int
	events     []activity.Event
}

func (s *stubActivityReader) Recent(_ context.Context, gameweekID, limit int) ([]activity.Event, error) {
	s.gameweekID = gameweekID
	s.limit = limit
	return s.events, nil
}

func newTestRouter(t *testing.T, views Views, refs *stubReferences, reader *stubActivityReader) http.Handler {
	t.Helper()
	if refs == nil {
		refs = &stubReferences{}
	}
	if reader == nil {
		reader = &stubActivityReader{}
	}
	handler := NewHandler(views, refs, reader, nil, logging.NewNop())
	return NewRouter(handler, logging.NewNop(), id.NewUUIDGenerator(), []string{"*"}, "secret")
}

func serve(router http.Handler, method, target string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "expected data object, got %s", rec.Body.String())
	return data
}

func TestHandler_Healthz(t *testing.T) {
	t.Parallel()

	rec := serve(newTestRouter(t, Views{}, nil, nil), http.MethodGet, "/healthz", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestHandler_KeepsCallerRequestID(t *testing.T) {
	t.Parallel()

	rec := serve(newTestRouter(t, Views{}, nil, nil), http.MethodGet, "/healthz", map[string]string{requestIDHeader: "req-7"})

	require.Equal(t, "req-7", rec.Header().Get(requestIDHeader))
}

func TestHandler_GetStandings_NotReadyBeforeFirstCycle(t *testing.T) {
	t.Parallel()

	views := Views{Standings: staticView[usecase.StandingsView]{}}
	rec := serve(newTestRouter(t, views, nil, nil), http.MethodGet, "/v1/standings", nil)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Contains(t, rec.Body.String(), "notReady")
}

func TestHandler_GetStandings_DisabledView(t *testing.T) {
	t.Parallel()

	rec := serve(newTestRouter(t, Views{}, nil, nil), http.MethodGet, "/v1/standings", nil)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandler_GetStandings(t *testing.T) {
	t.Parallel()

	views := Views{Standings: publishedView(usecase.StandingsView{
		LeagueID:   314,
		LeagueName: "Office League",
		GameweekID: 7,
		Rows: []standing.Row{
			{Rank: 1, EntryID: 2, ManagerName: "Ana", TeamName: "Ana FC", CaptainName: "Salah", LivePoints: 61, TotalPoints: 480},
			{Rank: 2, EntryID: 1, ManagerName: "Ben", TeamName: "Ben United", CaptainName: "Haaland", LivePoints: 55, TotalPoints: 470},
		},
	})}
	rec := serve(newTestRouter(t, views, nil, nil), http.MethodGet, "/v1/standings", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	require.Equal(t, "cycle-1", data["cycleId"])

	view := data["view"].(map[string]any)
	require.Equal(t, "Office League", view["leagueName"])
	rows := view["rows"].([]any)
	require.Len(t, rows, 2)
	first := rows[0].(map[string]any)
	require.Equal(t, "Ana", first["managerName"])
	require.Equal(t, "Salah", first["captain"])
	require.EqualValues(t, 61, first["livePoints"])
}

func TestHandler_GetGameweek(t *testing.T) {
	t.Parallel()

	refs := &stubReferences{gw: gameweek.Gameweek{ID: 7, Name: "Gameweek 7"}}
	rec := serve(newTestRouter(t, Views{}, refs, nil), http.MethodGet, "/v1/gameweek", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	require.EqualValues(t, 7, data["id"])
	require.Equal(t, "Gameweek 7", data["name"])
}

func TestHandler_GetGameweek_BeforeRefresh(t *testing.T) {
	t.Parallel()

	refs := &stubReferences{gwErr: fmt.Errorf("%w: reference data not loaded", usecase.ErrDataIntegrity)}
	rec := serve(newTestRouter(t, Views{}, refs, nil), http.MethodGet, "/v1/gameweek", nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandler_ListActivity_TrimsLiveFeed(t *testing.T) {
	t.Parallel()

	events := []activity.Event{
		{ID: 3, GameweekID: 7, PlayerName: "Salah", Position: player.PositionMidfielder, Label: "Goal Scored", Points: 5, Owners: []string{"Ana"}},
		{ID: 2, GameweekID: 7, PlayerName: "Saka", Position: player.PositionMidfielder, Label: "Assist", Points: 3},
		{ID: 1, GameweekID: 7, PlayerName: "Raya", Position: player.PositionGoalkeeper, Label: "Save", Points: 1},
	}
	views := Views{Activity: publishedView(usecase.ActivityFeed{GameweekID: 7, Events: events, Tracked: 40})}
	rec := serve(newTestRouter(t, views, nil, nil), http.MethodGet, "/v1/activity?limit=2", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeData(t, rec)["view"].(map[string]any)
	require.EqualValues(t, 40, view["tracked"])
	got := view["events"].([]any)
	require.Len(t, got, 2)
	first := got[0].(map[string]any)
	require.Equal(t, "Goal Scored", first["event"])
	require.Equal(t, []any{"Ana"}, first["owners"])
	second := got[1].(map[string]any)
	require.Equal(t, []any{}, second["owners"])
}

func TestHandler_ListActivity_StoredGameweek(t *testing.T) {
	t.Parallel()

	reader := &stubActivityReader{events: []activity.Event{{ID: 9, GameweekID: 5, Label: "Clean Sheet"}}}
	rec := serve(newTestRouter(t, Views{}, nil, reader), http.MethodGet, "/v1/activity?gameweek=5&limit=10", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 5, reader.gameweekID)
	require.Equal(t, 10, reader.limit)
	data := decodeData(t, rec)
	require.EqualValues(t, 5, data["gameweek"])
	require.Len(t, data["events"].([]any), 1)
}

func TestHandler_ListActivity_InvalidQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
	}{
		{name: "non numeric limit", query: "limit=abc"},
		{name: "zero limit", query: "limit=0"},
		{name: "limit too large", query: "limit=501"},
		{name: "non numeric gameweek", query: "gameweek=x"},
		{name: "negative gameweek", query: "gameweek=-1"},
	}

	router := newTestRouter(t, Views{}, nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, http.MethodGet, "/v1/activity?"+tt.query, nil)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 for %q, got %d", tt.query, rec.Code)
			}
		})
	}
}

func TestHandler_GetFixtures(t *testing.T) {
	t.Parallel()

	home, away := 2, 1
	views := Views{Fixtures: publishedView(usecase.FixturesView{
		GameweekID: 7,
		Fixtures: []usecase.FixtureRow{
			{ID: 70, Status: "Finished", HomeTeam: "Arsenal", HomeScore: &home, AwayTeam: "Chelsea", AwayScore: &away},
			{ID: 71, Status: "Not Started", HomeTeam: "Everton", AwayTeam: "Fulham"},
		},
	})}
	rec := serve(newTestRouter(t, views, nil, nil), http.MethodGet, "/v1/fixtures", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	fixtures := decodeData(t, rec)["view"].(map[string]any)["fixtures"].([]any)
	require.Len(t, fixtures, 2)
	require.EqualValues(t, 2, fixtures[0].(map[string]any)["homeScore"])
	require.Nil(t, fixtures[1].(map[string]any)["homeScore"])
}

func TestHandler_RefreshReference_RequiresToken(t *testing.T) {
	t.Parallel()

	refs := &stubReferences{}
	router := newTestRouter(t, Views{}, refs, nil)

	rec := serve(router, http.MethodPost, "/v1/internal/reference/refresh", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Zero(t, refs.refreshed)

	rec = serve(router, http.MethodPost, "/v1/internal/reference/refresh", map[string]string{"X-Internal-Job-Token": "secret"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, refs.refreshed)
	require.EqualValues(t, 700, decodeData(t, rec)["players"])
}

func TestHandler_StreamDisabled(t *testing.T) {
	t.Parallel()

	rec := serve(newTestRouter(t, Views{}, nil, nil), http.MethodGet, "/v1/activity/stream", nil)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRecoverPanic(t *testing.T) {
	t.Parallel()

	handler := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/standings", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
