package fpl

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/fpl-live/internal/domain/entry"
	"github.com/riskibarqy/fpl-live/internal/domain/fixture"
	"github.com/riskibarqy/fpl-live/internal/domain/livestat"
	"github.com/riskibarqy/fpl-live/internal/domain/upstream"
	"github.com/riskibarqy/fpl-live/internal/platform/logging"
	"github.com/riskibarqy/fpl-live/internal/platform/resilience"
	"github.com/riskibarqy/fpl-live/internal/usecase"
	"github.com/valyala/fasthttp"
)

const (
	defaultBaseURL      = "https://fantasy.premierleague.com/api"
	defaultTimeout      = 10 * time.Second
	defaultRetryBackoff = time.Second
	maxResponseBodySize = 8 << 20
	userAgent           = "fpl-live/1.0"
)

var errFPLTransient = crerr.New("fpl transient failure")

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	Clock          clockwork.Clock
}

// Client reads the public Fantasy Premier League API.
type Client struct {
	httpClient   *fasthttp.Client
	baseURL      string
	timeout      time.Duration
	maxRetries   int
	retryBackoff time.Duration
	logger       *logging.Logger
	breaker      *resilience.CircuitBreaker
	flight       resilience.SingleFlight[[]byte]
	validate     *validator.Validate
	clock        clockwork.Clock
}

var _ upstream.Source = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                userAgent,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxResponseBodySize,
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient:   httpClient,
		baseURL:      baseURL,
		timeout:      timeout,
		maxRetries:   max(cfg.MaxRetries, 0),
		retryBackoff: backoff,
		logger:       logger,
		breaker:      cfg.CircuitBreaker.Breaker(clock),
		validate:     validator.New(),
		clock:        clock,
	}
}

func (c *Client) GetBootstrap(ctx context.Context) (upstream.Bootstrap, error) {
	var payload bootstrapPayload
	if err := c.doJSON(ctx, "/bootstrap-static/", "bootstrap data", "the current season", &payload); err != nil {
		return upstream.Bootstrap{}, err
	}
	return mapBootstrap(payload)
}

func (c *Client) GetLeagueTable(ctx context.Context, leagueID int64) (upstream.LeagueTable, error) {
	if leagueID <= 0 {
		return upstream.LeagueTable{}, fmt.Errorf("%w: league id must be > 0", usecase.ErrInvalidInput)
	}

	var payload leaguePayload
	path := "/leagues-classic/" + strconv.FormatInt(leagueID, 10) + "/standings/"
	if err := c.doJSON(ctx, path, "league standings", fmt.Sprintf("league %d", leagueID), &payload); err != nil {
		return upstream.LeagueTable{}, err
	}
	return mapLeague(leagueID, payload), nil
}

func (c *Client) GetEntryPicks(ctx context.Context, entryID int64, gameweekID int) (entry.Picks, error) {
	if entryID <= 0 || gameweekID <= 0 {
		return entry.Picks{}, fmt.Errorf("%w: entry id and gameweek id must be > 0", usecase.ErrInvalidInput)
	}

	var payload picksPayload
	path := fmt.Sprintf("/entry/%d/event/%d/picks/", entryID, gameweekID)
	if err := c.doJSON(ctx, path, "picks", fmt.Sprintf("entry %d in gameweek %d", entryID, gameweekID), &payload); err != nil {
		return entry.Picks{}, err
	}
	return mapPicks(entryID, gameweekID, payload), nil
}

func (c *Client) GetEntryPointsHistory(ctx context.Context, entryID int64) ([]entry.HistoryPoint, error) {
	if entryID <= 0 {
		return nil, fmt.Errorf("%w: entry id must be > 0", usecase.ErrInvalidInput)
	}

	var payload historyPayload
	path := "/entry/" + strconv.FormatInt(entryID, 10) + "/history/"
	if err := c.doJSON(ctx, path, "points history", fmt.Sprintf("entry %d", entryID), &payload); err != nil {
		return nil, err
	}
	return mapHistory(payload), nil
}

func (c *Client) GetLivePlayerPoints(ctx context.Context, gameweekID int) ([]livestat.Stat, error) {
	if gameweekID <= 0 {
		return nil, fmt.Errorf("%w: gameweek id must be > 0", usecase.ErrInvalidInput)
	}

	var payload livePayload
	path := "/event/" + strconv.Itoa(gameweekID) + "/live/"
	if err := c.doJSON(ctx, path, "live points", fmt.Sprintf("gameweek %d", gameweekID), &payload); err != nil {
		return nil, err
	}
	return mapLive(payload), nil
}

func (c *Client) GetFixtures(ctx context.Context, gameweekID int) ([]fixture.Fixture, error) {
	if gameweekID <= 0 {
		return nil, fmt.Errorf("%w: gameweek id must be > 0", usecase.ErrInvalidInput)
	}

	var payload fixturesPayload
	path := "/fixtures/?event=" + strconv.Itoa(gameweekID)
	if err := c.doJSON(ctx, path, "fixtures", fmt.Sprintf("gameweek %d", gameweekID), &payload); err != nil {
		return nil, err
	}
	return mapFixtures(gameweekID, payload)
}

func (c *Client) GetTransfers(ctx context.Context, entryID int64, gameweekID int) ([]entry.Transfer, error) {
	if entryID <= 0 || gameweekID <= 0 {
		return nil, fmt.Errorf("%w: entry id and gameweek id must be > 0", usecase.ErrInvalidInput)
	}

	var payload transfersPayload
	path := "/entry/" + strconv.FormatInt(entryID, 10) + "/transfers/"
	if err := c.doJSON(ctx, path, "transfers", fmt.Sprintf("entry %d", entryID), &payload); err != nil {
		return nil, err
	}
	return mapTransfers(entryID, gameweekID, payload)
}

// doJSON fetches path, decodes it into target and validates the decoded payload.
func (c *Client) doJSON(ctx context.Context, path, what, scope string, target any) error {
	if c.breaker != nil {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "fpl circuit breaker rejected request", "state", c.breaker.State(), "path", path)
			return fmt.Errorf("%w: fpl api is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + path
	raw, err, _ := c.flight.Do(fullURL, func() ([]byte, error) {
		body, reqErr := c.executeRequest(ctx, fullURL)
		if c.breaker != nil {
			if isCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return body, reqErr
	})
	if err != nil {
		var statusErr *statusError
		switch {
		case stderrors.As(err, &statusErr) && statusErr.code == fasthttp.StatusNotFound:
			return fmt.Errorf("%w: no %s found for %s", usecase.ErrNotFound, what, scope)
		case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
			return err
		default:
			return fmt.Errorf("%w: fetch %s for %s: %v", usecase.ErrDependencyUnavailable, what, scope, err)
		}
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: decode %s for %s: %v", usecase.ErrDataIntegrity, what, scope, err)
	}
	if err := c.validate.StructCtx(ctx, target); err != nil {
		return fmt.Errorf("%w: validate %s for %s: %v", usecase.ErrDataIntegrity, what, scope, err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		body, err := c.send(ctx, fullURL)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !crerr.Is(err, errFPLTransient) {
			return nil, err
		}

		if attempt == c.maxRetries {
			break
		}
		timer := c.clock.NewTimer(time.Duration(attempt+1) * c.retryBackoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.Chan():
		}
	}

	c.logger.WarnContext(ctx, "fpl request failed", "url", fullURL, "attempts", c.maxRetries+1, "error", lastErr)
	return nil, lastErr
}

func (c *Client) send(ctx context.Context, fullURL string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	if err := c.httpClient.DoDeadline(req, resp, deadline); err != nil {
		return nil, fmt.Errorf("%w: send request: %v", errFPLTransient, err)
	}

	code := resp.StatusCode()
	if code >= 200 && code < 300 {
		return append([]byte(nil), resp.Body()...), nil
	}

	statusErr := &statusError{code: code, body: abbreviateBody(resp.Body())}
	if isRetryableStatus(code) {
		return nil, crerr.Mark(statusErr, errFPLTransient)
	}
	return nil, statusErr
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("fpl status=%d body=%s", e.code, e.body)
}

func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return crerr.Is(err, errFPLTransient)
}

func isRetryableStatus(code int) bool {
	return code == fasthttp.StatusTooManyRequests || code >= fasthttp.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
