package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	"github.com/riskibarqy/fpl-live/internal/platform/id"
	"github.com/riskibarqy/fpl-live/internal/platform/logging"
	"github.com/riskibarqy/fpl-live/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
)

type StreamConfig struct {
	WriteTimeout   time.Duration
	ReadTimeout    time.Duration
	PingInterval   time.Duration
	MaxMessageSize int64
	SendBuffer     int
	AllowedOrigins []string
}

func DefaultStreamConfig() StreamConfig {
	return StreamConfig{
		WriteTimeout:   10 * time.Second,
		ReadTimeout:    60 * time.Second,
		PingInterval:   30 * time.Second,
		MaxMessageSize: 1024,
		SendBuffer:     64,
	}
}

// StreamHub pushes newly detected activity to websocket subscribers. A
// subscriber that cannot keep up is disconnected instead of blocking the rest.
type StreamHub struct {
	mu       sync.RWMutex
	clients  map[*streamClient]struct{}
	upgrader websocket.Upgrader
	cfg      StreamConfig
	ids      id.Generator
	logger   *logging.Logger
}

type streamClient struct {
	id        string
	conn      *websocket.Conn
	send      chan []byte
	closeOnce sync.Once
}

type activityStreamMessage struct {
	Type     string             `json:"type"`
	CycleID  string             `json:"cycleId"`
	Gameweek int                `json:"gameweek"`
	Events   []activityEventDTO `json:"events"`
}

func NewStreamHub(cfg StreamConfig, ids id.Generator, logger *logging.Logger) *StreamHub {
	defaults := DefaultStreamConfig()
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaults.WriteTimeout
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = defaults.ReadTimeout
	}
	if cfg.PingInterval <= 0 || cfg.PingInterval >= cfg.ReadTimeout {
		cfg.PingInterval = cfg.ReadTimeout * 9 / 10
	}
	if cfg.MaxMessageSize <= 0 {
		cfg.MaxMessageSize = defaults.MaxMessageSize
	}
	if cfg.SendBuffer <= 0 {
		cfg.SendBuffer = defaults.SendBuffer
	}
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}

	h := &StreamHub{
		clients: make(map[*streamClient]struct{}),
		cfg:     cfg,
		ids:     ids,
		logger:  logger,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

func (h *StreamHub) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(h.cfg.AllowedOrigins) == 0 || slices.Contains(h.cfg.AllowedOrigins, "*") {
		return true
	}
	return slices.Contains(h.cfg.AllowedOrigins, origin)
}

// Serve upgrades the request and keeps the subscriber until it disconnects.
func (h *StreamHub) Serve(w http.ResponseWriter, r *http.Request) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("upgrade activity stream: %w", err)
	}

	clientID, err := h.ids.NewID()
	if err != nil {
		clientID = "unknown"
	}
	c := &streamClient{
		id:   clientID,
		conn: conn,
		send: make(chan []byte, h.cfg.SendBuffer),
	}
	h.register(c)

	go h.writePump(c)
	go h.readPump(c)

	h.logger.InfoContext(r.Context(), "activity stream connected", "connection_id", c.id, "subscribers", h.Count())
	return nil
}

func (h *StreamHub) register(c *streamClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *StreamHub) unregister(c *streamClient) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()

	if ok {
		c.closeOnce.Do(func() { close(c.send) })
	}
}

func (h *StreamHub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// PublishActivity is the activity poller's publish hook. Cycles without new
// events are not broadcast.
func (h *StreamHub) PublishActivity(ctx context.Context, published usecase.Published[usecase.ActivityFeed]) {
	if len(published.Value.New) == 0 {
		return
	}
	ctx, span := startSpan(ctx, "httpapi.StreamHub.PublishActivity",
		viewAttr("activity"),
		attribute.Int("fpl.activity.new_events", len(published.Value.New)),
		attribute.Int("fpl.stream.subscribers", h.Count()),
	)
	defer span.End()

	h.Broadcast(ctx, activityStreamMessage{
		Type:     "activity",
		CycleID:  published.CycleID,
		Gameweek: published.Value.GameweekID,
		Events:   activityEventsToDTO(published.Value.New),
	})
}

func (h *StreamHub) Broadcast(ctx context.Context, message any) {
	payload, err := sonic.Marshal(message)
	if err != nil {
		h.logger.ErrorContext(ctx, "encode stream message failed", "error", err)
		return
	}

	h.mu.RLock()
	targets := make([]*streamClient, 0, len(h.clients))
	for c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		select {
		case c.send <- payload:
		default:
			h.logger.WarnContext(ctx, "stream subscriber too slow, disconnecting", "connection_id", c.id)
			h.unregister(c)
		}
	}
}

// Close disconnects every subscriber.
func (h *StreamHub) Close() {
	h.mu.RLock()
	targets := make([]*streamClient, 0, len(h.clients))
	for c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		h.unregister(c)
	}
}

func (h *StreamHub) writePump(c *streamClient) {
	ticker := time.NewTicker(h.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
		h.unregister(c)
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				h.logger.Warn("write to activity stream failed", "connection_id", c.id, "error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump only drains control frames; subscribers do not send commands.
func (h *StreamHub) readPump(c *streamClient) {
	defer func() {
		h.unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(h.cfg.MaxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(h.cfg.ReadTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(h.cfg.ReadTimeout))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("activity stream closed unexpectedly", "connection_id", c.id, "error", err)
			}
			return
		}
	}
}
