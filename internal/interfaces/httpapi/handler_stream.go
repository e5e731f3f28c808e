package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	"github.com/riskibarqy/mock-draft/internal/usecase"
)

type StreamConfig struct {
	WriteWait      time.Duration
	PongWait       time.Duration
	PingPeriod     time.Duration
	MaxMessageSize int64
	// AllowedOrigins gates the websocket handshake; "*" accepts any origin.
	AllowedOrigins []string
}

func DefaultStreamConfig() StreamConfig {
	return StreamConfig{
		WriteWait:      10 * time.Second,
		PongWait:       60 * time.Second,
		PingPeriod:     54 * time.Second,
		MaxMessageSize: 4096,
		AllowedOrigins: []string{"*"},
	}
}

func (c StreamConfig) withDefaults() StreamConfig {
	defaults := DefaultStreamConfig()
	if c.WriteWait <= 0 {
		c.WriteWait = defaults.WriteWait
	}
	if c.PongWait <= 0 {
		c.PongWait = defaults.PongWait
	}
	if c.PingPeriod <= 0 || c.PingPeriod >= c.PongWait {
		c.PingPeriod = c.PongWait * 9 / 10
	}
	if c.MaxMessageSize <= 0 {
		c.MaxMessageSize = defaults.MaxMessageSize
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = defaults.AllowedOrigins
	}
	return c
}

const (
	streamMessageSession = "session"
	streamMessageEvent   = "event"
)

type streamMessage struct {
	Type    string             `json:"type"`
	Session *sessionDTO        `json:"session,omitempty"`
	Event   *usecase.PickEvent `json:"event,omitempty"`
}

// StreamSession upgrades to a websocket that first sends the session state
// and then every pick event of that session until the client leaves or the
// session is closed.
func (h *Handler) StreamSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StreamSession", sessionAttr(r.PathValue("sessionID")))
	defer span.End()

	if h.events == nil {
		writeError(ctx, w, fmt.Errorf("%w: event stream is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	sessionID := r.PathValue("sessionID")
	sub := h.events.Subscribe(sessionID)
	defer sub.Close()

	view, err := h.draftService.GetSession(ctx, sessionID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     originChecker(h.stream.AllowedOrigins),
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client.
		h.logger.WarnContext(ctx, "websocket upgrade failed", "session_id", sessionID, "error", err)
		return
	}
	defer conn.Close()

	h.logger.InfoContext(ctx, "draft stream opened", "session_id", sessionID, "remote_addr", resolveClientIP(r))

	snapshot := sessionToDTO(view)
	if err := h.writeStreamMessage(conn, streamMessage{Type: streamMessageSession, Session: &snapshot}); err != nil {
		h.logger.WarnContext(ctx, "write stream snapshot failed", "session_id", sessionID, "error", err)
		return
	}

	readDone := make(chan struct{})
	go h.readStream(ctx, conn, readDone)

	ticker := time.NewTicker(h.stream.PingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-readDone:
			h.logger.InfoContext(ctx, "draft stream closed by client", "session_id", sessionID)
			return
		case event, ok := <-sub.Events():
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"),
					time.Now().Add(h.stream.WriteWait))
				return
			}
			if err := h.writeStreamMessage(conn, streamMessage{Type: streamMessageEvent, Event: &event}); err != nil {
				h.logger.WarnContext(ctx, "write stream event failed", "session_id", sessionID, "error", err)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(h.stream.WriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readStream drains client frames so pongs and close frames are processed.
func (h *Handler) readStream(ctx context.Context, conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(h.stream.MaxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(h.stream.PongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.stream.PongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.DebugContext(ctx, "draft stream read failed", "error", err)
			}
			return
		}
	}
}

func (h *Handler) writeStreamMessage(conn *websocket.Conn, msg streamMessage) error {
	payload, err := sonic.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode stream message: %w", err)
	}
	_ = conn.SetWriteDeadline(time.Now().Add(h.stream.WriteWait))
	return conn.WriteMessage(websocket.TextMessage, payload)
}

func originChecker(allowed []string) func(*http.Request) bool {
	allowAll := false
	allowMap := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		candidate := strings.TrimSpace(origin)
		if candidate == "*" {
			allowAll = true
		}
		if candidate != "" {
			allowMap[candidate] = struct{}{}
		}
	}

	return func(r *http.Request) bool {
		origin := strings.TrimSpace(r.Header.Get("Origin"))
		if origin == "" || allowAll {
			return true
		}
		if _, ok := allowMap[origin]; ok {
			return true
		}
		u, err := url.Parse(origin)
		return err == nil && strings.EqualFold(u.Host, r.Host)
	}
}
