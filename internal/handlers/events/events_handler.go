package events

import (
	"net/http"
	"time"

	"sellerhub-service/internal/middleware"
	"sellerhub-service/internal/pkg/response"
	"sellerhub-service/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// SessionEvent is pushed to the browser whenever its own session changes, so
// open tabs can react to a login, refresh or logout made elsewhere.
type SessionEvent struct {
	Type          string `json:"type"` // "session_updated" or "session_cleared"
	Authenticated bool   `json:"authenticated"`
	Role          string `json:"role,omitempty"`
	Email         string `json:"email,omitempty"`
}

// EventsHandler upgrades /ws/session connections and streams session changes
// for the connected browser's session only.
type EventsHandler struct {
	sessions session.Store
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

func NewEventsHandler(sessions session.Store, logger *zap.Logger) *EventsHandler {
	return &EventsHandler{
		sessions: sessions,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Same-origin portal traffic only; gin sits behind the front proxy.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Session handles GET /ws/session. The caller must already hold a valid
// session cookie; the socket then mirrors that session's lifecycle.
func (h *EventsHandler) Session(c *gin.Context) {
	sid, ok := middleware.SessionID(c)
	if !ok {
		response.Unauthorized(c, "login required")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	sub := h.sessions.Subscribe(16)
	defer h.sessions.Unsubscribe(sub)
	defer conn.Close()

	go h.readPump(conn)
	h.writePump(conn, sub, sid)
}

// readPump drains client frames so pong handling works; the portal never
// expects data from the browser on this socket.
func (h *EventsHandler) readPump(conn *websocket.Conn) {
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *EventsHandler) writePump(conn *websocket.Conn, sub *session.Subscription, sid string) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case change, ok := <-sub.C:
			if !ok {
				return
			}
			if change.SID != sid {
				continue
			}

			evt := SessionEvent{Type: "session_cleared"}
			if change.Principal != nil {
				evt = SessionEvent{
					Type:          "session_updated",
					Authenticated: change.Principal.Valid(time.Now()),
					Role:          change.Principal.Role,
					Email:         change.Principal.Email,
				}
			}

			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(evt); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
