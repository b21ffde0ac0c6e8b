package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"tableside/internal/core/domain/model/staff"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// joinMessage is the only frame clients send: it subscribes the connection
// under a role. Re-sending with a different role moves the subscription.
type joinMessage struct {
	Type string `json:"type"`
	Role string `json:"role"`
}

// Handler upgrades HTTP requests to WebSocket connections and manages each
// connection's subscription lifecycle: join messages subscribe it in the
// registry, disconnects unsubscribe it.
type Handler struct {
	registry *Registry
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHandler creates a Handler over the given registry.
func NewHandler(registry *Registry, logger *slog.Logger) *Handler {
	return &Handler{
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger.With("component", "ws"),
	}
}

// Serve handles GET /ws. The connection receives nothing until it sends a
// valid join message; malformed frames and unknown roles are ignored and the
// connection stays open.
func (h *Handler) Serve(ctx echo.Context) error {
	conn, err := h.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "websocket upgrade failed")
	}

	c := newClient(conn)
	go h.readPump(c)

	return nil
}

// readPump consumes inbound frames until the connection drops, applying join
// messages as they arrive. It is the only goroutine reading from the socket.
func (h *Handler) readPump(c *client) {
	defer func() {
		h.registry.Leave(c)
		c.Close()
	}()

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var join joinMessage
		if unmarshalErr := json.Unmarshal(payload, &join); unmarshalErr != nil || join.Type != "join" {
			h.logger.Debug("ignore unexpected frame")
			continue
		}

		role, roleErr := staff.RoleFromString(join.Role)
		if roleErr != nil {
			h.logger.Debug("ignore join with unknown role", "role", join.Role)
			continue
		}

		if joinErr := h.registry.Join(c, role); joinErr != nil {
			h.logger.Debug("join rejected", "error", joinErr)
		}
	}
}
