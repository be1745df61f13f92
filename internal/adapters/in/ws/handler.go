package ws

import (
	"context"
	"log/slog"
	"net/http"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Terminals live on the restaurant LAN behind the same origin as the
	// POS frontend; origin enforcement happens at the reverse proxy.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// TicketSnapshot loads a tenant's open kitchen tickets so a freshly attached
// terminal starts from the current state instead of an empty screen.
type TicketSnapshot func(ctx context.Context, tenantID kernel.UUID) ([]ports.KitchenEvent, error)

// Handler upgrades kitchen terminal connections and attaches them to the
// notifier registry for the lifetime of the socket.
type Handler struct {
	notifier ports.KitchenNotifier
	snapshot TicketSnapshot
	logger   *slog.Logger
}

func NewHandler(notifier ports.KitchenNotifier, snapshot TicketSnapshot, logger *slog.Logger) *Handler {
	return &Handler{
		notifier: notifier,
		snapshot: snapshot,
		logger:   logger,
	}
}

// Serve handles GET /api/v1/tenants/:tenantId/terminals/:role.
// The role path segment selects which screen this socket feeds.
func (h *Handler) Serve(ctx echo.Context) error {
	tenantID, err := kernel.UUIDFromString(ctx.Param("tenantId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid tenant ID")
	}

	role := ports.TerminalRole(ctx.Param("role"))
	if !role.IsValid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown terminal role")
	}

	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		// Upgrade already wrote the failure response.
		return nil
	}

	client := newClient(conn, tenantID.String(), role, h.logger)
	h.notifier.Register(tenantID, role, client)
	h.logger.Info("terminal attached",
		"tenant_id", tenantID.String(), "role", string(role))

	go client.writePump()
	h.pushSnapshot(ctx.Request().Context(), tenantID, client)
	go client.readPump(func() {
		h.notifier.Unregister(tenantID, role, client)
		h.logger.Info("terminal detached",
			"tenant_id", tenantID.String(), "role", string(role))
	})

	return nil
}

// pushSnapshot sends the currently open tickets to a new terminal. A failed
// snapshot is not fatal: the terminal reconciles through the tickets view.
func (h *Handler) pushSnapshot(ctx context.Context, tenantID kernel.UUID, client *Client) {
	if h.snapshot == nil {
		return
	}

	events, err := h.snapshot(ctx, tenantID)
	if err != nil {
		h.logger.Warn("ticket snapshot failed",
			"tenant_id", tenantID.String(), "error", err)
		return
	}

	for _, event := range events {
		if err = client.Send(event); err != nil {
			h.logger.Warn("snapshot delivery failed",
				"tenant_id", tenantID.String(), "error", err)
			return
		}
	}
}
