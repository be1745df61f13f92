// Package notify implements the in-process kitchen notifier. Terminal
// connections register under a (tenant, role) slot; events fan out to every
// live slot of the tenant. Delivery is fire-and-forget with no buffering:
// terminals that miss a push reconcile by re-fetching the open-tickets view,
// so losing an event here costs a refresh, never data.
package notify

import (
	"log/slog"
	"sync"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"
)

type slotKey struct {
	tenantID kernel.UUID
	role     ports.TerminalRole
}

// Registry is a mutex-guarded map of live terminal connections. It
// implements ports.KitchenNotifier.
type Registry struct {
	logger *slog.Logger

	mu    sync.Mutex
	slots map[slotKey]ports.KitchenConnection
}

// NewRegistry creates an empty connection registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		logger: logger,
		slots:  make(map[slotKey]ports.KitchenConnection),
	}
}

// Register attaches a terminal connection. A slot holds at most one
// connection; registering over a live one closes and displaces it, so a
// terminal that reconnects after a network blip always wins its slot back.
func (r *Registry) Register(tenantID kernel.UUID, role ports.TerminalRole, conn ports.KitchenConnection) {
	r.mu.Lock()
	key := slotKey{tenantID: tenantID, role: role}
	previous := r.slots[key]
	r.slots[key] = conn
	r.mu.Unlock()

	if previous != nil && previous != conn {
		if err := previous.Close(); err != nil {
			r.logger.Warn("closing displaced terminal",
				"tenant_id", tenantID.String(),
				"role", string(role),
				"error", err)
		}
	}
}

// Unregister detaches conn if it still holds its slot. A displaced
// connection unregistering late must not tear down its replacement.
func (r *Registry) Unregister(tenantID kernel.UUID, role ports.TerminalRole, conn ports.KitchenConnection) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := slotKey{tenantID: tenantID, role: role}
	if r.slots[key] == conn {
		delete(r.slots, key)
	}
}

// Publish sends the event to every registered terminal of the event's
// tenant, whatever role it attached under. A failed send drops the event
// for that terminal only; the connection's own read loop notices the
// broken transport and unregisters.
func (r *Registry) Publish(event ports.KitchenEvent) {
	r.mu.Lock()
	conns := make([]ports.KitchenConnection, 0, 2)
	for key, conn := range r.slots {
		if key.tenantID.IsEqual(event.TenantID) {
			conns = append(conns, conn)
		}
	}
	r.mu.Unlock()

	for _, conn := range conns {
		if err := conn.Send(event); err != nil {
			r.logger.Warn("pushing ticket",
				"order_id", event.OrderID.String(),
				"error", err)
		}
	}
}
