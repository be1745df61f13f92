package ports

import (
	"restaurant/internal/core/domain/model/kernel"
)

// TerminalRole distinguishes the two kitchen-side screens a tenant can run.
type TerminalRole string

const (
	RoleKitchenDisplay TerminalRole = "kitchen_display"
	RoleExpoDisplay    TerminalRole = "expo_display"
)

func (r TerminalRole) IsValid() bool {
	return r == RoleKitchenDisplay || r == RoleExpoDisplay
}

// KitchenEvent is the payload pushed to kitchen terminals whenever an order
// becomes visible to the kitchen or changes while visible.
type KitchenEvent struct {
	TenantID  kernel.UUID
	OrderID   kernel.UUID
	OrderType string
	Status    string
	Token     *int
	TableID   *kernel.UUID
	Items     []KitchenEventItem
}

type KitchenEventItem struct {
	ID       kernel.UUID
	Name     string
	Quantity int
	Notes    string
	Status   string
}

// KitchenConnection is one live terminal attachment. Send must not block the
// caller indefinitely; slow consumers are the transport's problem.
type KitchenConnection interface {
	Send(event KitchenEvent) error
	Close() error
}

// KitchenNotifier fans kitchen events out to registered terminals. At most
// one connection per (tenant, role) pair is live: registering a second
// terminal for the same slot displaces the first. Delivery is best effort,
// with no buffering and no redelivery; terminals reconcile by re-fetching
// the open-tickets view.
type KitchenNotifier interface {
	// Register attaches a terminal, displacing any previous holder of the
	// same (tenant, role) slot.
	Register(tenantID kernel.UUID, role TerminalRole, conn KitchenConnection)

	// Unregister detaches conn if it is still the current holder of the
	// slot. A stale unregister from a displaced terminal is a no-op.
	Unregister(tenantID kernel.UUID, role TerminalRole, conn KitchenConnection)

	// Publish sends the event to every registered terminal of the tenant.
	// Send failures drop the event for that terminal only.
	Publish(event KitchenEvent)
}
