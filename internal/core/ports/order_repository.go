// Package ports defines the contracts between the application core and
// infrastructure adapters: repositories, the unit of work, and the kitchen
// notifier. Adapters implement these interfaces, enabling dependency
// inversion and testability.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including
	// line-item additions, removals and status changes.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier for a tenant.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, tenantID kernel.UUID, id kernel.UUID) (*order.Order, error)

	// GetAllKitchenVisible retrieves the open kitchen tickets of a tenant:
	// every order in KitchenTicketed status plus paid orders that still have
	// at least one item in Preparing.
	GetAllKitchenVisible(ctx context.Context, tenantID kernel.UUID) ([]*order.Order, error)
}
