package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"
)

// TableRepository defines the persistence contract for table aggregates.
type TableRepository interface {
	// Add persists a new table to storage.
	Add(ctx context.Context, aggregate *table.Table) error

	// Update persists changes to an existing table aggregate.
	Update(ctx context.Context, aggregate *table.Table) error

	// Get retrieves a table by its unique identifier for a tenant.
	// Returns errs.ObjectNotFoundError when no such table exists.
	Get(ctx context.Context, tenantID kernel.UUID, id kernel.UUID) (*table.Table, error)

	// GetAll retrieves every table of a tenant ordered by area and name,
	// backing the floor-map view.
	GetAll(ctx context.Context, tenantID kernel.UUID) ([]*table.Table, error)

	// TryAttachOrder atomically sets the table's active order to orderID if
	// and only if the table currently has none. Returns true when this call
	// won the attachment; false when another order got there first. Two
	// submissions racing for the same table resolve here: the loser re-reads
	// the table and merges into the winning order instead.
	TryAttachOrder(ctx context.Context, tenantID kernel.UUID, tableID kernel.UUID,
		orderID kernel.UUID, status table.Status) (bool, error)
}
