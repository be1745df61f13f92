package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrListTablesQueryIsNotConstructed = errors.New(
	"ListTablesQuery must be created via NewListTablesQuery constructor",
)

// ListTablesQuery retrieves a tenant's floor map: every table with its
// occupancy status and active order, grouped by area.
type ListTablesQuery struct {
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListTablesQuery creates a query for a tenant's tables.
func NewListTablesQuery(tenantID kernel.UUID) (ListTablesQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return ListTablesQuery{}, err
	}
	return ListTablesQuery{
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListTablesQuery) Validate() error {
	return q.guard.Validate(ErrListTablesQueryIsNotConstructed)
}

func (q ListTablesQuery) TenantID() kernel.UUID { return q.tenantID }

// TableResponse is one table on the floor map.
type TableResponse struct {
	ID            kernel.UUID
	Name          string
	Area          string
	Capacity      int
	Status        string
	ActiveOrderID *kernel.UUID
	UpdatedAt     time.Time
}
