// Package queries contains read-side operations of the CQRS split. Query
// handlers bypass the domain aggregates and read the database directly,
// returning flat response structs shaped for their consumers.
package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrListOpenTicketsQueryIsNotConstructed = errors.New(
	"ListOpenTicketsQuery must be created via NewListOpenTicketsQuery constructor",
)

// ListOpenTicketsQuery retrieves the open kitchen tickets of a tenant: every
// order the kitchen should currently see. Terminals fetch this view on
// connect and after any push they may have missed, so its contents must
// match what Publish would have delivered.
type ListOpenTicketsQuery struct {
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListOpenTicketsQuery creates a query for a tenant's open tickets.
func NewListOpenTicketsQuery(tenantID kernel.UUID) (ListOpenTicketsQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return ListOpenTicketsQuery{}, err
	}
	return ListOpenTicketsQuery{
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOpenTicketsQuery) Validate() error {
	return q.guard.Validate(ErrListOpenTicketsQueryIsNotConstructed)
}

func (q ListOpenTicketsQuery) TenantID() kernel.UUID { return q.tenantID }

// TicketResponse is one open kitchen ticket.
type TicketResponse struct {
	OrderID   kernel.UUID
	OrderType string
	Status    string
	Token     *int
	TableID   *kernel.UUID
	Items     []TicketItemResponse
}

// TicketItemResponse is one line of a ticket.
type TicketItemResponse struct {
	ID       kernel.UUID
	Name     string
	Quantity int
	Notes    string
	Status   string
}
