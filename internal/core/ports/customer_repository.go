package ports

import (
	"context"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer records.
type CustomerRepository interface {
	// Add persists a new customer to storage.
	Add(ctx context.Context, entity *customer.Customer) error

	// Update persists changes to an existing customer.
	Update(ctx context.Context, entity *customer.Customer) error

	// Get retrieves a customer by its unique identifier for a tenant.
	// Returns errs.ObjectNotFoundError when no such customer exists.
	Get(ctx context.Context, tenantID kernel.UUID, id kernel.UUID) (*customer.Customer, error)

	// FindByContact looks a customer up by phone first, then by email.
	// Returns nil without error when neither matches.
	FindByContact(ctx context.Context, tenantID kernel.UUID, phone string, email string) (*customer.Customer, error)
}
