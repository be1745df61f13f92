// Package customer provides the Customer entity referenced by delivery and
// web orders. Customers are deduplicated by phone first, then by email.
package customer

import (
	"errors"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	ErrCustomerIsNotConstructed = errors.New("customer is not constructed")
	ErrContactIsRequired        = errors.New("customer requires a phone or an email")
)

// Customer is a lightweight contact record. At least one of phone or email
// must be present; both are stored normalized (trimmed, email lowercased).
type Customer struct {
	id       kernel.UUID
	tenantID kernel.UUID
	name     string
	phone    string
	email    string
	address  string

	createdAt time.Time

	isConstructed bool
}

func NewCustomer(id kernel.UUID, tenantID kernel.UUID,
	name string, phone string, email string, address string) (*Customer, error) {
	return RestoreCustomer(id, tenantID, name, phone, email, address, time.Now().UTC())
}

func RestoreCustomer(id kernel.UUID, tenantID kernel.UUID,
	name string, phone string, email string, address string, createdAt time.Time) (*Customer, error) {
	customer := &Customer{isConstructed: true}

	err := errors.Join(
		customer.setIDs(id, tenantID),
		customer.setContact(phone, email),
	)
	if err != nil {
		return nil, err
	}

	customer.name = strings.TrimSpace(name)
	customer.address = strings.TrimSpace(address)
	customer.createdAt = createdAt
	return customer, nil
}

func (c *Customer) setIDs(id kernel.UUID, tenantID kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredError("id")
	}
	if err := tenantID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("tenantID")
	}
	c.id = id
	c.tenantID = tenantID
	return nil
}

func (c *Customer) setContact(phone string, email string) error {
	phone = strings.TrimSpace(phone)
	email = strings.ToLower(strings.TrimSpace(email))
	if phone == "" && email == "" {
		return ErrContactIsRequired
	}
	c.phone = phone
	c.email = email
	return nil
}

func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() kernel.UUID       { return c.id }
func (c *Customer) TenantID() kernel.UUID { return c.tenantID }
func (c *Customer) Name() string          { return c.name }
func (c *Customer) Phone() string         { return c.phone }
func (c *Customer) Email() string         { return c.email }
func (c *Customer) Address() string       { return c.address }
func (c *Customer) CreatedAt() time.Time  { return c.createdAt }

func (c *Customer) IsEqual(other *Customer) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// UpdateContact replaces the stored contact details, keeping the rule that at
// least one of phone or email stays present.
func (c *Customer) UpdateContact(phone string, email string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return c.setContact(phone, email)
}

// UpdateAddress replaces the delivery address.
func (c *Customer) UpdateAddress(address string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.address = strings.TrimSpace(address)
	return nil
}
