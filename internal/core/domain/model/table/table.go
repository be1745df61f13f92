package table

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

var (
	ErrTableIsNotConstructed = errors.New("table is not constructed")
	ErrTableIsOccupied       = errors.New("table already has an active order")
	ErrTableIsEmpty          = errors.New("table has no active order")
)

// Table is an aggregate of the floor-plan occupancy ledger.
//
// Invariant: activeOrderID is nil exactly when status is StatusEmpty.
type Table struct {
	id       kernel.UUID
	tenantID kernel.UUID
	// name is the table number as printed on the floor plan ("T-1", "M5");
	// area groups tables into rooms.
	name     string
	area     string
	capacity int

	status        Status
	activeOrderID *kernel.UUID

	updatedAt time.Time

	isConstructed bool
}

// NewTable creates an empty table for a tenant's floor plan. capacity is the
// number of seats and must be positive.
func NewTable(id kernel.UUID, tenantID kernel.UUID, name string, area string,
	capacity int) (*Table, error) {
	table := &Table{isConstructed: true}

	err := errors.Join(
		table.setIDs(id, tenantID),
		table.setNameAndArea(name, area),
		table.setCapacity(capacity),
	)
	if err != nil {
		return nil, err
	}

	table.status = StatusEmpty
	table.activeOrderID = nil
	table.updatedAt = time.Now().UTC()
	return table, nil
}

// RestoreTable rebuilds a table from persisted state without side effects.
func RestoreTable(id kernel.UUID, tenantID kernel.UUID, name string, area string,
	capacity int, status Status, activeOrderID *kernel.UUID, updatedAt time.Time) (*Table, error) {
	table := &Table{isConstructed: true}

	err := errors.Join(
		table.setIDs(id, tenantID),
		table.setNameAndArea(name, area),
		table.setCapacity(capacity),
		table.setOccupancy(status, activeOrderID),
	)
	if err != nil {
		return nil, err
	}

	table.updatedAt = updatedAt
	return table, nil
}

func (t *Table) setIDs(id kernel.UUID, tenantID kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredError("id")
	}
	if err := tenantID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("tenantID")
	}
	t.id = id
	t.tenantID = tenantID
	return nil
}

func (t *Table) setNameAndArea(name string, area string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	t.name = name
	t.area = area
	return nil
}

func (t *Table) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacity",
			fmt.Errorf("%d is not greater than 0", capacity),
		)
	}
	t.capacity = capacity
	return nil
}

func (t *Table) setOccupancy(status Status, activeOrderID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == StatusEmpty && activeOrderID != nil {
		return errs.NewValueIsInvalidError("activeOrderID")
	}
	if status != StatusEmpty && activeOrderID == nil {
		return errs.NewValueIsRequiredError("activeOrderID")
	}
	if activeOrderID != nil {
		if err := activeOrderID.Validate(); err != nil {
			return errs.NewValueIsRequiredError("activeOrderID")
		}
	}
	t.status = status
	t.activeOrderID = activeOrderID
	return nil
}

func (t *Table) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTableIsNotConstructed
	}
	return nil
}

func (t *Table) ID() kernel.UUID       { return t.id }
func (t *Table) TenantID() kernel.UUID { return t.tenantID }
func (t *Table) Name() string          { return t.name }
func (t *Table) Area() string          { return t.area }
func (t *Table) Capacity() int         { return t.capacity }
func (t *Table) Status() Status        { return t.status }
func (t *Table) UpdatedAt() time.Time  { return t.updatedAt }

// ActiveOrderID returns the referenced order, or nil when the table is empty.
func (t *Table) ActiveOrderID() *kernel.UUID {
	if t.activeOrderID == nil {
		return nil
	}
	id := *t.activeOrderID
	return &id
}

func (t *Table) IsEmpty() bool {
	return t.status == StatusEmpty
}

func (t *Table) IsEqual(other *Table) bool {
	if other == nil {
		return false
	}
	return t.id.IsEqual(other.id)
}

// Attach seats the table with an order. It fails with ErrTableIsOccupied when
// the table already references a different order; re-attaching the same order
// degrades to a status mirror.
func (t *Table) Attach(orderID kernel.UUID, orderStatus order.Status) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("orderID")
	}

	if t.activeOrderID != nil {
		if t.activeOrderID.IsEqual(orderID) {
			return t.MirrorOrderStatus(orderStatus)
		}
		return ErrTableIsOccupied
	}

	status := StatusForOrder(orderStatus)
	if status == StatusUnknown {
		return errs.NewValueIsInvalidError("orderStatus")
	}

	t.activeOrderID = &orderID
	t.status = status
	t.updatedAt = time.Now().UTC()
	return nil
}

// MirrorOrderStatus refreshes the table status after its active order changed.
// Paying or cancelling the order clears the table immediately so the floor
// plan frees up without a separate staff action.
func (t *Table) MirrorOrderStatus(orderStatus order.Status) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.activeOrderID == nil {
		return ErrTableIsEmpty
	}

	if orderStatus == order.StatusPaid || orderStatus == order.StatusCancelled {
		return t.Clear()
	}

	status := StatusForOrder(orderStatus)
	if status == StatusUnknown {
		return errs.NewValueIsInvalidError("orderStatus")
	}

	t.status = status
	t.updatedAt = time.Now().UTC()
	return nil
}

// Clear releases the table back to Empty and drops the order reference.
func (t *Table) Clear() error {
	if err := t.Validate(); err != nil {
		return err
	}
	t.activeOrderID = nil
	t.status = StatusEmpty
	t.updatedAt = time.Now().UTC()
	return nil
}
